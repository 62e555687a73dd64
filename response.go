/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dresponse

import "dirpx.dev/dresponse/kind"

// Response is the envelope returned by a service operation.
//
// It always carries exactly one Status. Content and Count are independent of
// the status kind: the builders never set a count on failures, but nothing
// forbids it.
type Response[T any] struct {
	// Status is the outcome of the operation.
	Status Status `json:"status"`

	// Content is the optional payload. For the contentless variant (Reply)
	// it is nil.
	Content T `json:"content,omitempty"`

	// Count is the total number of items when Content is one page of a
	// larger collection. It is asserted by the caller and never derived
	// from Content.
	Count int `json:"count,omitempty"`
}

// Reply is the contentless response variant.
type Reply = Response[any]

// Kind returns the kind of the response status.
func (r Response[T]) Kind() kind.Kind { return r.Status.Kind() }

// Success reports whether the response status is a success kind.
func (r Response[T]) Success() bool { return r.Status.Success() }

// HTTPStatus returns the canonical HTTP status code of the response status.
func (r Response[T]) HTTPStatus() int { return r.Status.HTTPStatus() }

// Err returns the response status as an error, or nil on success.
func (r Response[T]) Err() error { return r.Status.Err() }

// Respond builds a contentless response of kind k.
func Respond(k kind.Kind, msg string) Reply {
	return Reply{Status: New(k, msg)}
}

// RespondWith builds a response of kind k carrying content.
func RespondWith[T any](k kind.Kind, msg string, content T) Response[T] {
	return With(New(k, msg), content)
}

// RespondPage builds a response of kind k carrying one page of content and
// the total count of the collection it was taken from.
func RespondPage[T any](k kind.Kind, msg string, content T, count int) Response[T] {
	return Page(New(k, msg), content, count)
}

// ReplyOf wraps s into a contentless response.
func ReplyOf(s Status) Reply {
	return Reply{Status: s}
}

// Empty wraps s into a typed response with zero content. Use it for failures
// returned from operations whose success type is Response[T].
func Empty[T any](s Status) Response[T] {
	return Response[T]{Status: s}
}

// With wraps s and content into a response.
func With[T any](s Status, content T) Response[T] {
	return Response[T]{Status: s, Content: content}
}

// Page wraps s, one page of content and the total count into a response.
func Page[T any](s Status, content T, count int) Response[T] {
	return Response[T]{Status: s, Content: content, Count: count}
}
