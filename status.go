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

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dresponse/kind"
)

// DefaultOKMessage is the message carried by OK() when the caller does not
// supply one.
const DefaultOKMessage = "Ok."

// Status is the outcome of a single service operation.
//
// It carries:
//   - kind: which outcome this is, fixed at construction;
//   - Message: human-oriented free text, never validated.
//
// The kind is unexported so that a Status built as NotFound stays NotFound
// for its whole life; the message may be rewritten freely.
type Status struct {
	kind kind.Kind

	// Message is a human-readable explanation of the outcome.
	Message string
}

// New builds a Status of the given kind with the given message.
func New(k kind.Kind, msg string) Status {
	return Status{kind: k, Message: msg}
}

// InternalError builds a Status for an unexpected failure.
func InternalError(msg ...string) Status { return New(kind.InternalError, message("", msg)) }

// NotFound builds a Status for a missing resource.
func NotFound(msg ...string) Status { return New(kind.NotFound, message("", msg)) }

// InvalidSchema builds a Status for malformed input.
func InvalidSchema(msg ...string) Status { return New(kind.InvalidSchema, message("", msg)) }

// Forbidden builds a Status for an authorization failure.
func Forbidden(msg ...string) Status { return New(kind.Forbidden, message("", msg)) }

// Conflict builds a Status for a state conflict.
func Conflict(msg ...string) Status { return New(kind.Conflict, message("", msg)) }

// OK builds a plain success Status. Without a message it carries
// DefaultOKMessage.
func OK(msg ...string) Status { return New(kind.OK, message(DefaultOKMessage, msg)) }

// Created builds a Status for a created resource.
func Created(msg ...string) Status { return New(kind.Created, message("", msg)) }

// Updated builds a Status for an updated resource.
func Updated(msg ...string) Status { return New(kind.Updated, message("", msg)) }

// Deleted builds a Status for a deleted resource.
func Deleted(msg ...string) Status { return New(kind.Deleted, message("", msg)) }

// message picks def when no parts were given, otherwise joins the parts
// with a single space.
func message(def string, parts []string) string {
	if len(parts) == 0 {
		return def
	}
	return strings.Join(parts, " ")
}

// Kind returns the outcome classification of s.
func (s Status) Kind() kind.Kind { return s.kind }

// Success reports whether s is a success kind.
func (s Status) Success() bool { return s.kind.IsSuccess() }

// HTTPStatus returns the canonical HTTP status code for s.
func (s Status) HTTPStatus() int { return s.kind.HTTPStatus() }

// String renders s as "<kind>: <message>", or just "<kind>" when the
// message is empty.
func (s Status) String() string {
	if s.Message == "" {
		return s.kind.String()
	}
	return fmt.Sprintf("%s: %s", s.kind, s.Message)
}

// statusJSON is the wire shape of Status.
type statusJSON struct {
	Kind    kind.Kind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(statusJSON{Kind: s.kind, Message: s.Message})
}

// UnmarshalJSON implements json.Unmarshaler. Unknown kinds are rejected;
// a missing kind decodes as InternalError.
func (s *Status) UnmarshalJSON(b []byte) error {
	var v statusJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("dresponse: decode status: %w", err)
	}
	*s = Status{kind: v.Kind, Message: v.Message}
	return nil
}
