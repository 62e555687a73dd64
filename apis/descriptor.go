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

package apis

// StatusDescriptor is a flat, transport-friendly description of a status
// together with the transport codes it resolved to.
//
// It uses plain strings and ints (not kind.Kind or codes.Code) so that it can
// be logged, put on a message bus, or served as JSON without pulling in the
// richer types.
type StatusDescriptor struct {
	// Kind is the canonical kind name, e.g. "not_found", "created".
	Kind string `json:"kind"`

	// Ordinal is the position of the kind in the canonical ordering.
	Ordinal int `json:"ordinal"`

	// Success reports whether the kind counts as a success.
	Success bool `json:"success"`

	// HTTPStatus is the HTTP status code the kind resolved to.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code (as integer) the kind resolved to.
	GRPCCode int `json:"grpc_code"`

	// Message is the human-facing message of the status, when there is one.
	Message string `json:"message,omitempty"`
}
