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

// StatusView is the status object as it appears inside an HTTP response
// body, enriched with request correlation data.
//
// This is *not* dresponse.Status: it is the shape we are comfortable
// exposing over the wire. Correlation and tracing fields are optional and
// filled in by the HTTP layer.
type StatusView struct {
	// Kind is the canonical kind name, e.g. "not_found".
	Kind string `json:"kind"`

	// Message is the caller-supplied message. No redaction is applied.
	Message string `json:"message,omitempty"`

	// Success mirrors kind.Kind.IsSuccess so that clients do not need the
	// ordering table.
	Success bool `json:"success"`

	// Correlation is the request correlation id (X-Request-ID).
	Correlation string `json:"correlation,omitempty"`

	// TraceID is the W3C trace id of the request span, if any.
	TraceID string `json:"trace_id,omitempty"`

	// SpanID is the span id of the request span, if any.
	SpanID string `json:"span_id,omitempty"`
}
