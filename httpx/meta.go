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

package httpx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// MetaFromRequest collects correlation data for r.
//
// The correlation id is taken from the X-Request-ID header, or freshly
// generated when the header is absent. Trace and span ids come from the
// OpenTelemetry span context on r's context, when one is present.
func MetaFromRequest(r *http.Request) Meta {
	m := Meta{Correlation: strings.TrimSpace(r.Header.Get(HeaderRequestID))}
	if m.Correlation == "" {
		m.Correlation = uuid.NewString()
	}
	if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
		m.TraceID = sc.TraceID().String()
		m.SpanID = sc.SpanID().String()
	}
	return m
}
