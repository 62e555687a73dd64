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

package server

import (
	"fmt"
	"net/http"
	"time"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/httpx"
	"dirpx.dev/dresponse/kind"
)

// recovery turns a panicking handler into a 500 internal_error response.
func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := dresponse.E(kind.InternalError, "internal error",
					dresponse.WithCauseOption(fmt.Errorf("panic: %v", rec)))
				s.logger.Error().Err(err.Cause).Str("path", r.URL.Path).Msg("handler panicked")
				s.writer.WriteError(w, err, httpx.MetaFromRequest(r))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logging logs one line per request.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Dur("duration", time.Since(start)).
			Str("request_id", rw.Header().Get(httpx.HeaderRequestID)).
			Msg("request")
	})
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
