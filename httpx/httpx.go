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

// Package httpx writes dresponse values to HTTP and reads them back.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/adapter"
	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/mapper"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the correlation id in both directions.
const HeaderRequestID = "X-Request-ID"

// Meta carries extra context that the HTTP layer adds on top of a response.
// All fields are optional and typically come from MetaFromRequest.
type Meta struct {
	Correlation string
	TraceID     string
	SpanID      string
}

// body is the JSON shape written for every response that is allowed to have
// a body.
type body[T any] struct {
	Status  apis.StatusView `json:"status"`
	Content T               `json:"content,omitempty"`
	Count   int             `json:"count,omitempty"`
}

// Writer is a thin adapter that turns a dresponse.Response into an HTTP
// response using the provided status mapper.
//
// The zero value is usable: a nil Mapper means mapper.Default(), a nil
// Logger disables logging and a nil Metrics disables counting.
type Writer struct {
	Mapper  apis.Mapper
	Logger  *zerolog.Logger
	Metrics *Metrics
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

func (w Writer) logger() *zerolog.Logger {
	if w.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return w.Logger
}

// Write serializes resp and writes it to rw. The HTTP status is resolved via
// the Writer's Mapper.
//
// Statuses that forbid a body (1xx, 204, 304) are written without one, even
// when resp carries content; with the library defaults this applies to
// Updated and Deleted. If the content cannot be encoded, the client receives
// a 500 internal_error instead.
//
// No redaction is performed here: the message is exposed as-is.
//
// Write is a function rather than a method because Go methods cannot take
// type parameters.
func Write[T any](w Writer, rw http.ResponseWriter, resp dresponse.Response[T], meta Meta) {
	k := resp.Kind()
	code := w.mapper().HTTPStatus(k)
	log := w.logger()

	if meta.Correlation != "" {
		rw.Header().Set(HeaderRequestID, meta.Correlation)
	}

	if !bodyAllowed(code) {
		log.Debug().
			Str("kind", k.String()).
			Int("http_status", code).
			Str("correlation", meta.Correlation).
			Msg("response written without body")
		w.Metrics.observe(k, code)
		rw.WriteHeader(code)
		return
	}

	b, err := json.Marshal(body[T]{
		Status:  view(resp.Status, meta),
		Content: resp.Content,
		Count:   resp.Count,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("kind", k.String()).
			Str("correlation", meta.Correlation).
			Msg("encode response")
		resp.Status = dresponse.InternalError("response encoding failed")
		k = resp.Status.Kind()
		code = w.mapper().HTTPStatus(k)
		b, _ = json.Marshal(body[any]{Status: view(resp.Status, meta)})
	}

	ev := log.Debug()
	if code >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Str("kind", k.String()).
		Int("http_status", code).
		Str("correlation", meta.Correlation).
		Str("status_message", resp.Status.Message).
		Msg("response written")

	w.Metrics.observe(k, code)
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(b)
}

// WriteStatus writes a contentless response carrying s.
func (w Writer) WriteStatus(rw http.ResponseWriter, s dresponse.Status, meta Meta) {
	Write(w, rw, dresponse.ReplyOf(s), meta)
}

// WriteError writes the status recovered from err via dresponse.FromError.
// A nil err writes OK.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	w.WriteStatus(rw, dresponse.FromError(err), meta)
}

func view(s dresponse.Status, meta Meta) apis.StatusView {
	v := adapter.ToView(s)
	v.Correlation = meta.Correlation
	v.TraceID = meta.TraceID
	v.SpanID = meta.SpanID
	return v
}

// bodyAllowed mirrors net/http's bodyAllowedForStatus.
func bodyAllowed(code int) bool {
	switch {
	case code >= 100 && code <= 199:
		return false
	case code == http.StatusNoContent:
		return false
	case code == http.StatusNotModified:
		return false
	}
	return true
}
