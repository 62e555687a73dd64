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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/kind"
	"dirpx.dev/dresponse/mapper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type item struct {
	ID int `json:"id"`
}

func TestWrite_ContentAndCount(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := dresponse.Page(dresponse.OK(), []item{{1}, {2}, {3}}, 42)

	Write(Writer{}, rec, resp, Meta{Correlation: "req-1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if id := rec.Header().Get(HeaderRequestID); id != "req-1" {
		t.Fatalf("%s = %q", HeaderRequestID, id)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, rec.Body.String())
	}
	status := got["status"].(map[string]any)
	if status["kind"] != "ok" || status["message"] != "Ok." || status["success"] != true || status["correlation"] != "req-1" {
		t.Fatalf("status = %v", status)
	}
	if got["count"].(float64) != 42 {
		t.Fatalf("count = %v", got["count"])
	}
	if n := len(got["content"].([]any)); n != 3 {
		t.Fatalf("len(content) = %d", n)
	}
}

func TestWrite_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.WriteStatus(rec, dresponse.NotFound("missing"), Meta{})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
	if rec.Header().Get(HeaderRequestID) != "" {
		t.Fatal("no correlation id must be set without meta")
	}
	want := `{"status":{"kind":"not_found","message":"missing","success":false}}`
	if got := rec.Body.String(); got != want {
		t.Fatalf("body = %s\nwant   %s", got, want)
	}
}

func TestWrite_NoContentDropsBody(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	for _, s := range []dresponse.Status{dresponse.Updated("changed"), dresponse.Deleted("gone")} {
		logs.Reset()
		rec := httptest.NewRecorder()
		Write(Writer{Logger: &logger}, rec, dresponse.With(s, item{ID: 7}), Meta{})

		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: code = %d, want 204", s.Kind(), rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("%s: body must be empty, got %q", s.Kind(), rec.Body.String())
		}
		if !strings.Contains(logs.String(), "without body") {
			t.Fatalf("%s: expected debug log, got %q", s.Kind(), logs.String())
		}
	}
}

func TestWrite_MapperOverrideRestoresBody(t *testing.T) {
	m := mapper.MustNew(mapper.WithHTTPOverride(kind.Updated, http.StatusOK))
	rec := httptest.NewRecorder()

	Write(Writer{Mapper: m}, rec, dresponse.With(dresponse.Updated("changed"), item{ID: 7}), Meta{})

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	got, err := Decode[item](rec.Body)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Kind() != kind.Updated || got.Content.ID != 7 {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestWrite_EncodingFailureBecomes500(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	rec := httptest.NewRecorder()

	Write(Writer{Logger: &logger}, rec, dresponse.With(dresponse.OK("all good"), func() {}), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"kind":"internal_error"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), `"level":"error"`) {
		t.Fatalf("expected error log, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), `"status_message":"response encoding failed"`) {
		t.Fatalf("written status must be logged, got %q", logs.String())
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"nil", nil, 200, "ok"},
		{"dresponse error", dresponse.Forbidden("no access").Err(), 403, "forbidden"},
		{"plain error", errors.New("boom"), 500, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Writer{}.WriteError(rec, tt.err, Meta{})
			if rec.Code != tt.code {
				t.Fatalf("code = %d, want %d", rec.Code, tt.code)
			}
			if !strings.Contains(rec.Body.String(), `"kind":"`+tt.kind+`"`) {
				t.Fatalf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestMetrics_CountsByKindAndCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	w := Writer{Metrics: metrics}

	for i := 0; i < 3; i++ {
		w.WriteStatus(httptest.NewRecorder(), dresponse.NotFound(), Meta{})
	}
	w.WriteStatus(httptest.NewRecorder(), dresponse.Deleted(), Meta{})

	if got := testutil.ToFloat64(metrics.Responses().WithLabelValues("not_found", "404")); got != 3 {
		t.Fatalf("not_found/404 = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.Responses().WithLabelValues("deleted", "204")); got != 1 {
		t.Fatalf("deleted/204 = %v, want 1", got)
	}
}

func TestMetaFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, "  abc  ")
	if m := MetaFromRequest(r); m.Correlation != "abc" || m.TraceID != "" {
		t.Fatalf("meta = %+v", m)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	m2 := MetaFromRequest(r2)
	if len(m2.Correlation) != 36 {
		t.Fatalf("generated correlation %q is not a uuid", m2.Correlation)
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02},
		SpanID:  trace.SpanID{0x03},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	r3 := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	m3 := MetaFromRequest(r3)
	if m3.TraceID != sc.TraceID().String() || m3.SpanID != sc.SpanID().String() {
		t.Fatalf("meta = %+v", m3)
	}
}

func TestRead_NoContent(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody}
	got, err := Read[item](resp)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Kind() != kind.Updated || !got.Success() {
		t.Fatalf("Read(204) = %+v", got)
	}
}

func TestRead_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		Write(Writer{}, rw, dresponse.With(dresponse.Created("resource made"), item{ID: 7}), MetaFromRequest(r))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	got, err := Read[item](resp)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if resp.StatusCode != http.StatusCreated || got.Kind() != kind.Created || got.Content.ID != 7 || got.Count != 0 {
		t.Fatalf("Read = %d %+v", resp.StatusCode, got)
	}
	if got.Status.Message != "resource made" {
		t.Fatalf("message = %q", got.Status.Message)
	}
}

func TestDecode_RejectsUnknownKind(t *testing.T) {
	if _, err := Decode[any](strings.NewReader(`{"status":{"kind":"teapot"}}`)); err == nil {
		t.Fatal("Decode must reject unknown kinds")
	}
	if _, err := Decode[any](strings.NewReader(`not json`)); err == nil {
		t.Fatal("Decode must reject malformed bodies")
	}
}

func TestKindForHTTP(t *testing.T) {
	tests := map[int]kind.Kind{
		200: kind.OK,
		201: kind.Created,
		204: kind.Updated,
		400: kind.InvalidSchema,
		403: kind.Forbidden,
		404: kind.NotFound,
		409: kind.Conflict,
		500: kind.InternalError,
		202: kind.OK,
		502: kind.InternalError,
	}
	for code, want := range tests {
		if got := KindForHTTP(code); got != want {
			t.Fatalf("KindForHTTP(%d) = %s, want %s", code, got, want)
		}
	}
}
