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
	"strconv"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/adapter"
	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/httpx"
	"dirpx.dev/dresponse/kind"
	"github.com/gorilla/mux"
)

// handleListKinds handles GET /v1/kinds?limit=&offset=.
// Count always reports the total number of kinds, not the page size.
func (s *Server) handleListKinds(w http.ResponseWriter, r *http.Request) {
	meta := httpx.MetaFromRequest(r)

	limit, err := queryInt(r, "limit")
	if err != nil {
		s.writer.WriteStatus(w, dresponse.InvalidSchema(err.Error()), meta)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		s.writer.WriteStatus(w, dresponse.InvalidSchema(err.Error()), meta)
		return
	}

	all := adapter.DescribeAll(s.mapper)
	httpx.Write(s.writer, w, dresponse.Page(dresponse.OK(), page(all, offset, limit), len(all)), meta)
}

// handleGetKind handles GET /v1/kinds/{kind}.
func (s *Server) handleGetKind(w http.ResponseWriter, r *http.Request) {
	meta := httpx.MetaFromRequest(r)
	name := mux.Vars(r)["kind"]

	k, err := kind.Parse(name)
	if err != nil {
		s.writer.WriteStatus(w, dresponse.NotFound(fmt.Sprintf("unknown kind %q", name)), meta)
		return
	}
	httpx.Write(s.writer, w, dresponse.With(dresponse.OK(), adapter.Describe(k, s.mapper)), meta)
}

// handleEcho handles /v1/echo/{kind}?message= and answers with a response
// of that kind, carrying the given message.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	meta := httpx.MetaFromRequest(r)
	name := mux.Vars(r)["kind"]

	k, err := kind.Parse(name)
	if err != nil {
		s.writer.WriteStatus(w, dresponse.InvalidSchema(fmt.Sprintf("unknown kind %q", name)), meta)
		return
	}
	httpx.Write(s.writer, w, dresponse.Respond(k, r.URL.Query().Get("message")), meta)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writer.WriteStatus(w, dresponse.OK(), httpx.MetaFromRequest(r))
}

func (s *Server) handleNoRoute(w http.ResponseWriter, r *http.Request) {
	if s.pathKnown(r) {
		s.handleBadMethod(w, r)
		return
	}
	s.writer.WriteStatus(w, dresponse.NotFound("no route for "+r.URL.Path), httpx.MetaFromRequest(r))
}

var methods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// pathKnown reports whether some route serves r's path under another method.
// Subrouters do not always surface a method mismatch to the root router, so
// the NotFound path checks for it as well.
func (s *Server) pathKnown(r *http.Request) bool {
	for _, m := range methods {
		if m == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = m
		var match mux.RouteMatch
		if s.router.Match(alt, &match) && match.MatchErr == nil && match.Route != nil {
			return true
		}
	}
	return false
}

// handleBadMethod answers a known path requested with the wrong method.
// No kind maps to 405, so the response is an invalid_schema status sent
// with 405 instead of its mapped code.
func (s *Server) handleBadMethod(w http.ResponseWriter, r *http.Request) {
	wr := s.writer
	wr.Mapper = forcedHTTP{Mapper: s.mapper, code: http.StatusMethodNotAllowed}
	wr.WriteStatus(w, dresponse.InvalidSchema(fmt.Sprintf("method %s not allowed for %s", r.Method, r.URL.Path)), httpx.MetaFromRequest(r))
}

// forcedHTTP answers every kind with one HTTP status and defers gRPC to
// the wrapped mapper.
type forcedHTTP struct {
	apis.Mapper
	code int
}

func (f forcedHTTP) HTTPStatus(kind.Kind) int { return f.code }

func (f forcedHTTP) Status(k kind.Kind) apis.Transport {
	return apis.Transport{HTTP: f.code, GRPC: f.Mapper.GRPCStatus(k)}
}

// queryInt reads a non-negative integer query parameter. Missing means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, raw)
	}
	return n, nil
}

// page slices items; a zero limit means no limit.
func page(items []apis.StatusDescriptor, offset, limit int) []apis.StatusDescriptor {
	if offset >= len(items) {
		return []apis.StatusDescriptor{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
