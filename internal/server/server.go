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

// Package server is the HTTP service behind "dresponse serve". It exposes
// the kind table and an echo endpoint, every answer being written through
// httpx so that the wire protocol can be exercised end to end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/httpx"
	"dirpx.dev/dresponse/mapper"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Options configures New. Only Addr is required for Start.
type Options struct {
	Addr   string
	Mapper apis.Mapper
	Logger zerolog.Logger

	// Registry receives the server metrics. A nil Registry gets a private
	// one that also carries the Go and process collectors.
	Registry *prometheus.Registry
}

// Server represents the HTTP API server.
type Server struct {
	router   *mux.Router
	http     *http.Server
	writer   httpx.Writer
	mapper   apis.Mapper
	logger   zerolog.Logger
	registry *prometheus.Registry
}

// New creates a server instance with all routes registered.
func New(opts Options) *Server {
	m := opts.Mapper
	if m == nil {
		m = mapper.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		router:   mux.NewRouter(),
		mapper:   m,
		logger:   opts.Logger,
		registry: reg,
	}
	s.writer = httpx.Writer{
		Mapper:  m,
		Logger:  &s.logger,
		Metrics: httpx.NewMetrics(reg),
	}
	s.setupRoutes()

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the root handler, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address and serves until Shutdown.
// It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server starting")
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.recovery, s.logging)
	s.router.NotFoundHandler = http.HandlerFunc(s.handleNoRoute)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleBadMethod)

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/kinds", s.handleListKinds).Methods(http.MethodGet)
	v1.HandleFunc("/kinds/{kind}", s.handleGetKind).Methods(http.MethodGet)
	v1.HandleFunc("/echo/{kind}", s.handleEcho).Methods(http.MethodGet, http.MethodPost)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}
