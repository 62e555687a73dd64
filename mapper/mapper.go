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

package mapper

import (
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/kind"
	"google.golang.org/grpc/codes"
)

// Valid ranges for user-supplied statuses.
const (
	minHTTP = 100
	maxHTTP = 599
	maxGRPC = int(codes.Unauthenticated)
)

// defaultMapper is the option-less snapshot returned by Default.
var defaultMapper = MustNew()

// Default returns the shared mapper built from library defaults only.
// Its HTTP answers are identical to kind.HTTPStatus.
func Default() apis.Mapper { return defaultMapper }

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every kind and status that ended up in the builder.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an unknown kind, an HTTP
// status outside 100..599 or a gRPC code outside the canonical range.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Keep gRPC values as int for internal uniformity;
	// convert to codes.Code when freezing the final snapshot.
	maps.Copy(b.httpDefaults, defaultHTTP())
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateHTTP("default", b.httpDefaults); err != nil {
		return nil, err
	}
	if err := validateHTTP("override", b.httpOverride); err != nil {
		return nil, err
	}
	if err := validateGRPC("default", b.grpcDefaults); err != nil {
		return nil, err
	}
	if err := validateGRPC("override", b.grpcOverride); err != nil {
		return nil, err
	}
	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: invalid HTTP fallback %d", b.fallbackHTTP)
	}
	if !validGRPC(b.fallbackGRPC) || b.fallbackGRPC == int(codes.OK) {
		return nil, fmt.Errorf("mapper: invalid gRPC fallback %d", b.fallbackGRPC)
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}

	return m, nil
}

// MustNew is the panic-on-error variant of New. It is useful for
// package-level mappers built from constant options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults and per-kind exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given kind.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a kind.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override;
//  2. per-kind default (library or user overridden);
//  3. fallback (500 unless changed with WithFallback).
func (m *mapper) HTTPStatus(k kind.Kind) int {
	if v, ok := m.httpOverride[k]; ok {
		return v
	}
	if v, ok := m.httpDefault[k]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same input.
func (m *mapper) Status(k kind.Kind) apis.Transport {
	return apis.Transport{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular kind.
//
// Example output:
//
//	kind="updated"
//	http: source=override -> 200
//	grpc: source=default -> OK(0)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q\n", k)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k))
	_, _ = fmt.Fprint(&b, m.explainGRPC(k))
	return b.String()
}

// explainHTTP returns a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind) string {
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind) string {
	if v, ok := m.grpcOverride[k]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", v, int(v))
	}
	if v, ok := m.grpcDefault[k]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", v, int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", m.fallbackGRPC, int(m.fallbackGRPC))
}

func validateHTTP(tier string, src map[kind.Kind]int) error {
	for k, v := range src {
		if !k.Valid() {
			return fmt.Errorf("mapper: HTTP %s for unknown kind %d", tier, uint8(k))
		}
		if !validHTTP(v) {
			return fmt.Errorf("mapper: invalid HTTP %s %d for kind %q", tier, v, k)
		}
	}
	return nil
}

func validateGRPC(tier string, src map[kind.Kind]int) error {
	for k, v := range src {
		if !k.Valid() {
			return fmt.Errorf("mapper: gRPC %s for unknown kind %d", tier, uint8(k))
		}
		if !validGRPC(v) {
			return fmt.Errorf("mapper: invalid gRPC %s %d for kind %q", tier, v, k)
		}
		if v == int(codes.OK) && !k.IsSuccess() {
			return fmt.Errorf("mapper: gRPC %s OK for failure kind %q", tier, k)
		}
	}
	return nil
}

func validHTTP(v int) bool { return v >= minHTTP && v <= maxHTTP }

func validGRPC(v int) bool { return v >= 0 && v <= maxGRPC }
