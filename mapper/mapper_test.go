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
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/kind"
	"google.golang.org/grpc/codes"
)

func TestDefaults_AgreeWithKindTable(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, k := range kind.All() {
		if got, want := m.HTTPStatus(k), kind.HTTPStatus(k); got != want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", k, got, want)
		}
	}
}

func TestDefaults_GRPC(t *testing.T) {
	m := Default()
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%s) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.InternalError, 500, codes.Internal)
	check(kind.NotFound, 404, codes.NotFound)
	check(kind.InvalidSchema, 400, codes.InvalidArgument)
	check(kind.Forbidden, 403, codes.PermissionDenied)
	check(kind.Conflict, 409, codes.Aborted)
	check(kind.OK, 200, codes.OK)
	check(kind.Created, 201, codes.OK)
	check(kind.Updated, 204, codes.OK)
	check(kind.Deleted, 204, codes.OK)
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Updated, 202),
		WithHTTPOverride(kind.Updated, 200),
		WithGRPCDefault(kind.Conflict, int(codes.FailedPrecondition)),
		WithGRPCOverride(kind.Conflict, int(codes.AlreadyExists)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(kind.Updated); got != 200 {
		t.Fatalf("override must win; got %d, want 200", got)
	}
	if got := m.GRPCStatus(kind.Conflict); got != codes.AlreadyExists {
		t.Fatalf("override must win; got %v, want %v", got, codes.AlreadyExists)
	}
}

func TestUserDefault_ReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(kind.Deleted, 200))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(kind.Deleted); got != 200 {
		t.Fatalf("HTTPStatus(deleted) = %d, want 200", got)
	}
	// untouched kinds keep library defaults
	if got := m.HTTPStatus(kind.Updated); got != 204 {
		t.Fatalf("HTTPStatus(updated) = %d, want 204", got)
	}
}

func TestFallback_UnknownKind(t *testing.T) {
	m := Default()
	st := m.Status(kind.Kind(99))
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback = %+v", st)
	}

	m2, err := New(WithFallback(503, int(codes.Unavailable)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st2 := m2.Status(kind.Kind(99))
	if st2.HTTP != 503 || st2.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback = %+v", st2)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"http override below range", WithHTTPOverride(kind.OK, 42)},
		{"http default above range", WithHTTPDefault(kind.OK, 600)},
		{"grpc override out of range", WithGRPCOverride(kind.OK, 17)},
		{"grpc default negative", WithGRPCDefault(kind.OK, -1)},
		{"unknown kind", WithHTTPOverride(kind.Kind(40), 200)},
		{"bad fallback", WithFallback(0, 0)},
		{"grpc OK fallback", WithFallback(500, int(codes.OK))},
		{"grpc OK override for failure", WithGRPCOverride(kind.NotFound, int(codes.OK))},
		{"grpc OK default for failure", WithGRPCDefault(kind.Conflict, int(codes.OK))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m, err := New(tt.opt); err == nil {
				t.Fatalf("New() = %v, want error", m)
			}
		})
	}
}

func TestNew_GRPCOKForSuccessKinds(t *testing.T) {
	m, err := New(WithGRPCOverride(kind.Created, int(codes.OK)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := m.GRPCStatus(kind.Created); got != codes.OK {
		t.Fatalf("GRPCStatus(created) = %v, want OK", got)
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustNew should panic on invalid options")
		}
	}()
	_ = MustNew(WithHTTPOverride(kind.OK, 1000))
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(kind.Updated, 200))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(kind.Updated)
	if !strings.Contains(exp, "http: source=override -> 200") {
		t.Fatalf("Explain must include the override:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=default -> OK(0)") {
		t.Fatalf("Explain must include the gRPC default:\n%s", exp)
	}
	if exp := m.Explain(kind.Kind(99)); !strings.Contains(exp, "source=fallback") {
		t.Fatalf("Explain must report fallback:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(kind.Updated, 200))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(kind.Updated)
				_ = m.Status(kind.NotFound)
				_ = m.Status(kind.Kind(99))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.InvalidSchema)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m := MustNew(
		WithHTTPOverride(kind.Updated, 200),
		WithGRPCOverride(kind.Updated, int(codes.OK)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.Updated)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
