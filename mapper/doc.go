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

// Package mapper provides deterministic, immutable mappings from response
// kinds (dirpx.dev/dresponse/kind) to transport-level statuses for HTTP and
// gRPC.
//
// # Overview
//
// The kind package already owns the canonical kind -> HTTP table. Services
// sometimes need to bend it at their edge (e.g. answer Updated with 200
// instead of 204 because the body matters), and gRPC servers need a second
// table altogether. Package mapper covers both in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per kind;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. per-kind default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// HTTP defaults are taken verbatim from kind.HTTPStatus. gRPC defaults map
// failures onto the closest canonical code (NotFound -> NotFound,
// InvalidSchema -> InvalidArgument, Forbidden -> PermissionDenied,
// Conflict -> Aborted, InternalError -> Internal) and every success to OK.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Updated, http.StatusOK),
//	)
//	if err != nil {
//	    // invalid kind or status code
//	}
//
//	st := m.Status(kind.Updated)
//	// st.HTTP == 200, st.GRPC == codes.OK
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular kind was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes. This makes it safe to share a single
// instance across handlers, goroutines, and requests.
package mapper
