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
	"dirpx.dev/dresponse/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP returns the library's built-in HTTP mappings, one per kind,
// copied from the canonical table in package kind.
func defaultHTTP() map[kind.Kind]int {
	m := make(map[kind.Kind]int, len(kind.All()))
	for _, k := range kind.All() {
		m[k] = kind.HTTPStatus(k)
	}
	return m
}

// defaultGRPC defines the library's built-in gRPC mappings.
// gRPC has no notion of "created" or "deleted": every success is OK.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.InternalError: codes.Internal,         // Unexpected server-side failure.
	kind.NotFound:      codes.NotFound,         // Resource does not exist (or is not visible).
	kind.InvalidSchema: codes.InvalidArgument,  // Bad input shape or validation errors.
	kind.Forbidden:     codes.PermissionDenied, // Caller is not allowed to perform the action.
	kind.Conflict:      codes.Aborted,          // Concurrent update or state clash.

	kind.OK:      codes.OK,
	kind.Created: codes.OK,
	kind.Updated: codes.OK,
	kind.Deleted: codes.OK,
}
