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

// Package kind defines the closed set of outcomes a service operation can
// report through a dresponse.Status.
//
// A Kind is either a failure (InternalError, NotFound, InvalidSchema,
// Forbidden, Conflict) or a success (OK, Created, Updated, Deleted). The set
// is ordered, and everything at or after OK counts as success.
//
// Kinds have a canonical text form used in JSON payloads, configuration files
// and logs:
//
//   - lowercased;
//   - underscore-separated, e.g. "not_found", "invalid_schema";
//   - exactly one spelling per kind.
//
// The package also owns the canonical kind -> HTTP status table. Transport
// adapters that need a configurable mapping should go through
// dirpx.dev/dresponse/mapper, which is seeded from this table.
package kind
