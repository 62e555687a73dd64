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

package kind

import "net/http"

// Failure kinds
//
// These kinds describe why an operation did not complete. They are declared
// first: every failure sorts before OK.
const (
	// InternalError indicates an unexpected, non-classified failure.
	// It is the zero value and the fallback for anything unknown.
	//
	// Maps to HTTP 500.
	InternalError Kind = iota

	// NotFound indicates that the requested resource does not exist.
	//
	// Maps to HTTP 404.
	NotFound

	// InvalidSchema indicates that the input was malformed or failed
	// validation.
	//
	// Maps to HTTP 400.
	InvalidSchema

	// Forbidden indicates that the caller is not allowed to perform the
	// operation.
	//
	// Maps to HTTP 403.
	Forbidden

	// Conflict indicates that the operation clashes with the current state
	// of the resource.
	//
	// Maps to HTTP 409.
	Conflict

	// Success kinds
	//
	// Everything from OK onwards is a success.

	// OK indicates a plain successful operation.
	//
	// Maps to HTTP 200.
	OK

	// Created indicates that a resource was created.
	//
	// Maps to HTTP 201.
	Created

	// Updated indicates that a resource was updated.
	//
	// Maps to HTTP 204.
	Updated

	// Deleted indicates that a resource was deleted.
	//
	// Maps to HTTP 204.
	Deleted
)

// all lists every kind in canonical order.
var all = [...]Kind{
	InternalError,
	NotFound,
	InvalidSchema,
	Forbidden,
	Conflict,
	OK,
	Created,
	Updated,
	Deleted,
}

// names holds the canonical text form of each kind, indexed by ordinal.
var names = [...]string{
	InternalError: "internal_error",
	NotFound:      "not_found",
	InvalidSchema: "invalid_schema",
	Forbidden:     "forbidden",
	Conflict:      "conflict",
	OK:            "ok",
	Created:       "created",
	Updated:       "updated",
	Deleted:       "deleted",
}

// rank is the explicit position of each kind in the canonical ordering.
// IsSuccess compares against rank[OK] instead of the raw iota values, so
// reordering the const block cannot silently change which kinds succeed.
var rank = map[Kind]int{
	InternalError: 0,
	NotFound:      1,
	InvalidSchema: 2,
	Forbidden:     3,
	Conflict:      4,
	OK:            5,
	Created:       6,
	Updated:       7,
	Deleted:       8,
}

// httpStatus is the canonical kind -> HTTP status table.
//
// Updated and Deleted both map to 204 No Content even though a response of
// those kinds may carry content. HTTP writers must drop the body for them.
var httpStatus = map[Kind]int{
	InternalError: http.StatusInternalServerError,
	NotFound:      http.StatusNotFound,
	InvalidSchema: http.StatusBadRequest,
	Forbidden:     http.StatusForbidden,
	Conflict:      http.StatusConflict,
	OK:            http.StatusOK,
	Created:       http.StatusCreated,
	Updated:       http.StatusNoContent,
	Deleted:       http.StatusNoContent,
}
