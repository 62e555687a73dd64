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

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
)

// Kind is the outcome classification carried by every dresponse.Status.
//
// It is a small integer rather than a string so that the ordering of the
// set is part of the type. The zero value is InternalError, which means a
// forgotten assignment reports a failure, never a success.
type Kind uint8

var (
	// ErrKindInvalid is returned when a value cannot be parsed as, or does
	// not hold, one of the known kinds.
	ErrKindInvalid = errors.New("dresponse: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into JSON payloads and config structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
	_ fmt.Stringer             = Kind(0)
)

// All returns every kind in canonical order, failures first.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all[:])
	return out
}

// Parse takes a user-provided string, normalizes it and resolves it to a
// Kind. The canonical form ("not_found"), the Go identifier form
// ("NotFound") and the run-together lower case form ("notfound", which is
// what case-folding config loaders turn "NotFound" into) are accepted.
func Parse(s string) (Kind, error) {
	n := Normalize(s)
	for _, k := range all {
		if names[k] == n {
			return k, nil
		}
	}
	if !strings.Contains(n, "_") {
		for _, k := range all {
			if strings.ReplaceAll(names[k], "_", "") == n {
				return k, nil
			}
		}
	}
	return InternalError, fmt.Errorf("%w: %q", ErrKindInvalid, s)
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings an arbitrary string closer to the canonical kind form.
//
// It performs only obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - splits camel case ("NotFound" -> "not_found");
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// The result is not guaranteed to name a kind; use Parse for that.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		switch r {
		case '-', ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}
	return b.String()
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := rank[k]
	return ok
}

// IsSuccess reports whether k sits at or after OK in the canonical ordering.
// Unknown values are never a success.
func (k Kind) IsSuccess() bool {
	r, ok := rank[k]
	return ok && r >= rank[OK]
}

// Ordinal returns the position of k in the canonical ordering, or -1 for
// values outside the declared set.
func (k Kind) Ordinal() int {
	if r, ok := rank[k]; ok {
		return r
	}
	return -1
}

// HTTPStatus returns the canonical HTTP status code for k.
// Unknown values fall back to 500.
func (k Kind) HTTPStatus() int {
	if v, ok := httpStatus[k]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// String returns the canonical text form of k, or "kind(N)" for values
// outside the declared set.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return names[k]
}

// MarshalText implements encoding.TextMarshaler.
//
// Only declared kinds can be marshaled.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrKindInvalid, uint8(k))
	}
	return []byte(names[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes the provided text before resolving it.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// HTTPStatus is the function form of Kind.HTTPStatus. It is total: every
// value, declared or not, maps to a status code.
func HTTPStatus(k Kind) int { return k.HTTPStatus() }

// IsSuccess is the function form of Kind.IsSuccess.
func IsSuccess(k Kind) bool { return k.IsSuccess() }
