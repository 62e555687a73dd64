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

package dresponse

import (
	"errors"
	"fmt"

	"dirpx.dev/dresponse/kind"
)

// Error carries a failure Status through ordinary Go error returns.
//
// It carries:
//   - Status: the failure outcome (kind + message);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared.
type Error struct {
	// Status is the outcome this error reports. It is expected to be a
	// failure kind; Status.Err never produces an Error for a success.
	Status Status

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return dresponse.E(kind.Conflict, "version mismatch",
//	    dresponse.WithCauseOption(err),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Status: New(k, msg)}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Err returns s as an error. Success statuses yield nil so that
//
//	if err := st.Err(); err != nil { ... }
//
// reads naturally.
func (s Status) Err() error {
	if s.Success() {
		return nil
	}
	return &Error{Status: s}
}

// FromError recovers a Status from err.
//
//   - nil yields OK();
//   - an *Error anywhere in the chain yields its Status;
//   - anything else yields InternalError carrying err's text.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Status
	}
	return InternalError(err.Error())
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or just <kind> when the message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Status.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Kind returns the kind of the carried Status.
func (e *Error) Kind() kind.Kind { return e.Status.Kind() }

// WithMessage returns a shallow copy of e with a replaced human message.
// The kind is kept.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Status.Message = msg
	return &cp
}

// WithMessagef is the formatted variant of WithMessage.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
