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

// Package grpcx carries dresponse statuses across gRPC boundaries.
//
// Failure statuses travel as a gRPC status whose code comes from an
// apis.Mapper and which holds a google.rpc.ErrorInfo detail naming the
// kind, so the receiving side can recover the exact kind even when several
// kinds share one gRPC code.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/kind"
	"dirpx.dev/dresponse/mapper"
	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain stamped on every detail written here.
const Domain = "dresponse.dirpx.dev"

// Metadata keys used in the ErrorInfo detail.
const (
	MetaHTTPStatus  = "http_status"
	MetaCorrelation = "correlation_id"
	MetaTraceID     = "trace_id"
	MetaSpanID      = "span_id"
)

// Extras holds optional correlation data embedded into the ErrorInfo
// metadata. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent / OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string
}

// MetaFn extracts Extras from context and the failing status.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, s dresponse.Status) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors carrying a *dresponse.Error into gRPC status errors.
//
// The provided apis.Mapper resolves the gRPC code; a nil mapper means the
// library defaults. The optional MetaFn adds correlation data to the
// detail. Errors that are not dresponse errors are returned unchanged.
// A nil logger disables logging.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn, logger *zerolog.Logger) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}
	if metaFn == nil {
		metaFn = func(context.Context, dresponse.Status) Extras { return Extras{} }
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *dresponse.Error
		if !errors.As(err, &de) {
			return nil, err
		}

		s := de.Status
		out := toGRPC(s, m, metaFn(ctx, s))

		ev := logger.Debug()
		if s.Kind() == kind.InternalError {
			ev = logger.Error().Err(de.Cause)
		}
		ev.Str("method", info.FullMethod).
			Str("kind", s.Kind().String()).
			Str("grpc_code", gstatus.Code(out).String()).
			Str("status_message", s.Message).
			Msg("rpc failed")

		return nil, out
	}
}

// ToGRPC converts s into a gRPC status error. Success statuses yield nil.
// A nil mapper means the library defaults. A failure that the mapper
// resolves to codes.OK is sent as codes.Internal, so it is never lost.
func ToGRPC(s dresponse.Status, m apis.Mapper) error {
	if m == nil {
		m = mapper.Default()
	}
	return toGRPC(s, m, Extras{})
}

func toGRPC(s dresponse.Status, m apis.Mapper, ex Extras) error {
	if s.Success() {
		return nil
	}
	t := m.Status(s.Kind())

	md := map[string]string{MetaHTTPStatus: strconv.Itoa(t.HTTP)}
	if ex.CorrelationID != "" {
		md[MetaCorrelation] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		md[MetaTraceID] = ex.TraceID
	}
	if ex.SpanID != "" {
		md[MetaSpanID] = ex.SpanID
	}

	code := t.GRPC
	if code == gcodes.OK {
		code = gcodes.Internal
	}
	base := gstatus.New(code, s.Message)
	with, err := base.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason(s.Kind()),
		Domain:   Domain,
		Metadata: md,
	})
	if err != nil {
		return base.Err()
	}
	return with.Err()
}

// FromGRPC recovers a dresponse.Status from a gRPC error.
//
// The kind is taken from the ErrorInfo detail when one from Domain is
// present; otherwise the gRPC code is mapped back through the default
// table. The boolean is false when err is not a gRPC status error.
// A nil err yields OK.
func FromGRPC(err error) (dresponse.Status, bool) {
	if err == nil {
		return dresponse.OK(), true
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return dresponse.InternalError(err.Error()), false
	}
	if info, ok := ExtractErrorInfo(err); ok {
		if k, perr := kind.Parse(info.GetReason()); perr == nil {
			return dresponse.New(k, st.Message()), true
		}
	}
	return dresponse.New(KindForCode(st.Code()), st.Message()), true
}

// ExtractErrorInfo pulls the dresponse ErrorInfo detail out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	for _, a := range st.Proto().GetDetails() {
		info := new(errdetails.ErrorInfo)
		if !a.MessageIs(info) || a.UnmarshalTo(info) != nil {
			continue
		}
		if info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// KindForCode maps a gRPC code back to the first failure kind, in canonical
// order, whose default gRPC code matches. OK maps to kind.OK and unmatched
// codes to kind.InternalError.
func KindForCode(c gcodes.Code) kind.Kind {
	if c == gcodes.OK {
		return kind.OK
	}
	d := mapper.Default()
	for _, k := range kind.All() {
		if !k.IsSuccess() && d.GRPCStatus(k) == c {
			return k
		}
	}
	return kind.InternalError
}

// reason renders k in the UPPER_SNAKE form ErrorInfo reasons use.
func reason(k kind.Kind) string {
	return strings.ToUpper(k.String())
}
