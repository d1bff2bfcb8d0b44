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

// Package grpcx projects errstd errors onto gRPC statuses.
//
// Server side, UnaryServerInterceptor and StreamServerInterceptor turn any
// *errstd.Error returned by a handler into a status whose code comes from an
// apis.Mapper and whose details carry an errdetails.ErrorInfo:
//
//	ErrorInfo{
//	    Reason:   "FileNotExists",
//	    Domain:   "errstd.dirpx.dev",
//	    Metadata: {"kind": "IoError", "code": "500", "ctx.path": "/tmp/x"},
//	}
//
// Client side, FromError rebuilds the *errstd.Error from such a status, so the
// type name, kind, code, label and message survive the round-trip unchanged.
// Context values travel as strings.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/errstd"
	"dirpx.dev/errstd/apis"
	"dirpx.dev/errstd/kind"
	"dirpx.dev/errstd/label"
)

// Domain is the default ErrorInfo domain.
const Domain = "errstd.dirpx.dev"

// Metadata keys used in ErrorInfo.
const (
	MetaKind       = "kind"
	MetaCode       = "code"
	MetaLabel      = "label"
	MetaContextPfx = "ctx."
)

// Extras holds optional, per-request details attached next to ErrorInfo.
// All fields are optional.
type Extras struct {
	// RequestID becomes an errdetails.RequestInfo.
	RequestID string

	// RetryAfter becomes an errdetails.RetryInfo when positive.
	RetryAfter time.Duration

	// Links become an errdetails.Help.
	Links []*errdetails.Help_Link

	// Debug is attached as is. Only use it for internal callers.
	Debug *errdetails.DebugInfo
}

// MetaFn extracts Extras from the request context and the error.
type MetaFn func(ctx context.Context, e *errstd.Error) Extras

// Option configures the interceptors.
type Option func(*config)

type config struct {
	domain   string
	metaFn   MetaFn
	observer apis.Observer
	logger   *slog.Logger
	catalog  *errstd.Catalog
}

// WithDomain sets the ErrorInfo domain.
func WithDomain(d string) Option {
	return func(c *config) { c.domain = d }
}

// WithMeta sets the function that supplies Extras.
func WithMeta(fn MetaFn) Option {
	return func(c *config) { c.metaFn = fn }
}

// WithObserver reports every converted error to o.
func WithObserver(o apis.Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithLogger logs every converted error: Error level for 5xx statuses, Warn
// otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCatalog instantiates bare *errstd.Type errors through c instead of
// errstd.Default().
func WithCatalog(c *errstd.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		domain:  Domain,
		metaFn:  func(context.Context, *errstd.Error) Extras { return Extras{} },
		catalog: errstd.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errstd errors into gRPC statuses with ErrorInfo details.
//
// Errors that already carry a gRPC status are returned unchanged. Any other
// error is reported as Unexpected, with the handler error kept as cause for
// logging but not sent to the client.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	c := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, c.convert(ctx, m, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	c := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		ctx := context.Background()
		if ss != nil {
			ctx = ss.Context()
		}
		return c.convert(ctx, m, info.FullMethod, err)
	}
}

func (c *config) convert(ctx context.Context, m apis.Mapper, method string, err error) error {
	e := c.asErrstd(err)
	if e == nil {
		// Already a gRPC status; not ours.
		return err
	}

	k := kind.Kind{Name: e.Kind(), Code: e.Code(), Label: e.Label()}
	st := m.Status(k, e.Type())

	if c.observer != nil {
		c.observer.Observe("grpc", e, st)
	}
	if c.logger != nil {
		level := slog.LevelWarn
		if st.HTTP >= 500 {
			level = slog.LevelError
		}
		c.logger.LogAttrs(ctx, level, "grpc request failed",
			slog.String("method", method),
			slog.String("grpc_code", st.GRPC.String()),
			slog.Any("err", e),
		)
	}

	return toStatus(st.GRPC, e, c.domain, c.metaFn(ctx, e)).Err()
}

// asErrstd returns the errstd view of err, or nil when err is already a gRPC
// status error. A *Type whose kind the catalog does not know is reported as
// Unexpected.
func (c *config) asErrstd(err error) *errstd.Error {
	var e *errstd.Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	var t *errstd.Type
	if errors.As(err, &t) && c.catalog.Bound(t) {
		return c.catalog.New(t).Err()
	}
	if _, ok := gstatus.FromError(err); ok {
		return nil
	}
	return c.catalog.New(errstd.Unexpected).WithCause(err).Err()
}

// ToStatus builds the gRPC status for e using the default Domain.
func ToStatus(m apis.Mapper, e *errstd.Error, ex Extras) *gstatus.Status {
	k := kind.Kind{Name: e.Kind(), Code: e.Code(), Label: e.Label()}
	return toStatus(m.GRPCStatus(k, e.Type()), e, Domain, ex)
}

func toStatus(code gcodes.Code, e *errstd.Error, domain string, ex Extras) *gstatus.Status {
	base := gstatus.New(code, e.Message())

	md := map[string]string{
		MetaKind: string(e.Kind()),
		MetaCode: strconv.Itoa(e.Code()),
	}
	if l := e.Label(); l != label.Empty {
		md[MetaLabel] = string(l)
	}
	for k, v := range e.Context() {
		md[MetaContextPfx+k] = fmt.Sprint(v)
	}

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{Reason: e.Type(), Domain: domain, Metadata: md},
	}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}
	if len(ex.Links) > 0 {
		details = append(details, &errdetails.Help{Links: ex.Links})
	}
	if ex.Debug != nil {
		details = append(details, ex.Debug)
	}

	// If details cannot be attached, return the bare status.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a gRPC error, if present.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// FromError rebuilds an *errstd.Error from a gRPC error produced by this
// package. It reports false when err carries no ErrorInfo or the metadata is
// malformed.
//
// The status message is taken as is. The kind's default message is filled
// in from the default registry when the kind is known there.
func FromError(err error) (*errstd.Error, bool) {
	ei, ok := ExtractErrorInfo(err)
	if !ok {
		return nil, false
	}
	md := ei.GetMetadata()

	name, err2 := kind.ParseName(md[MetaKind])
	if err2 != nil {
		return nil, false
	}
	code, err2 := strconv.Atoi(md[MetaCode])
	if err2 != nil {
		return nil, false
	}
	l, err2 := label.Parse(md[MetaLabel])
	if err2 != nil {
		return nil, false
	}
	k := kind.Kind{Name: name, Code: code, Label: l}
	if known, ok := kind.Default().Lookup(name); ok {
		k.Message = known.Message
	}

	var ctx map[string]any
	for key, v := range md {
		if rest, found := strings.CutPrefix(key, MetaContextPfx); found {
			if ctx == nil {
				ctx = make(map[string]any)
			}
			ctx[rest] = v
		}
	}

	st, _ := gstatus.FromError(err)
	return errstd.Restore(ei.GetReason(), k, st.Message(), ctx), true
}
