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

package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errstd"
	"dirpx.dev/errstd/adapter"
	"dirpx.dev/errstd/apis"
	"dirpx.dev/errstd/kind"
	"dirpx.dev/errstd/label"
)

// Body field names.
const (
	FieldType      = "type"
	FieldKind      = "kind"
	FieldCode      = "code"
	FieldLabel     = "label"
	FieldMessage   = "message"
	FieldContext   = "context"
	FieldRequestID = "request_id"
)

// ErrMalformedBody is returned by Decode when the body is not an error
// document written by this package.
var ErrMalformedBody = errors.New("httpx: malformed error body")

// Meta carries extra, per-request data that the HTTP layer adds on top of the
// error. All fields are optional.
type Meta struct {
	RequestID  string
	RetryAfter time.Duration
}

// Writer turns errors into HTTP responses using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Observer, when set, is told about every written error.
	Observer apis.Observer

	// Logger, when set, logs every written error: Error level for 5xx
	// statuses, Warn otherwise.
	Logger *slog.Logger

	// Redact lists context keys that are never written to the body.
	Redact []string

	// Meta, when set, supplies Meta for errors returned through HandlerFunc.
	Meta func(r *http.Request, e *errstd.Error) Meta

	// Catalog instantiates bare *errstd.Type errors. Nil means
	// errstd.Default().
	Catalog *errstd.Catalog
}

// Write serializes err and writes it to rw with the mapped HTTP status.
// A nil err writes nothing.
//
// Errors that are not errstd errors are written as Unexpected with the
// default message; their text stays in the log only.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	w.write(context.Background(), rw, w.normalize(err), meta)
}

// HandlerFunc adapts an error-returning handler to http.HandlerFunc. A
// non-nil error is written with Write.
func (w Writer) HandlerFunc(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		err := fn(rw, r)
		if err == nil {
			return
		}
		e := w.normalize(err)
		var meta Meta
		if w.Meta != nil {
			meta = w.Meta(r, e)
		}
		w.write(r.Context(), rw, e, meta,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}
}

func (w Writer) write(ctx context.Context, rw http.ResponseWriter, e *errstd.Error, meta Meta, attrs ...slog.Attr) {
	if e == nil {
		return
	}

	k := kind.Kind{Name: e.Kind(), Code: e.Code(), Label: e.Label()}
	st := w.Mapper.Status(k, e.Type())

	if w.Observer != nil {
		w.Observer.Observe("http", e, st)
	}
	if w.Logger != nil {
		level := slog.LevelWarn
		if st.HTTP >= 500 {
			level = slog.LevelError
		}
		attrs = append(attrs, slog.Int("status", st.HTTP), slog.Any("err", e))
		w.Logger.LogAttrs(ctx, level, "http request failed", attrs...)
	}

	view := adapter.Redact(adapter.ToView(e), w.Redact...)
	b, mErr := protojson.Marshal(encode(view, meta))
	if mErr != nil {
		// Unreachable for trees built by encode.
		http.Error(rw, http.StatusText(st.HTTP), st.HTTP)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfter > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(meta.RetryAfter.Seconds()))))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// normalize returns the errstd view of err. A *Type whose kind the catalog
// does not know is reported as Unexpected, like any foreign error.
func (w Writer) normalize(err error) *errstd.Error {
	if err == nil {
		return nil
	}
	var e *errstd.Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	c := w.Catalog
	if c == nil {
		c = errstd.Default()
	}
	var t *errstd.Type
	if errors.As(err, &t) && c.Bound(t) {
		return c.New(t).Err()
	}
	return c.New(errstd.Unexpected).WithCause(err).Err()
}

func encode(v apis.ErrorView, meta Meta) *structpb.Struct {
	fields := map[string]*structpb.Value{
		FieldType:    structpb.NewStringValue(v.Type),
		FieldKind:    structpb.NewStringValue(v.Kind),
		FieldCode:    structpb.NewNumberValue(float64(v.Code)),
		FieldMessage: structpb.NewStringValue(v.Message),
	}
	if v.Label != "" {
		fields[FieldLabel] = structpb.NewStringValue(v.Label)
	}
	if len(v.Context) > 0 {
		ctx := make(map[string]*structpb.Value, len(v.Context))
		for k, val := range v.Context {
			pv, err := structpb.NewValue(val)
			if err != nil {
				pv = structpb.NewStringValue(fmt.Sprint(val))
			}
			ctx[k] = pv
		}
		fields[FieldContext] = structpb.NewStructValue(&structpb.Struct{Fields: ctx})
	}
	if meta.RequestID != "" {
		fields[FieldRequestID] = structpb.NewStringValue(meta.RequestID)
	}
	return &structpb.Struct{Fields: fields}
}

// Decode reads an error body written by Writer and rebuilds the error.
// Numbers inside the context come back as float64.
//
// When the body has no message field, the message is the kind's default from
// the default registry, if the kind is known there.
func Decode(r io.Reader) (*errstd.Error, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	f := s.GetFields()

	typ, err := kind.ParseName(f[FieldType].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: type: %w", ErrMalformedBody, err)
	}
	name, err := kind.ParseName(f[FieldKind].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: kind: %w", ErrMalformedBody, err)
	}
	code := f[FieldCode].GetNumberValue()
	if code != float64(int(code)) || int(code) < kind.MinCode || int(code) > kind.MaxCode {
		return nil, fmt.Errorf("%w: code %v", ErrMalformedBody, code)
	}
	l, err := label.Parse(f[FieldLabel].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: label: %w", ErrMalformedBody, err)
	}

	k := kind.Kind{Name: name, Code: int(code), Label: l}
	if known, ok := kind.Default().Lookup(name); ok {
		k.Message = known.Message
	}

	var ctx map[string]any
	if c := f[FieldContext].GetStructValue(); c != nil && len(c.GetFields()) > 0 {
		ctx = c.AsMap()
	}

	msg := k.Message
	if v, ok := f[FieldMessage]; ok {
		msg = v.GetStringValue()
	}

	return errstd.Restore(string(typ), k, msg, ctx), nil
}
