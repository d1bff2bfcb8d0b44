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
	"fmt"
	"strings"

	"dirpx.dev/errstd/apis"
	"dirpx.dev/errstd/kind"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the library HTTP→gRPC table.
//  2. Apply user-provided options (overrides, per-type rules, fallback).
//  3. Validate every status and type name.
//  4. Freeze all maps into fresh, read-only copies.
//
// Errors returned from this function indicate invalid configuration: an HTTP
// status outside 100..599, a gRPC code outside the canonical range or a
// malformed type name.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults.
	for k, v := range defaultGRPCForHTTP {
		b.grpcForHTTP[k] = int(v)
	}

	// (2) Apply options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	for k, v := range b.httpOverride {
		if err := validHTTP(v); err != nil {
			return nil, fmt.Errorf("mapper: HTTP override for kind %q: %w", k, err)
		}
	}
	for k, v := range b.grpcOverride {
		if err := validGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: gRPC override for kind %q: %w", k, err)
		}
	}
	typeHTTP := make(map[string]int, len(b.typeHTTP))
	for t, v := range b.typeHTTP {
		n, err := kind.ParseName(t)
		if err != nil {
			return nil, fmt.Errorf("mapper: HTTP rule for type %q: %w", t, err)
		}
		if err := validHTTP(v); err != nil {
			return nil, fmt.Errorf("mapper: HTTP rule for type %q: %w", t, err)
		}
		typeHTTP[string(n)] = v
	}
	typeGRPC := make(map[string]int, len(b.typeGRPC))
	for t, v := range b.typeGRPC {
		n, err := kind.ParseName(t)
		if err != nil {
			return nil, fmt.Errorf("mapper: gRPC rule for type %q: %w", t, err)
		}
		if err := validGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: gRPC rule for type %q: %w", t, err)
		}
		typeGRPC[string(n)] = v
	}
	for h, g := range b.grpcForHTTP {
		if err := validHTTP(h); err != nil {
			return nil, fmt.Errorf("mapper: HTTP→gRPC entry: %w", err)
		}
		if err := validGRPC(g); err != nil {
			return nil, fmt.Errorf("mapper: HTTP→gRPC entry for %d: %w", h, err)
		}
	}
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := validGRPC(int(b.fallbackGRPC)); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}

	// (4) Freeze.
	m := &mapper{
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		typeHTTP:     freeze(typeHTTP),
		typeGRPC:     freezeGRPC(typeGRPC),
		grpcForHTTP:  freezeGRPC(b.grpcForHTTP),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	return m, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is the immutable apis.Mapper implementation. Lookups are a handful
// of map reads and safe for concurrent use once constructed.
type mapper struct {
	// httpOverride / grpcOverride hold per-kind overrides.
	httpOverride map[kind.Name]int
	grpcOverride map[kind.Name]codes.Code

	// typeHTTP / typeGRPC hold exact per-type overrides.
	typeHTTP map[string]int
	typeGRPC map[string]codes.Code

	// grpcForHTTP translates the resolved HTTP status into a gRPC code.
	grpcForHTTP map[int]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and type.
//
// Resolution order (highest to lowest):
//  1. exact per-type override;
//  2. per-kind override;
//  3. the kind's own code;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(k kind.Kind, typ string) int {
	_, v := m.resolveHTTP(k, typ)
	return v
}

// GRPCStatus resolves a gRPC status for the given kind and type.
//
// Resolution order:
//  1. exact per-type override;
//  2. per-kind override;
//  3. translation of the resolved HTTP status;
//  4. fallback (codes.Internal unless configured).
func (m *mapper) GRPCStatus(k kind.Kind, typ string) codes.Code {
	_, v := m.resolveGRPC(k, typ)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(k kind.Kind, typ string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, typ),
		GRPC: m.GRPCStatus(k, typ),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, type) pair.
//
// Example output:
//
//	kind="IoError" code=500 type="FileNotExists"
//	http: source=type -> 404
//	grpc: source=default http=404 -> NOTFOUND(5)
//
// source ∈ {type | kind | default | fallback}.
func (m *mapper) Explain(k kind.Kind, typ string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q code=%d type=%q\n", k.Name, k.Code, typ)

	src, v := m.resolveHTTP(k, typ)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)

	src, g := m.resolveGRPC(k, typ)
	if src == "default" {
		_, _ = fmt.Fprintf(&b, "grpc: source=default http=%d -> %s", m.HTTPStatus(k, typ), grpcName(g))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", src, grpcName(g))
	}
	return b.String()
}

// resolveHTTP returns the tier that matched and the resulting status.
func (m *mapper) resolveHTTP(k kind.Kind, typ string) (source string, status int) {
	if v, ok := m.typeHTTP[typ]; ok && typ != "" {
		return "type", v
	}
	if v, ok := m.httpOverride[k.Name]; ok {
		return "kind", v
	}
	if validHTTP(k.Code) == nil {
		return "default", k.Code
	}
	return "fallback", m.fallbackHTTP
}

// resolveGRPC returns the tier that matched and the resulting code.
func (m *mapper) resolveGRPC(k kind.Kind, typ string) (source string, c codes.Code) {
	if v, ok := m.typeGRPC[typ]; ok && typ != "" {
		return "type", v
	}
	if v, ok := m.grpcOverride[k.Name]; ok {
		return "kind", v
	}
	if v, ok := m.grpcForHTTP[m.HTTPStatus(k, typ)]; ok {
		return "default", v
	}
	return "fallback", m.fallbackGRPC
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

func validHTTP(v int) error {
	if v < kind.MinCode || v > kind.MaxCode {
		return fmt.Errorf("HTTP status %d out of range", v)
	}
	return nil
}

func validGRPC(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("gRPC code %d out of range", v)
	}
	return nil
}
