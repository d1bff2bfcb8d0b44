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
	"dirpx.dev/errstd/kind"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride replaces the HTTP status of every error of kind k.
// Per-type overrides still win over it.
func WithHTTPOverride(k kind.Name, http int) Option {
	return func(b *builder) { b.httpOverride[k] = http }
}

// WithGRPCOverride replaces the gRPC status of every error of kind k.
// Per-type overrides still win over it.
func WithGRPCOverride(k kind.Name, grpc int) Option {
	return func(b *builder) { b.grpcOverride[k] = grpc }
}

// WithTypeHTTP sets the HTTP status for one error type, e.g.
// WithTypeHTTP("FileNotExists", http.StatusNotFound).
func WithTypeHTTP(typ string, http int) Option {
	return func(b *builder) { b.typeHTTP[typ] = http }
}

// WithTypeGRPC sets the gRPC status for one error type.
func WithTypeGRPC(typ string, grpc int) Option {
	return func(b *builder) { b.typeGRPC[typ] = grpc }
}

// WithGRPCForHTTP changes how a resolved HTTP status is translated into a
// gRPC code when no gRPC override applies.
func WithGRPCForHTTP(http, grpc int) Option {
	return func(b *builder) { b.grpcForHTTP[http] = grpc }
}

// WithFallback sets the statuses used when a kind has no valid code and no
// rule matches. The library fallback is 500 / codes.Internal.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = codes.Code(grpc)
	}
}
