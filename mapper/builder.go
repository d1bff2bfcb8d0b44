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
	"net/http"

	"dirpx.dev/errstd/kind"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpOverride holds per-kind HTTP overrides (above the kind's code).
	httpOverride map[kind.Name]int
	// grpcOverride holds per-kind gRPC overrides as ints; converted in New().
	grpcOverride map[kind.Name]int

	// typeHTTP / typeGRPC hold exact per-type overrides, keyed by raw type
	// name. Names are validated in New().
	typeHTTP map[string]int
	typeGRPC map[string]int

	// grpcForHTTP translates a resolved HTTP status into a gRPC code.
	// Seeded from defaultGRPCForHTTP.
	grpcForHTTP map[int]int

	// global fallbacks used when nothing else applies.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder.
func newBuilder() *builder {
	return &builder{
		httpOverride: make(map[kind.Name]int),
		grpcOverride: make(map[kind.Name]int),
		typeHTTP:     make(map[string]int),
		typeGRPC:     make(map[string]int),
		grpcForHTTP:  make(map[int]int, len(defaultGRPCForHTTP)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
