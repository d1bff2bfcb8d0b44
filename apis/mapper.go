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

package apis

import (
	"dirpx.dev/errstd/kind"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status rules.
// It resolves a kind (and optionally the error type name) into transport
// statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given kind and type.
	// If no type-specific rule exists, the mapper must fall back to the
	// kind-level rule.
	HTTPStatus(k kind.Kind, typ string) int

	// GRPCStatus returns the gRPC status code for the given kind and type.
	GRPCStatus(k kind.Kind, typ string) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(k kind.Kind, typ string) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(k kind.Kind, typ string) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}

// Observer is notified every time a transport adapter emits an error.
// Implementations must be safe for concurrent use.
type Observer interface {
	// Observe records one emitted error. transport is "http" or "grpc".
	Observe(transport string, f Failure, st Status)
}
