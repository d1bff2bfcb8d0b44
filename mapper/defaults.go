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

	"google.golang.org/grpc/codes"
)

// defaultGRPCForHTTP translates HTTP statuses into canonical gRPC codes.
//
// A kind only carries an HTTP-style status; the gRPC side is derived from it.
// The table follows the usual gateway conventions. Statuses missing here
// resolve to the gRPC fallback (codes.Internal).
var defaultGRPCForHTTP = map[int]codes.Code{
	// 4xx: client/input issues.
	http.StatusBadRequest:          codes.InvalidArgument,    // Malformed input, failed (de)serialization.
	http.StatusUnauthorized:        codes.Unauthenticated,    // Missing or invalid credentials.
	http.StatusForbidden:           codes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:            codes.NotFound,           // Target does not exist.
	http.StatusRequestTimeout:      codes.DeadlineExceeded,   // Client took too long.
	http.StatusConflict:            codes.Aborted,            // Concurrent modification.
	http.StatusGone:                codes.NotFound,           // gRPC has no 410; NotFound is the closest.
	http.StatusPreconditionFailed:  codes.FailedPrecondition, // State does not allow the operation.
	http.StatusUnprocessableEntity: codes.InvalidArgument,    // Well-formed but semantically invalid.
	http.StatusTooEarly:            codes.FailedPrecondition, // Request made before allowed time.
	http.StatusTooManyRequests:     codes.ResourceExhausted,  // Rate limit or quota.
	499:                            codes.Canceled,           // nginx "client closed request".

	// 5xx: server/dependency issues.
	http.StatusInternalServerError: codes.Internal,         // Unexpected failure.
	http.StatusNotImplemented:      codes.Unimplemented,    // Operation not supported.
	http.StatusBadGateway:          codes.Unavailable,      // Upstream failed.
	http.StatusServiceUnavailable:  codes.Unavailable,      // Temporarily unreachable.
	http.StatusGatewayTimeout:      codes.DeadlineExceeded, // Upstream took too long.
	http.StatusInsufficientStorage: codes.ResourceExhausted,
}
