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

// Package mapper provides deterministic, immutable mappings from errstd
// kinds (dirpx.dev/errstd/kind) and error type names to transport-level
// statuses for HTTP and gRPC.
//
// # Overview
//
// Every kind already carries an HTTP-style status code, so the common case
// needs no configuration at all: an IoError with code 500 is written as HTTP
// 500 and gRPC INTERNAL. Transport layers sometimes need more precision, e.g.
// reporting FileNotExists as 404 while FileRead stays 500. Package mapper
// does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: per kind and per type;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the error type;
//  2. override for the kind;
//  3. the kind's own code (gRPC: translated from the resolved HTTP status);
//  4. global fallback (500 / codes.Internal).
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithTypeHTTP("FileNotExists", http.StatusNotFound),
//	    mapper.WithHTTPOverride(kind.Validation, http.StatusUnprocessableEntity),
//	)
//	if err != nil {
//	    // invalid status, malformed type name, ...
//	}
//
//	st := m.Status(k, "FileNotExists")
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (kind, type) pair
// was resolved. It is intended for inspection and logging, not for stable
// machine parsing.
package mapper
