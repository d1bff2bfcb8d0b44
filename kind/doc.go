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

// Package kind provides the kind registry: the closed set of error
// categories that every error type in errstd is bound to.
//
// A kind is a triple of:
//
//   - a stable identifier (Name), e.g. "IoError";
//   - a status code from the HTTP status space, e.g. 500;
//   - a default, human-readable description, e.g. "IO error".
//
// A kind may additionally carry a Label (see package label), a second,
// status-independent identifier such as "Err-00002".
//
// Registries are built once from a declarative table (NewRegistry /
// MustNewRegistry) and are immutable afterwards, so they can be read from
// any number of goroutines without locking. Duplicate identifiers are
// rejected when the table is built, not when it is queried.
//
// Two standard tables ship with the package, selected by Scheme:
//
//	SchemeStatus   UnknownError=500  IoError=500  ValidationError=400
//	SchemeLabeled  UnknownError=500 Err-00001  IoError=400 Err-00002
//	               ValidationError=400 Err-00003
//
// Default returns the SchemeStatus registry.
package kind
