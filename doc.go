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

// Package errstd is a catalog of standard error kinds and error types.
//
// The catalog has three layers:
//
//   - kinds (package kind): a closed registry of categories, each with a
//     stable name, a status code and a default description;
//   - types (Type): named error variants, each bound to exactly one kind;
//   - values (Error): the runtime failure produced from a type, carrying the
//     kind's code, a message and an optional context payload.
//
// Creating and returning an error is a linear, one-shot pipeline:
//
//	func checkFile(path string) error {
//	    if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
//	        return errstd.FileNotExists.New().
//	            WithMessagef("File %s does not exist", path).
//	            WithContextValue("path", path).
//	            WithCause(err).
//	            Err()
//	    }
//	    return nil
//	}
//
// Callers that only need "a failure with a code and a message" use
// errstd.From and the accessors on *Error; callers that care about the
// variant use errors.Is with the type itself:
//
//	if errors.Is(err, errstd.FileNotExists) { ... }
//
// Instances are values and every With* method returns a modified copy, so an
// Instance can be prepared once and specialised at several call sites without
// any shared mutable state. *Error values are immutable once built.
//
// The kind table is selected through a Catalog. Default uses
// kind.SchemeStatus; NewCatalog(WithScheme(kind.SchemeLabeled)) builds the
// labeled variant.
package errstd
