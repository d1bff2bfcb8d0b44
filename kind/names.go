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

package kind

// Standard kind names. They exist in every built-in Scheme; only their codes
// and labels differ between schemes.
const (
	// Unknown covers uncategorized or unexpected failures: invariants that
	// should never break, panics turned into errors, errors from code that
	// does not classify its own failures.
	Unknown Name = "UnknownError"

	// IO covers failures while reading or writing files and streams.
	IO Name = "IoError"

	// Validation covers malformed input, including failures to serialize or
	// deserialize a value.
	Validation Name = "ValidationError"
)

// Default descriptions of the standard kinds.
const (
	UnknownMessage    = "Unexpected error"
	IOMessage         = "IO error"
	ValidationMessage = "Validation error"
)
