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
	"dirpx.dev/errstd/label"
)

// Failure is the capability every errstd error provides: a stable status
// code and a readable message. Code is never zero for a well-formed failure.
type Failure interface {
	error

	// Code returns the status code inherited from the error's kind.
	Code() int

	// Message returns the human-readable message.
	Message() string
}

// TypedError exposes the name of the error type that produced the failure,
// e.g. "FileNotExists".
type TypedError interface {
	error

	Type() string
}

// KindedError exposes the name of the failure's kind, e.g. "IoError".
type KindedError interface {
	error

	Kind() kind.Name
}

// LabeledError exposes the kind's label. The label may be empty when the
// active scheme does not use labels.
type LabeledError interface {
	error

	Label() label.Label
}

// ContextualError exposes structured diagnostic data attached at the failure
// site.
//
// Implementations MUST return a copy; callers are free to modify the result.
// Returning nil means "no context".
type ContextualError interface {
	error

	Context() map[string]any
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	Cause() error
}
