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

package errstd

import (
	"fmt"

	"dirpx.dev/errstd/kind"
	"dirpx.dev/errstd/label"
)

// Instance is an error under construction.
//
// It is a value: every With* method returns a modified copy and leaves the
// receiver untouched. Once enriched, Err converts it into the immutable
// *Error that is propagated up the call chain.
//
// The zero Instance is not bound to any type; Err on it yields an Unexpected
// error.
type Instance struct {
	typ     *Type
	kind    kind.Kind
	message string
	context map[string]any
	cause   error
}

// Type returns the error type the instance was created from.
func (i Instance) Type() *Type { return i.typ }

// Kind returns the resolved kind.
func (i Instance) Kind() kind.Kind { return i.kind }

// Code returns the kind's status code.
func (i Instance) Code() int { return i.kind.Code }

// Label returns the kind's label.
func (i Instance) Label() label.Label { return i.kind.Label }

// Message returns the current message: the kind's default unless overridden.
func (i Instance) Message() string { return i.message }

// Context returns a copy of the context map, or nil when empty.
func (i Instance) Context() map[string]any { return cloneContext(i.context) }

// WithMessage replaces the message. The override is taken verbatim; the last
// call wins when chained.
func (i Instance) WithMessage(msg string) Instance {
	i.message = msg
	return i
}

// WithMessagef is WithMessage with fmt.Sprintf formatting.
func (i Instance) WithMessagef(format string, args ...any) Instance {
	i.message = fmt.Sprintf(format, args...)
	return i
}

// WithContext merges kv into the context. Keys in kv override existing keys.
// kv is copied; later changes to it are not observed.
func (i Instance) WithContext(kv map[string]any) Instance {
	if len(kv) == 0 {
		return i
	}
	i.context = mergeContext(i.context, kv)
	return i
}

// WithContextValue sets a single context key.
func (i Instance) WithContextValue(k string, v any) Instance {
	i.context = mergeContext(i.context, map[string]any{k: v})
	return i
}

// WithCause attaches an underlying error. A nil err leaves the instance
// unchanged.
func (i Instance) WithCause(err error) Instance {
	if err == nil {
		return i
	}
	i.cause = err
	return i
}

// Err converts the instance into the generic *Error. The conversion keeps the
// type name, kind, code, label, message, context and cause as they are.
func (i Instance) Err() *Error {
	if i.typ == nil {
		return Unexpected.New().Err()
	}
	return &Error{
		typ:     i.typ.name,
		kind:    i.kind,
		message: i.message,
		context: i.context,
		cause:   i.cause,
	}
}
