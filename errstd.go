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
	"maps"

	"dirpx.dev/errstd/apis"
	"dirpx.dev/errstd/kind"
	"dirpx.dev/errstd/label"
)

var (
	_ apis.Failure         = (*Error)(nil)
	_ apis.TypedError      = (*Error)(nil)
	_ apis.KindedError     = (*Error)(nil)
	_ apis.LabeledError    = (*Error)(nil)
	_ apis.ContextualError = (*Error)(nil)
	_ apis.CausedError     = (*Error)(nil)
	_ apis.ViewProvider    = (*Error)(nil)
)

// Error is the generic, immutable carrier every error type converts into.
//
// It carries:
//   - the name of the type it was produced from, e.g. "FileNotExists";
//   - the bound kind (name, code, label);
//   - the message, either the kind's default or an override;
//   - an optional context map with structured diagnostic data;
//   - an optional wrapped cause.
//
// Error has no mutators. Build it through a Type (Type.New ... Err), E or
// Restore.
type Error struct {
	typ     string
	kind    kind.Kind
	message string
	context map[string]any
	cause   error
}

// Type returns the name of the error type, e.g. "FileRead".
func (e *Error) Type() string {
	if e == nil {
		return ""
	}
	return e.typ
}

// Kind returns the name of the bound kind, e.g. "IoError".
func (e *Error) Kind() kind.Name {
	if e == nil {
		return ""
	}
	return e.kind.Name
}

// Code returns the status code inherited from the kind.
func (e *Error) Code() int {
	if e == nil {
		return 0
	}
	return e.kind.Code
}

// Label returns the kind's label, or label.Empty when the active scheme has
// none.
func (e *Error) Label() label.Label {
	if e == nil {
		return label.Empty
	}
	return e.kind.Label
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Context returns a copy of the context map, or nil when there is none.
// Changing the returned map does not affect e.
func (e *Error) Context() map[string]any {
	if e == nil {
		return nil
	}
	return cloneContext(e.context)
}

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>:<type>: <message>
//
// e.g. "IoError:FileNotExists: File /tmp/x does not exist". Context and cause
// are left out so the string stays safe to show.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%s: %s", e.kind.Name, e.typ, e.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether e was produced from target. target may be a *Type or
// another *Error; in both cases the type names are compared.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case *Type:
		return t != nil && t.name == e.typ
	case *Error:
		return t != nil && t.typ == e.typ
	}
	return false
}

// ErrorView returns a serializable snapshot of e. The context is a copy.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Type:    e.typ,
		Kind:    string(e.kind.Name),
		Code:    e.kind.Code,
		Label:   string(e.kind.Label),
		Message: e.message,
		Context: cloneContext(e.context),
	}
}

// cloneContext copies m; empty maps collapse to nil.
func cloneContext(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

// mergeContext returns a new map holding dst overlaid with src. Keys in src
// win. dst is never modified.
func mergeContext(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	maps.Copy(out, dst)
	maps.Copy(out, src)
	return out
}
