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
	"errors"
	"fmt"

	"dirpx.dev/errstd/kind"
)

// ErrTypeInvalid is returned by Define for malformed type declarations.
var ErrTypeInvalid = errors.New("errstd: invalid type")

// Type is a named error variant bound to exactly one kind.
//
// A Type refers to its kind by name only; code and default message are
// resolved from the registry of the catalog that instantiates it. *Type
// implements error so that it can be used as an errors.Is target:
//
//	if errors.Is(err, errstd.FileRead) { ... }
type Type struct {
	name string
	kind kind.Name
}

// Define declares a new error type bound to kind k. The name follows the same
// rules as kind names (see kind.ParseName).
//
// Define only checks the declaration itself; whether k exists is checked by
// NewCatalog.
func Define(name string, k kind.Name) (*Type, error) {
	n, err := kind.ParseName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: name %q: %w", ErrTypeInvalid, name, err)
	}
	if err := kind.ValidateName(k); err != nil {
		return nil, fmt.Errorf("%w: %q bound to kind %q: %w", ErrTypeInvalid, name, k, err)
	}
	return &Type{name: string(n), kind: k}, nil
}

// MustDefine is the panic-on-error variant of Define, for package-level
// declarations.
func MustDefine(name string, k kind.Name) *Type {
	t, err := Define(name, k)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the type name.
func (t *Type) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Kind returns the name of the bound kind.
func (t *Type) Kind() kind.Name {
	if t == nil {
		return ""
	}
	return t.kind
}

// String returns "Name->Kind".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.name + "->" + string(t.kind)
}

// Error returns the type name. It exists so that *Type satisfies error.
func (t *Type) Error() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// New starts a new instance from the default catalog: code and message come
// from the bound kind, the context is empty.
//
// New panics with ErrUnboundKind when t's kind is not in the default
// registry. Types bound to custom kinds are instantiated through their own
// Catalog.
func (t *Type) New() Instance {
	return Default().New(t)
}

// Standard error types.
var (
	// Unexpected covers failures nobody classified.
	Unexpected = MustDefine("Unexpected", kind.Unknown)

	// FileRead reports a failure while reading a file or stream.
	FileRead = MustDefine("FileRead", kind.IO)

	// FileNotExists reports a missing file.
	FileNotExists = MustDefine("FileNotExists", kind.IO)

	// DeserializationError reports input that could not be decoded.
	DeserializationError = MustDefine("DeserializationError", kind.Validation)

	// SerializationError reports a value that could not be encoded.
	SerializationError = MustDefine("SerializationError", kind.Validation)
)

// Types returns the standard error types in declaration order.
func Types() []*Type {
	return []*Type{
		Unexpected,
		FileRead,
		FileNotExists,
		DeserializationError,
		SerializationError,
	}
}
