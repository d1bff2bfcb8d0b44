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

import (
	"errors"
	"fmt"

	"dirpx.dev/errstd/label"
)

// Status code bounds accepted for a kind.
const (
	MinCode = 100
	MaxCode = 599
)

var (
	// ErrCodeOutOfRange is returned for kinds whose code is outside
	// MinCode..MaxCode.
	ErrCodeOutOfRange = errors.New("kind: code out of range")

	// ErrMessageEmpty is returned for kinds without a default description.
	ErrMessageEmpty = errors.New("kind: empty message")
)

// Kind is one entry of a registry.
//
// Kind is a small value type; registries hand out copies, so a caller can
// never change a registered entry.
type Kind struct {
	// Name is the stable identifier, e.g. "IoError".
	Name Name

	// Code is the status code, e.g. 500. Error values derive their code from
	// here and never change it.
	Code int

	// Label is the optional secondary identifier, e.g. "Err-00002".
	Label label.Label

	// Message is the default description used when an error instance does not
	// override it.
	Message string
}

// Option adjusts a Kind declared with Define.
type Option func(*Kind)

// WithLabel attaches a label to the kind being declared.
func WithLabel(l label.Label) Option {
	return func(k *Kind) { k.Label = l }
}

// Define declares a kind entry for use in NewRegistry.
//
//	kind.Define(kind.IO, 500, "IO error")
//	kind.Define(kind.IO, 400, "IO error", kind.WithLabel("Err-00002"))
func Define(name Name, code int, message string, opts ...Option) Kind {
	k := Kind{Name: name, Code: code, Message: message}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// Validate reports whether k is a well-formed registry entry.
func (k Kind) Validate() error {
	if err := ValidateName(k.Name); err != nil {
		return err
	}
	if k.Code < MinCode || k.Code > MaxCode {
		return fmt.Errorf("%w: %d", ErrCodeOutOfRange, k.Code)
	}
	if err := label.Validate(k.Label); err != nil {
		return err
	}
	if k.Message == "" {
		return ErrMessageEmpty
	}
	return nil
}

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool {
	return k == Kind{}
}

// String renders the kind as "Name(code)" or "Name(code, label)".
func (k Kind) String() string {
	if k.Label != label.Empty {
		return fmt.Sprintf("%s(%d, %s)", k.Name, k.Code, k.Label)
	}
	return fmt.Sprintf("%s(%d)", k.Name, k.Code)
}
