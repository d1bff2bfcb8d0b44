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
	"strings"
	"sync"

	"dirpx.dev/errstd/label"
)

// Scheme selects one of the built-in kind tables.
//
// The published tables disagree on the status code of IoError and on whether
// kinds carry a string label. Neither is treated as authoritative; callers
// pick one explicitly, and SchemeStatus is used when they do not.
type Scheme string

const (
	// SchemeStatus identifies kinds by status code only:
	//
	//	UnknownError     500  "Unexpected error"
	//	IoError          500  "IO error"
	//	ValidationError  400  "Validation error"
	SchemeStatus Scheme = "status"

	// SchemeLabeled adds a label to every kind and reports IO failures as
	// client errors:
	//
	//	UnknownError     500  Err-00001  "Unexpected error"
	//	IoError          400  Err-00002  "IO error"
	//	ValidationError  400  Err-00003  "Validation error"
	SchemeLabeled Scheme = "labeled"
)

// ErrSchemeUnknown is returned for scheme names other than the built-in ones.
var ErrSchemeUnknown = errors.New("kind: unknown scheme")

// ParseScheme accepts "status" or "labeled" in any casing.
func ParseScheme(s string) (Scheme, error) {
	switch sc := Scheme(strings.ToLower(strings.TrimSpace(s))); sc {
	case SchemeStatus, SchemeLabeled:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrSchemeUnknown, s)
	}
}

// String returns the scheme name.
func (s Scheme) String() string {
	return string(s)
}

// Kinds returns the declarative table for s.
func (s Scheme) Kinds() ([]Kind, error) {
	switch s {
	case SchemeStatus:
		return []Kind{
			Define(Unknown, 500, UnknownMessage),
			Define(IO, 500, IOMessage),
			Define(Validation, 400, ValidationMessage),
		}, nil
	case SchemeLabeled:
		return []Kind{
			Define(Unknown, 500, UnknownMessage, WithLabel(label.MustParse("Err-00001"))),
			Define(IO, 400, IOMessage, WithLabel(label.MustParse("Err-00002"))),
			Define(Validation, 400, ValidationMessage, WithLabel(label.MustParse("Err-00003"))),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrSchemeUnknown, string(s))
	}
}

// Standard builds the registry for scheme s.
func Standard(s Scheme) (*Registry, error) {
	kinds, err := s.Kinds()
	if err != nil {
		return nil, err
	}
	return NewRegistry(kinds...)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := Standard(SchemeStatus)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the process-wide SchemeStatus registry. It is built on
// first use and shared afterwards.
func Default() *Registry {
	return defaultRegistry()
}
