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
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is the canonical, validated identifier of a kind.
//
// Names are CamelCase ASCII identifiers starting with an upper-case letter,
// e.g. "UnknownError", "IoError", "ValidationError". The same rules apply to
// error type names in the root package.
type Name string

// MinLength and MaxLength define the allowed length range for a Name.
const (
	MinLength = 3
	MaxLength = 64
)

// nameFmt is the canonical regular expression used to validate names.
//
// IMPORTANT: the quantifier {2,63} is tied to MinLength / MaxLength above.
const nameFmt = `^[A-Z][A-Za-z0-9]{2,63}$`

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrNameInvalid is returned when a value cannot be parsed or validated
	// as a kind or type name.
	ErrNameInvalid = errors.New("kind: invalid name")
)

var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// NormalizeName trims surrounding spaces. Casing is significant in names and
// is left untouched.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}

// ParseName normalizes and validates s.
func ParseName(s string) (Name, error) {
	s = NormalizeName(s)
	if err := validateName(s); err != nil {
		return "", err
	}
	return Name(s), nil
}

// MustParseName is the panic-on-error variant of ParseName.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ValidateName checks whether n is a canonical name. The empty name is
// invalid.
func ValidateName(n Name) error {
	return validateName(string(n))
}

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if err := ValidateName(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func validateName(s string) error {
	if !nameRe.MatchString(s) {
		return ErrNameInvalid
	}
	return nil
}
