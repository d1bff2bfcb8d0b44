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

package label

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Label is the canonical, validated representation of a kind label.
//
// The canonical form is the fixed prefix "Err-" followed by exactly five
// decimal digits:
//
//   - "Err-00001"
//   - "Err-00002"
//   - "Err-10404"
type Label string

// Prefix is the fixed leading part of every canonical label.
const Prefix = "Err-"

// Digits is the number of decimal digits that follow Prefix.
const Digits = 5

// labelFmt is the canonical regular expression used to validate labels.
//
// IMPORTANT: the quantifier {5} is tied to Digits above.
const labelFmt = `^Err-[0-9]{5}$`

var labelRe = regexp.MustCompile(labelFmt)

var (
	// ErrLabelInvalidFormat is returned when a label does not conform to
	// the expected format.
	ErrLabelInvalidFormat = errors.New("label: invalid format")
)

var (
	_ encoding.TextMarshaler   = (*Label)(nil)
	_ encoding.TextUnmarshaler = (*Label)(nil)
)

// Empty is the zero-value label. It means "no label" and is always valid.
var Empty Label = ""

// Normalize brings an arbitrary string closer to the canonical label form.
//
// Transformations:
//
//   - trim spaces;
//   - replace "_" with "-";
//   - rewrite any casing of the "err-" prefix to "Err-".
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	if len(s) >= len(Prefix) && strings.EqualFold(s[:len(Prefix)], Prefix) {
		s = Prefix + s[len(Prefix):]
	}
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Label, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Label(s), nil
}

// MustParse is the panic-on-error variant of Parse, intended for
// package-level declarations. Unlike Parse it rejects the empty string.
func MustParse(s string) Label {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if l == Empty {
		panic("label: empty label in MustParse")
	}
	return l
}

// Validate checks whether l is in canonical form. Empty is valid.
func Validate(l Label) error {
	if l == Empty {
		return nil
	}
	return validate(string(l))
}

// String returns the label as a plain string.
func (l Label) String() string {
	return string(l)
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Whitespace-only input produces Empty.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func validate(s string) error {
	if !labelRe.MatchString(s) {
		return ErrLabelInvalidFormat
	}
	return nil
}
