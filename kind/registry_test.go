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
	"sync"
	"testing"

	"dirpx.dev/errstd/label"
)

func TestNewRegistry_LookupReturnsDeclaredEntries(t *testing.T) {
	decl := []Kind{
		Define(Unknown, 500, "Unexpected error"),
		Define(IO, 500, "IO error"),
		Define(Validation, 400, "Validation error"),
	}
	r, err := NewRegistry(decl...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != len(decl) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(decl))
	}
	for _, want := range decl {
		got, ok := r.Lookup(want.Name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", want.Name)
		}
		if got != want {
			t.Fatalf("Lookup(%q) = %+v, want %+v", want.Name, got, want)
		}
	}
	if _, ok := r.Lookup("NetworkError"); ok {
		t.Fatalf("Lookup of unregistered name must fail")
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		Define(IO, 500, "IO error"),
		Define(IO, 400, "IO error again"),
	)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate name: err = %v, want ErrDuplicate", err)
	}

	_, err = NewRegistry(
		Define(IO, 400, "IO error", WithLabel("Err-00002")),
		Define(Validation, 400, "Validation error", WithLabel("Err-00002")),
	)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate label: err = %v, want ErrDuplicate", err)
	}
}

func TestNewRegistry_RejectsInvalidEntries(t *testing.T) {
	_, err := NewRegistry(Define(IO, 1000, "IO error"))
	if !errors.Is(err, ErrCodeOutOfRange) {
		t.Fatalf("err = %v, want ErrCodeOutOfRange", err)
	}
}

func TestMustNewRegistry_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNewRegistry should panic on duplicate names")
		}
	}()
	_ = MustNewRegistry(Define(IO, 500, "a"), Define(IO, 500, "b"))
}

func TestRegistry_KindsOrderAndCopy(t *testing.T) {
	r := MustNewRegistry(
		Define(Validation, 400, "Validation error"),
		Define(Unknown, 500, "Unexpected error"),
	)
	ks := r.Kinds()
	if len(ks) != 2 || ks[0].Name != Validation || ks[1].Name != Unknown {
		t.Fatalf("Kinds() = %+v, want registration order", ks)
	}
	ks[0].Code = 418
	if got := r.MustLookup(Validation).Code; got != 400 {
		t.Fatalf("registry mutated through Kinds(): code = %d", got)
	}
}

func TestRegistry_MustLookupPanicsOnUnknown(t *testing.T) {
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrUnknown) {
			t.Fatalf("recover() = %v, want ErrUnknown", rec)
		}
	}()
	_ = Default().MustLookup("NetworkError")
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var r *Registry
	if r.Len() != 0 || r.Has(IO) || r.Kinds() != nil {
		t.Fatalf("nil registry must behave as empty")
	}
}

func TestStandardSchemes(t *testing.T) {
	tests := []struct {
		scheme Scheme
		name   Name
		code   int
		label  label.Label
		msg    string
	}{
		{SchemeStatus, Unknown, 500, label.Empty, "Unexpected error"},
		{SchemeStatus, IO, 500, label.Empty, "IO error"},
		{SchemeStatus, Validation, 400, label.Empty, "Validation error"},
		{SchemeLabeled, Unknown, 500, "Err-00001", "Unexpected error"},
		{SchemeLabeled, IO, 400, "Err-00002", "IO error"},
		{SchemeLabeled, Validation, 400, "Err-00003", "Validation error"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.String()+"/"+tt.name.String(), func(t *testing.T) {
			r, err := Standard(tt.scheme)
			if err != nil {
				t.Fatalf("Standard(%q): %v", tt.scheme, err)
			}
			k, ok := r.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) missing", tt.name)
			}
			if k.Code != tt.code || k.Label != tt.label || k.Message != tt.msg {
				t.Fatalf("Lookup(%q) = %+v", tt.name, k)
			}
		})
	}
}

func TestRegistry_ByLabel(t *testing.T) {
	r, err := Standard(SchemeLabeled)
	if err != nil {
		t.Fatalf("Standard: %v", err)
	}
	k, ok := r.ByLabel("Err-00002")
	if !ok || k.Name != IO {
		t.Fatalf("ByLabel(Err-00002) = %+v, %v", k, ok)
	}
	if _, ok := Default().ByLabel("Err-00002"); ok {
		t.Fatalf("status scheme carries no labels")
	}
}

func TestParseScheme(t *testing.T) {
	for in, want := range map[string]Scheme{
		"status":    SchemeStatus,
		" Labeled ": SchemeLabeled,
		"LABELED":   SchemeLabeled,
	} {
		got, err := ParseScheme(in)
		if err != nil || got != want {
			t.Fatalf("ParseScheme(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseScheme("legacy"); !errors.Is(err, ErrSchemeUnknown) {
		t.Fatalf("ParseScheme(legacy) err = %v, want ErrSchemeUnknown", err)
	}
	if _, err := Standard("legacy"); !errors.Is(err, ErrSchemeUnknown) {
		t.Fatalf("Standard(legacy) err = %v, want ErrSchemeUnknown", err)
	}
}

func TestDefault_IsSharedAndConcurrentSafe(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if _, ok := Default().Lookup(IO); !ok {
					t.Error("IoError missing from default registry")
					return
				}
			}
		}()
	}
	wg.Wait()
	if Default() != Default() {
		t.Fatalf("Default() must return the same registry")
	}
}
