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

package mapper

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/errstd/apis"
	"dirpx.dev/errstd/kind"
	"google.golang.org/grpc/codes"
)

var (
	ioKind         = kind.Define(kind.IO, 500, kind.IOMessage)
	ioKindLabeled  = kind.Define(kind.IO, 400, kind.IOMessage, kind.WithLabel("Err-00002"))
	validationKind = kind.Define(kind.Validation, 400, kind.ValidationMessage)
	unknownKind    = kind.Define(kind.Unknown, 500, kind.UnknownMessage)
)

func TestDefaults_FollowKindCode(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(k kind.Kind, typ string, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k, typ)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%s, %q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, typ, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(unknownKind, "Unexpected", 500, codes.Internal)
	check(ioKind, "FileRead", 500, codes.Internal)
	check(ioKindLabeled, "FileRead", 400, codes.InvalidArgument)
	check(validationKind, "SerializationError", 400, codes.InvalidArgument)
}

func TestPriority_TypeOverKindOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPOverride(kind.IO, 503),
		WithTypeHTTP("FileNotExists", http.StatusNotFound),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(ioKind, "FileNotExists"); got != 404 {
		t.Fatalf("type rule must win; got %d, want 404", got)
	}
	if got := m.HTTPStatus(ioKind, "FileRead"); got != 503 {
		t.Fatalf("kind override must apply; got %d, want 503", got)
	}
	if got := m.HTTPStatus(validationKind, "FileRead"); got != 400 {
		t.Fatalf("other kinds keep their code; got %d, want 400", got)
	}
}

func TestPriority_TypeOverKindOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCOverride(kind.IO, int(codes.Unavailable)),
		WithTypeGRPC("FileNotExists", int(codes.NotFound)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(ioKind, "FileNotExists"); got != codes.NotFound {
		t.Fatalf("type rule must win; got %v", got)
	}
	if got := m.GRPCStatus(ioKind, "FileRead"); got != codes.Unavailable {
		t.Fatalf("kind override must apply; got %v", got)
	}
}

func TestGRPC_FollowsResolvedHTTP(t *testing.T) {
	m, err := New(WithTypeHTTP("FileNotExists", http.StatusNotFound))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(ioKind, "FileNotExists"); got != codes.NotFound {
		t.Fatalf("gRPC must follow the HTTP type rule; got %v", got)
	}
}

func TestGRPCForHTTP_AndFallback(t *testing.T) {
	m, err := New(
		WithGRPCForHTTP(500, int(codes.Unknown)),
		WithFallback(502, int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(ioKind, "FileRead"); got != codes.Unknown {
		t.Fatalf("custom translation ignored; got %v", got)
	}

	teapot := kind.Define("TeapotError", 418, "I'm a teapot")
	if got := m.GRPCStatus(teapot, ""); got != codes.Unavailable {
		t.Fatalf("untranslated status must use fallback; got %v", got)
	}

	// A zero kind has no usable code.
	if got := m.HTTPStatus(kind.Kind{}, ""); got != 502 {
		t.Fatalf("zero kind must use HTTP fallback; got %d", got)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"http override out of range", WithHTTPOverride(kind.IO, 99)},
		{"grpc override out of range", WithGRPCOverride(kind.IO, 17)},
		{"type name", WithTypeHTTP("file_read", 404)},
		{"type http", WithTypeHTTP("FileRead", 600)},
		{"type grpc", WithTypeGRPC("FileRead", -1)},
		{"translation", WithGRPCForHTTP(700, int(codes.Internal))},
		{"fallback", WithFallback(0, int(codes.Internal))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New must fail")
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew should panic on invalid config")
		}
	}()
	_ = MustNew(WithHTTPOverride(kind.IO, 1))
}

func TestTypeRules_AreNormalized(t *testing.T) {
	m, err := New(WithTypeHTTP("  FileNotExists ", 404))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(ioKind, "FileNotExists"); got != 404 {
		t.Fatalf("normalized type rule should match; got %d", got)
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithTypeHTTP("FileNotExists", 404),
		WithGRPCOverride(kind.Validation, int(codes.FailedPrecondition)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(ioKind, "FileNotExists")
	for _, want := range []string{`type="FileNotExists"`, "http: source=type -> 404", "grpc: source=default http=404"} {
		if !strings.Contains(exp, want) {
			t.Fatalf("Explain must include %q:\n%s", want, exp)
		}
	}
	exp = m.Explain(validationKind, "DeserializationError")
	if !strings.Contains(exp, "grpc: source=kind -> FAILEDPRECONDITION(9)") {
		t.Fatalf("Explain must report the kind override:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithTypeHTTP("FileNotExists", 404),
		WithHTTPOverride(kind.Validation, 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(ioKind, "FileNotExists")
				_ = m.Status(validationKind, "SerializationError")
				_ = m.Status(unknownKind, "Unexpected")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(ioKind, "FileRead")
	}
}

func BenchmarkMapperStatus_TypeRule(b *testing.B) {
	m, _ := New(
		WithTypeHTTP("FileNotExists", 404),
		WithTypeGRPC("FileNotExists", int(codes.NotFound)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(ioKind, "FileNotExists")
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
