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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errstd/kind"
	"dirpx.dev/errstd/label"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Same(t, c, Default())
	assert.Equal(t, kind.Default().Kinds(), c.Kinds().Kinds())
	assert.Equal(t, Types(), c.Types())

	typ, ok := c.Type("FileNotExists")
	require.True(t, ok)
	assert.Same(t, FileNotExists, typ)

	_, ok = c.Type("NoSuchType")
	assert.False(t, ok)
}

func TestLabeledCatalog_FileNotExistsScenario(t *testing.T) {
	c, err := NewCatalog(WithScheme(kind.SchemeLabeled))
	require.NoError(t, err)

	e := c.New(FileNotExists).WithMessage("File /tmp/x does not exist").Err()
	assert.Equal(t, 400, e.Code())
	assert.Equal(t, label.Label("Err-00002"), e.Label())
	assert.Equal(t, "File /tmp/x does not exist", e.Message())

	// the default catalog is unaffected
	assert.Equal(t, 500, FileNotExists.New().Code())
}

func TestNewCatalog_CustomTypes(t *testing.T) {
	configMissing := MustDefine("ConfigMissing", kind.IO)
	c, err := NewCatalog(WithTypes(configMissing))
	require.NoError(t, err)

	assert.Len(t, c.Types(), len(Types())+1)
	i := c.New(configMissing)
	assert.Equal(t, kind.IOMessage, i.Message())
	assert.Equal(t, 500, i.Code())
}

func TestNewCatalog_RejectsUnboundKind(t *testing.T) {
	netDown := MustDefine("NetworkDown", "NetworkError")
	_, err := NewCatalog(WithTypes(netDown))
	assert.ErrorIs(t, err, ErrUnboundKind)

	assert.PanicsWithError(t, "errstd: type bound to unregistered kind: NetworkDown->NetworkError", func() {
		Default().New(netDown)
	})
}

func TestNewCatalog_RejectsDuplicateType(t *testing.T) {
	_, err := NewCatalog(WithTypes(MustDefine("FileRead", kind.IO)))
	assert.ErrorIs(t, err, ErrDuplicateType)
}

func TestNewCatalog_RejectsNilType(t *testing.T) {
	_, err := NewCatalog(WithTypes(nil))
	assert.ErrorIs(t, err, ErrTypeInvalid)
}

func TestNewCatalog_CustomRegistry(t *testing.T) {
	reg := kind.MustNewRegistry(
		kind.Define(kind.Unknown, 500, "Something broke"),
		kind.Define(kind.IO, 503, "Storage unavailable"),
		kind.Define(kind.Validation, 422, "Unprocessable input"),
	)
	c, err := NewCatalog(WithRegistry(reg), WithScheme(kind.SchemeLabeled))
	require.NoError(t, err)

	e := c.New(DeserializationError).Err()
	assert.Equal(t, 422, e.Code())
	assert.Equal(t, "Unprocessable input", e.Message())
	assert.Equal(t, label.Empty, e.Label())

	partial := kind.MustNewRegistry(kind.Define(kind.Unknown, 500, "Unexpected error"))
	_, err = NewCatalog(WithRegistry(partial))
	assert.ErrorIs(t, err, ErrUnboundKind)
}

func TestNewCatalog_UnknownScheme(t *testing.T) {
	_, err := NewCatalog(WithScheme("legacy"))
	assert.ErrorIs(t, err, kind.ErrSchemeUnknown)
	assert.Panics(t, func() { MustNewCatalog(WithScheme("legacy")) })
}

func TestCatalog_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				e := FileRead.New().WithContextValue("n", n).Err()
				if e.Context()["n"] != n || e.Code() != 500 {
					t.Errorf("unexpected error value %v", e)
					return
				}
			}
		}(n)
	}
	wg.Wait()
}

func conflictCatalog(t *testing.T) (*Catalog, *Type) {
	t.Helper()
	reg := kind.MustNewRegistry(append(kind.Default().Kinds(),
		kind.Define("ConflictError", 409, "Conflict"),
	)...)
	conflict := MustDefine("VersionConflict", "ConflictError")
	c, err := NewCatalog(WithRegistry(reg), WithTypes(conflict))
	require.NoError(t, err)
	return c, conflict
}

func TestCatalog_Bound(t *testing.T) {
	c, conflict := conflictCatalog(t)

	assert.True(t, c.Bound(conflict))
	assert.True(t, c.Bound(FileRead))
	assert.False(t, Default().Bound(conflict))
	assert.False(t, c.Bound(nil))
}

func TestFrom_CustomType(t *testing.T) {
	c, conflict := conflictCatalog(t)
	wrapped := fmt.Errorf("save profile: %w", conflict)

	var got *Error
	require.NotPanics(t, func() { got = From(wrapped) })
	assert.Equal(t, "Unexpected", got.Type())
	assert.Equal(t, "save profile: VersionConflict", got.Message())
	assert.ErrorIs(t, got, conflict)

	got = c.From(wrapped)
	assert.Equal(t, "VersionConflict", got.Type())
	assert.Equal(t, 409, got.Code())
	assert.Equal(t, "Conflict", got.Message())

	assert.Nil(t, c.From(nil))
}

func TestCatalog_E(t *testing.T) {
	c, conflict := conflictCatalog(t)

	e := c.E(conflict, "version 3 is stale", WithContextValueOption("version", 3))
	assert.Equal(t, 409, e.Code())
	assert.Equal(t, "version 3 is stale", e.Message())
	assert.Equal(t, map[string]any{"version": 3}, e.Context())

	assert.Equal(t, "Conflict", c.E(conflict, "").Message())

	assert.PanicsWithError(t, "errstd: type bound to unregistered kind: VersionConflict->ConflictError", func() {
		E(conflict, "boom")
	})
}
