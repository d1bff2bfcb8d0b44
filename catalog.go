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
	"sync"

	"dirpx.dev/errstd/kind"
)

var (
	// ErrUnboundKind is returned when a type references a kind that is not
	// in the catalog's registry.
	ErrUnboundKind = errors.New("errstd: type bound to unregistered kind")

	// ErrDuplicateType is returned when two types share a name.
	ErrDuplicateType = errors.New("errstd: duplicate type")
)

// Catalog binds a set of error types to a kind registry.
//
// A Catalog is immutable and safe for concurrent use.
type Catalog struct {
	kinds *kind.Registry
	types map[string]*Type
	order []*Type
}

// CatalogOption configures NewCatalog.
type CatalogOption func(*catalogBuilder)

type catalogBuilder struct {
	scheme   kind.Scheme
	registry *kind.Registry
	types    []*Type
}

// WithScheme selects one of the built-in kind tables. Ignored when
// WithRegistry is also given.
func WithScheme(s kind.Scheme) CatalogOption {
	return func(b *catalogBuilder) { b.scheme = s }
}

// WithRegistry uses r instead of a built-in table. r must contain every
// kind referenced by the catalog's types, the standard ones included.
func WithRegistry(r *kind.Registry) CatalogOption {
	return func(b *catalogBuilder) { b.registry = r }
}

// WithTypes adds types on top of the standard ones.
func WithTypes(types ...*Type) CatalogOption {
	return func(b *catalogBuilder) { b.types = append(b.types, types...) }
}

// NewCatalog builds a catalog. Without options it holds the standard types
// over the kind.SchemeStatus registry.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	b := &catalogBuilder{
		scheme: kind.SchemeStatus,
		types:  Types(),
	}
	for _, opt := range opts {
		opt(b)
	}

	reg := b.registry
	if reg == nil {
		var err error
		if reg, err = kind.Standard(b.scheme); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		kinds: reg,
		types: make(map[string]*Type, len(b.types)),
		order: make([]*Type, 0, len(b.types)),
	}
	for _, t := range b.types {
		if t == nil {
			return nil, fmt.Errorf("%w: nil type", ErrTypeInvalid)
		}
		if !reg.Has(t.kind) {
			return nil, fmt.Errorf("%w: %s", ErrUnboundKind, t.String())
		}
		if _, dup := c.types[t.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, t.name)
		}
		c.types[t.name] = t
		c.order = append(c.order, t)
	}
	return c, nil
}

// MustNewCatalog is the panic-on-error variant of NewCatalog.
func MustNewCatalog(opts ...CatalogOption) *Catalog {
	c, err := NewCatalog(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustNewCatalog()
})

// Default returns the process-wide catalog: standard types over
// kind.SchemeStatus. It is built on first use.
func Default() *Catalog {
	return defaultCatalog()
}

// Kinds returns the catalog's kind registry.
func (c *Catalog) Kinds() *kind.Registry { return c.kinds }

// Type returns the type registered under name.
func (c *Catalog) Type(name string) (*Type, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Types returns the catalog's types in registration order.
func (c *Catalog) Types() []*Type {
	out := make([]*Type, len(c.order))
	copy(out, c.order)
	return out
}

// Bound reports whether c can instantiate t, i.e. whether t's kind is in the
// catalog's registry.
func (c *Catalog) Bound(t *Type) bool {
	return t != nil && c.kinds.Has(t.kind)
}

// New starts an instance of t with code and message taken from t's kind.
//
// t's kind must be registered in the catalog. Types added through
// WithTypes are checked by NewCatalog; passing any other type whose kind is
// missing is a programming error and panics with ErrUnboundKind.
func (c *Catalog) New(t *Type) Instance {
	if t == nil {
		panic(fmt.Errorf("%w: nil type", ErrTypeInvalid))
	}
	k, ok := c.kinds.Lookup(t.kind)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnboundKind, t.String()))
	}
	return Instance{typ: t, kind: k, message: k.Message}
}
