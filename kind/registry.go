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

var (
	// ErrDuplicate is returned when a table declares the same name, or the
	// same non-empty label, twice.
	ErrDuplicate = errors.New("kind: duplicate entry")

	// ErrUnknown is used by MustLookup when a name is not registered.
	ErrUnknown = errors.New("kind: unknown kind")
)

// Registry is an immutable set of kinds, keyed by name.
//
// A Registry is safe for concurrent use: nothing mutates it after
// NewRegistry returns.
type Registry struct {
	byName  map[Name]Kind
	byLabel map[label.Label]Name
	order   []Name
}

// NewRegistry validates kinds and freezes them into a Registry.
//
// Every entry must pass Kind.Validate; names and non-empty labels must be
// unique across the table. Registration order is preserved by Kinds.
func NewRegistry(kinds ...Kind) (*Registry, error) {
	r := &Registry{
		byName:  make(map[Name]Kind, len(kinds)),
		byLabel: make(map[label.Label]Name),
		order:   make([]Name, 0, len(kinds)),
	}
	for _, k := range kinds {
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("kind: invalid entry %q: %w", k.Name, err)
		}
		if _, dup := r.byName[k.Name]; dup {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicate, k.Name)
		}
		if k.Label != label.Empty {
			if prev, dup := r.byLabel[k.Label]; dup {
				return nil, fmt.Errorf("%w: label %q used by %q and %q", ErrDuplicate, k.Label, prev, k.Name)
			}
			r.byLabel[k.Label] = k.Name
		}
		r.byName[k.Name] = k
		r.order = append(r.order, k.Name)
	}
	return r, nil
}

// MustNewRegistry is the panic-on-error variant of NewRegistry. Use it for
// package-level tables so a broken table stops the process at start-up.
func MustNewRegistry(kinds ...Kind) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name Name) (Kind, bool) {
	if r == nil {
		return Kind{}, false
	}
	k, ok := r.byName[name]
	return k, ok
}

// MustLookup is like Lookup but panics for unregistered names.
func (r *Registry) MustLookup(name Name) Kind {
	k, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknown, name))
	}
	return k
}

// ByLabel returns the kind that carries label l.
func (r *Registry) ByLabel(l label.Label) (Kind, bool) {
	if r == nil || l == label.Empty {
		return Kind{}, false
	}
	name, ok := r.byLabel[l]
	if !ok {
		return Kind{}, false
	}
	return r.byName[name], true
}

// Has reports whether name is registered.
func (r *Registry) Has(name Name) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Kinds returns a copy of all entries in registration order.
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}
	out := make([]Kind, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}
