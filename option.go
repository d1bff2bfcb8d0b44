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

// Option is a functional option applied to an Instance by E.
type Option func(Instance) Instance

// WithContextOption merges kv into the context.
func WithContextOption(kv map[string]any) Option {
	return func(i Instance) Instance { return i.WithContext(kv) }
}

// WithContextValueOption sets one context key.
func WithContextValueOption(k string, v any) Option {
	return func(i Instance) Instance { return i.WithContextValue(k, v) }
}

// WithCauseOption attaches a cause.
func WithCauseOption(err error) Option {
	return func(i Instance) Instance { return i.WithCause(err) }
}

// E is a convenience constructor for *Error.
//
//	return errstd.E(errstd.FileRead, "cannot read config",
//	    errstd.WithContextValueOption("path", path),
//	    errstd.WithCauseOption(err),
//	)
//
// An empty msg keeps the kind's default message. Options are applied in order.
// E uses the default catalog; see Catalog.E for types bound to custom kinds.
func E(t *Type, msg string, opts ...Option) *Error {
	return Default().E(t, msg, opts...)
}

// E is the catalog-aware form of the package-level E.
func (c *Catalog) E(t *Type, msg string, opts ...Option) *Error {
	i := c.New(t)
	if msg != "" {
		i = i.WithMessage(msg)
	}
	for _, opt := range opts {
		i = opt(i)
	}
	return i.Err()
}
