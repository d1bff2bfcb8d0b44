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

	"dirpx.dev/errstd/kind"
)

// From converts err through the default catalog. See Catalog.From.
func From(err error) *Error {
	return Default().From(err)
}

// From returns err as an *Error.
//
//   - nil stays nil;
//   - an *Error anywhere in the chain is returned as is;
//   - a bare *Type bound in c becomes a fresh instance of that type;
//   - anything else, including a *Type whose kind c does not know, becomes
//     Unexpected, with err's text as the message and err as the cause.
func (c *Catalog) From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	var t *Type
	if errors.As(err, &t) && c.Bound(t) {
		return c.New(t).Err()
	}
	return c.New(Unexpected).WithMessage(err.Error()).WithCause(err).Err()
}

// Restore rebuilds an *Error from its parts, typically after it crossed a
// process boundary. The message is taken as is, even when empty. ctx is
// copied.
func Restore(typeName string, k kind.Kind, message string, ctx map[string]any) *Error {
	return &Error{
		typ:     typeName,
		kind:    k,
		message: message,
		context: cloneContext(ctx),
	}
}
