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

package adapter

import (
	"dirpx.dev/errstd"
	"dirpx.dev/errstd/apis"
)

// ToDescriptor converts an error together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical identity (type, kind, code, label)
// and the concrete transport statuses.
func ToDescriptor(e *errstd.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Type:       e.Type(),
		Kind:       string(e.Kind()),
		Code:       e.Code(),
		Label:      string(e.Label()),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
}

// ToView converts a ViewProvider into a public ErrorView. No redaction is
// performed: the context is exposed as the error carries it. It is up to the
// caller to decide whether to filter sensitive keys first.
func ToView(v apis.ViewProvider) apis.ErrorView {
	if v == nil {
		return apis.ErrorView{}
	}
	return v.ErrorView()
}

// Redact returns a copy of v without the listed context keys.
func Redact(v apis.ErrorView, keys ...string) apis.ErrorView {
	if len(v.Context) == 0 || len(keys) == 0 {
		return v
	}
	ctx := make(map[string]any, len(v.Context))
	for k, val := range v.Context {
		ctx[k] = val
	}
	for _, k := range keys {
		delete(ctx, k)
	}
	if len(ctx) == 0 {
		ctx = nil
	}
	v.Context = ctx
	return v
}
