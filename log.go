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
	"log/slog"
	"maps"
	"slices"
)

var _ slog.LogValuer = (*Error)(nil)

// LogValue implements slog.LogValuer so that
//
//	logger.Error("request failed", "err", err)
//
// renders the error as a group with type, kind, code, label, message,
// context and cause. Context keys are sorted for stable output.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs,
		slog.String("type", e.typ),
		slog.String("kind", string(e.kind.Name)),
		slog.Int("code", e.kind.Code),
	)
	if e.kind.Label != "" {
		attrs = append(attrs, slog.String("label", string(e.kind.Label)))
	}
	attrs = append(attrs, slog.String("message", e.message))
	if len(e.context) > 0 {
		ctx := make([]slog.Attr, 0, len(e.context))
		for _, k := range slices.Sorted(maps.Keys(e.context)) {
			ctx = append(ctx, slog.Any(k, e.context[k]))
		}
		attrs = append(attrs, slog.Attr{Key: "context", Value: slog.GroupValue(ctx...)})
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
