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

package apis

// ErrorDescriptor is a flat, transport-friendly description of an emitted
// error, intended for structured logging, tracing or message bus
// propagation.
//
// This type uses plain strings (not kind.Name / label.Label) so that it can be
// produced and consumed without importing the rest of errstd.
type ErrorDescriptor struct {
	// Type is the error type name, e.g. "FileNotExists".
	Type string `json:"type"`

	// Kind is the kind name, e.g. "IoError".
	Kind string `json:"kind"`

	// Code is the kind's status code.
	Code int `json:"code"`

	// Label is the kind's label, if the active scheme has one.
	Label string `json:"label,omitempty"`

	// HTTPStatus is the resolved HTTP status. It usually equals Code but
	// mapper overrides may change it.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the error's message.
	Message string `json:"message,omitempty"`
}
