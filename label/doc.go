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

// Package label defines the optional string label that a kind may carry next
// to its numeric status code, e.g. "Err-00002".
//
// Labels are a second, status-independent identifier for a kind. They are
// useful when several kinds share the same status code and a client still
// needs to tell them apart, or when support tooling indexes errors by a
// fixed catalog number.
//
// The zero value ("") is allowed and means "no label". Registries built with
// the status-only scheme carry no labels at all.
package label
