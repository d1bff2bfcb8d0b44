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

// Package httpx writes errstd errors as JSON HTTP responses and reads them
// back on the client side.
//
// The body is a flat JSON object produced with protojson over a
// structpb.Struct:
//
//	{
//	  "type": "FileNotExists",
//	  "kind": "IoError",
//	  "code": 500,
//	  "message": "File /tmp/x does not exist",
//	  "context": {"path": "/tmp/x"}
//	}
//
// "label", "context" and "request_id" are omitted when empty. The response
// status comes from an apis.Mapper, not from the body's code.
package httpx
