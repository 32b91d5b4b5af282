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

// Package senderr turns arbitrary error values into a single, uniform call on
// a responder.
//
// A handler that fails may hold a Go error, a JSend-style status-tagged value
// (a senderr.Error, any apis.StatusTagged, or a decoded JSON object with a
// "status" field), or just a string. Send classifies the value and invokes
// exactly one of apis.Responder's methods:
//
//	senderr.Send(r, senderr.Fail(map[string]any{"email": "required"}))
//	// r.Fail(map[string]any{"email": "required"})
//
//	senderr.Send(r, senderr.E("db is down", senderr.WithCodeOption("unavailable")), "orders")
//	// r.Error("db is down", <the *Error>, "unavailable,orders")
//
//	senderr.Send(r, errors.New("boom"))
//	// r.Error("boom", <the error>, "")
//
// Responders for net/http, gin and gRPC live in the httpx, ginx and grpcx
// packages; senderrtest provides a recording responder for tests.
//
// Send is pure: it keeps no state, does no I/O and is safe for concurrent use.
package senderr
