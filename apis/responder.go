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

import "dirpx.dev/senderr/code"

// Responder receives the outcome of normalizing one error value.
//
// Exactly one of the two methods is invoked per senderr.Send call.
type Responder interface {
	// Fail reports a client-fault condition (JSend "fail") with its payload.
	Fail(data any)

	// Error reports a general error. An empty message or an empty code means
	// the value did not provide one. c may be a combined code such as
	// "existing,new".
	Error(message string, data any, c code.Code)
}

// ResponderFunc adapts a pair of functions to Responder. A nil field turns
// the corresponding call into a no-op.
type ResponderFunc struct {
	OnFail  func(data any)
	OnError func(message string, data any, c code.Code)
}

// Fail implements Responder.
func (f ResponderFunc) Fail(data any) {
	if f.OnFail != nil {
		f.OnFail(data)
	}
}

// Error implements Responder.
func (f ResponderFunc) Error(message string, data any, c code.Code) {
	if f.OnError != nil {
		f.OnError(message, data, c)
	}
}
