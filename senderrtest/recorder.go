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

// Package senderrtest provides a recording apis.Responder for tests.
package senderrtest

import (
	"sync"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
)

// Method names recorded in Call.Method.
const (
	MethodFail  = "fail"
	MethodError = "error"
)

// Call is one recorded responder invocation. For MethodFail only Data is set.
type Call struct {
	Method  string
	Message string
	Data    any
	Code    code.Code
}

// Recorder records every call it receives. The zero value is ready to use
// and safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ apis.Responder = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Fail implements apis.Responder.
func (r *Recorder) Fail(data any) {
	r.record(Call{Method: MethodFail, Data: data})
}

// Error implements apis.Responder.
func (r *Recorder) Error(message string, data any, c code.Code) {
	r.record(Call{Method: MethodError, Message: message, Data: data, Code: c})
}

// Calls returns a copy of all recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent call and whether there was one.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}
