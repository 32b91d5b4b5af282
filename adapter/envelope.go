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

// Package adapter renders responder calls as JSend envelopes.
//
// Transport responders (httpx, ginx, grpcx) share it so that the same call
// produces the same body no matter how it is delivered.
package adapter

import (
	"errors"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
)

// FailEnvelope renders a Responder.Fail call.
func FailEnvelope(data any, includeStack bool) apis.Envelope {
	return apis.Envelope{
		Status: apis.StatusFail,
		Data:   Payload(data, includeStack),
	}
}

// ErrorEnvelope renders a Responder.Error call.
//
// When message is empty and data is a string, the string doubles as the
// message, so a bare string error reads the same as a described one.
func ErrorEnvelope(message string, data any, c code.Code, includeStack bool) apis.Envelope {
	if message == "" {
		if s, ok := data.(string); ok {
			message = s
		}
	}
	return apis.Envelope{
		Status:  apis.StatusError,
		Message: message,
		Code:    string(c),
		Data:    Payload(data, includeStack),
	}
}

// Payload makes data safe to serialize.
//
//   - a status-tagged value becomes {"status", "message", "code", "data"}
//     with empty entries dropped;
//   - any other error becomes {"message"} plus "stack" when includeStack is
//     set and the error has one;
//   - everything else is returned unchanged.
//
// Tagged values nested deeper than MaxDepth lose their "data" entry, so a
// value whose data refers back to itself still renders.
func Payload(data any, includeStack bool) any {
	return payload(data, includeStack, 0)
}

// MaxDepth bounds how many status-tagged values Payload nests.
const MaxDepth = 8

func payload(data any, includeStack bool, depth int) any {
	if t, ok := data.(apis.StatusTagged); ok && t.ErrorStatus() != "" {
		m := map[string]any{"status": t.ErrorStatus()}
		putString(m, "message", t.ErrorMessage())
		putString(m, "code", t.ErrorCode())
		if d := t.ErrorData(); d != nil && depth < MaxDepth {
			m["data"] = payload(d, includeStack, depth+1)
		}
		if err, ok := data.(error); ok && includeStack {
			putString(m, "stack", stackOf(err))
		}
		return m
	}
	if err, ok := data.(error); ok {
		m := map[string]any{"message": err.Error()}
		var ce apis.CodedError
		if errors.As(err, &ce) {
			putString(m, "code", ce.ErrorCode())
		}
		if includeStack {
			putString(m, "stack", stackOf(err))
		}
		return m
	}
	return data
}

func putString(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}

func stackOf(err error) string {
	var st apis.StackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return ""
}
