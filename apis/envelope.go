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

// JSend status values as they appear on the wire.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// Envelope is the JSend-shaped body that transport responders emit.
//
//	{"status":"fail","data":{...}}
//	{"status":"error","message":"db is down","code":"unavailable","data":{...}}
//
// Data is always present on the wire, even when null.
type Envelope struct {
	// Status is StatusFail or StatusError.
	Status string `json:"status"`
	// Message is the human-readable text. Only set for errors.
	Message string `json:"message,omitempty"`
	// Code is the (possibly combined) machine-readable code.
	Code string `json:"code,omitempty"`
	// Data is the rendered payload.
	Data any `json:"data"`
}

// Map returns the envelope as a generic map, dropping empty optional fields
// the same way the JSON tags do.
func (e Envelope) Map() map[string]any {
	m := map[string]any{
		"status": e.Status,
		"data":   e.Data,
	}
	if e.Message != "" {
		m["message"] = e.Message
	}
	if e.Code != "" {
		m["code"] = e.Code
	}
	return m
}
