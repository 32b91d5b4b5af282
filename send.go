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

package senderr

import (
	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
)

// Send normalizes v and reports it on r. Exactly one method of r is called.
//
// The code handed to r.Error is v's own code followed by codes, empty ones
// skipped, joined with ",". It is code.Empty when nothing remains.
//
// Decision order:
//  1. status "fail": r.Fail(data); codes are not delivered;
//  2. any other status with truthy data: r.Error(message, data, code);
//  3. otherwise: r.Error(message, v, code), passing the whole value as data.
//
// A nil v is reported as r.Error("", nil, code). r must not be nil.
func Send(r apis.Responder, v any, codes ...code.Code) {
	val := Classify(v)
	combined := code.Join(append([]code.Code{val.Code}, codes...)...)

	switch val.Kind {
	case KindNull:
		r.Error("", nil, combined)
		return
	case KindStatus:
		if val.Status == StatusFail {
			r.Fail(val.Data)
			return
		}
		// Data already carries the payload; don't nest v inside itself.
		if truthy(val.Data) {
			r.Error(val.Message, val.Data, combined)
			return
		}
	}

	r.Error(val.Message, v, combined)
}
