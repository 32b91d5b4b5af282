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
	"errors"
	"fmt"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
)

// Kind is the shape an error value was classified as.
type Kind uint8

const (
	// KindNull is nil or a typed nil (pointer, map, slice, interface, func, chan).
	KindNull Kind = iota
	// KindException is a Go error that is not status-tagged.
	KindException
	// KindStatus is a JSend status-tagged value.
	KindStatus
	// KindOpaque is anything else: strings, numbers, untagged structs and maps.
	KindOpaque
)

var kindNames = [...]string{
	KindNull:      "null",
	KindException: "exception",
	KindStatus:    "status",
	KindOpaque:    "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is the classified form of an arbitrary error value.
//
// Which fields are meaningful depends on Kind:
//
//	KindNull       Raw only
//	KindException  Message, Code, Stack, Raw
//	KindStatus     Status, Message, Data, Code, Stack, Raw
//	KindOpaque     Message, Code (from a map), Raw
type Value struct {
	Kind    Kind
	Status  Status
	Message string
	Data    any
	Code    code.Code
	Stack   string

	// Raw is the value exactly as it was passed in.
	Raw any
}

// Classify maps any value to exactly one Kind. It never panics.
//
// Order of checks:
//  1. nil and typed nils are KindNull;
//  2. a value implementing apis.StatusTagged with a non-empty status is
//     KindStatus, and so is an error whose chain contains one;
//  3. any other error is KindException;
//  4. a map[string]any with a truthy "status" entry is KindStatus;
//  5. everything else is KindOpaque.
func Classify(v any) Value {
	if isNil(v) {
		return Value{Kind: KindNull, Raw: v}
	}
	if t, ok := v.(apis.StatusTagged); ok && t.ErrorStatus() != "" {
		return fromTagged(t, v)
	}
	switch x := v.(type) {
	case error:
		return classifyError(x)
	case map[string]any:
		return classifyMap(x)
	}
	return Value{Kind: KindOpaque, Raw: v}
}

func classifyError(err error) Value {
	var tagged apis.StatusTagged
	if errors.As(err, &tagged) && !isNil(tagged) && tagged.ErrorStatus() != "" {
		return fromTagged(tagged, err)
	}

	val := Value{Kind: KindException, Message: err.Error(), Raw: err}
	var ce apis.CodedError
	if errors.As(err, &ce) && !isNil(ce) {
		val.Code = code.Code(ce.ErrorCode())
	}
	val.Stack = stackOf(err)
	return val
}

func fromTagged(t apis.StatusTagged, raw any) Value {
	val := Value{
		Kind:    KindStatus,
		Status:  Status(t.ErrorStatus()),
		Message: t.ErrorMessage(),
		Data:    t.ErrorData(),
		Code:    code.Code(t.ErrorCode()),
		Raw:     raw,
	}
	if err, ok := raw.(error); ok {
		val.Stack = stackOf(err)
	}
	return val
}

// classifyMap handles decoded JSON objects such as
// {"status":"error","message":"...","code":"...","data":...}.
func classifyMap(m map[string]any) Value {
	val := Value{Kind: KindOpaque, Raw: m}
	if s, ok := m["message"].(string); ok {
		val.Message = s
	}
	if c, ok := m["code"].(string); ok {
		val.Code = code.Code(c)
	}
	if s, ok := m["stack"].(string); ok {
		val.Stack = s
	}
	if s := m["status"]; truthy(s) {
		val.Kind = KindStatus
		val.Status = statusOf(s)
		val.Data = m["data"]
	}
	return val
}

func statusOf(v any) Status {
	if s, ok := v.(string); ok {
		return Status(s)
	}
	return Status(fmt.Sprint(v))
}

func stackOf(err error) string {
	var st apis.StackTracer
	if errors.As(err, &st) && !isNil(st) {
		return st.StackTrace()
	}
	return ""
}
