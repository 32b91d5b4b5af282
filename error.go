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
	"fmt"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
)

// Status is a JSend status.
type Status string

const (
	StatusFail  Status = apis.StatusFail
	StatusError Status = apis.StatusError
)

// Error is a status-tagged error: a Go error that also speaks JSend.
//
// It carries:
//   - Status: "fail" for client faults, "error" for everything else;
//   - Message: human-oriented description;
//   - Data: payload forwarded to the responder untouched;
//   - Code: the error's own code, combined with supplementary codes by Send;
//   - Cause: wrapped underlying error.
//
// WithX helpers return shallow copies, so values can be shared freely.
type Error struct {
	Status  Status
	Message string
	Data    any
	Code    code.Code
	Cause   error
}

var (
	_ apis.StatusTagged = (*Error)(nil)
	_ apis.CodedError   = (*Error)(nil)
)

// E builds an "error" status Error.
//
//	return senderr.E("storage is down",
//	    senderr.WithCodeOption(code.Unavailable),
//	    senderr.WithCauseOption(err),
//	)
func E(msg string, opts ...Option) *Error {
	e := &Error{Status: StatusError, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Fail builds a "fail" status Error around data. Send forwards data to
// Responder.Fail and nothing else.
func Fail(data any, opts ...Option) *Error {
	e := &Error{Status: StatusFail, Data: data}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
//	<status>: <message>
//	<status>:<code>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Code != code.Empty {
		return fmt.Sprintf("%s:%s: %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Status, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorStatus implements apis.StatusTagged. A nil *Error has no status.
func (e *Error) ErrorStatus() string {
	if e == nil {
		return ""
	}
	return string(e.Status)
}

// ErrorMessage implements apis.StatusTagged.
func (e *Error) ErrorMessage() string { return e.Message }

// ErrorData implements apis.StatusTagged.
func (e *Error) ErrorData() any { return e.Data }

// ErrorCode implements apis.StatusTagged and apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// WithStatus returns a copy of e with the given status.
func (e *Error) WithStatus(s Status) *Error {
	cp := *e
	cp.Status = s
	return &cp
}

// WithMessage returns a copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithData returns a copy of e carrying data as its payload.
func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data
	return &cp
}

// WithCode returns a copy of e with c appended to its own code. Appending
// keeps earlier codes first, matching how Send combines codes.
func (e *Error) WithCode(c code.Code) *Error {
	cp := *e
	cp.Code = code.Join(cp.Code, c)
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
