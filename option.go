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

import "dirpx.dev/senderr/code"

// Option is a functional option for E and Fail.
type Option func(*Error) *Error

// WithStatusOption overrides the status chosen by the constructor.
func WithStatusOption(s Status) Option {
	return func(e *Error) *Error {
		return e.WithStatus(s)
	}
}

// WithDataOption sets the payload.
func WithDataOption(data any) Option {
	return func(e *Error) *Error {
		return e.WithData(data)
	}
}

// WithCodeOption appends a code.
func WithCodeOption(c code.Code) Option {
	return func(e *Error) *Error {
		return e.WithCode(c)
	}
}

// WithCauseOption attaches a cause.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
