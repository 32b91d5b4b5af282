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

// StatusTagged is implemented by values that follow the JSend status
// convention. senderr.Error implements it; user types may too.
//
// Implementations do not need to be errors: a plain response struct that
// knows its status qualifies.
type StatusTagged interface {
	// ErrorStatus returns the JSend status, usually "fail" or "error".
	// An empty status means the value is not status-tagged after all.
	ErrorStatus() string

	// ErrorMessage returns the human-readable message. May be empty.
	ErrorMessage() string

	// ErrorData returns the payload. May be nil.
	ErrorData() any

	// ErrorCode returns the value's own code. May be empty.
	ErrorCode() string
}

// CodedError is an error that carries its own machine-readable code, in the
// spirit of an errno-like "code" attached to an exception.
//
// senderr looks for it anywhere in the wrap chain (errors.As).
type CodedError interface {
	error

	// ErrorCode returns the code. An empty string means "no code".
	ErrorCode() string
}

// StackTracer is an error that can report the stack it was created on.
// senderr.Trace produces such errors.
type StackTracer interface {
	error

	// StackTrace returns a formatted goroutine stack.
	StackTrace() string
}
