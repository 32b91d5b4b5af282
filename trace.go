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
	"runtime/debug"

	"dirpx.dev/senderr/apis"
)

// traced pairs an error with the stack it was traced on.
type traced struct {
	err   error
	stack string
}

var _ apis.StackTracer = (*traced)(nil)

// Trace attaches the current goroutine stack to err. The result keeps err's
// message and unwraps to err.
//
// Trace(nil) is nil. If err already carries a stack anywhere in its chain it
// is returned unchanged.
func Trace(err error) error {
	if err == nil {
		return nil
	}
	var st apis.StackTracer
	if errors.As(err, &st) {
		return err
	}
	return &traced{err: err, stack: string(debug.Stack())}
}

func (t *traced) Error() string      { return t.err.Error() }
func (t *traced) Unwrap() error      { return t.err }
func (t *traced) StackTrace() string { return t.stack }
