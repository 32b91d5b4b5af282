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

package senderr_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/senderr"
	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
	"dirpx.dev/senderr/senderrtest"
)

func sendOnce(t *testing.T, v any, codes ...code.Code) senderrtest.Call {
	t.Helper()
	rec := senderrtest.New()
	senderr.Send(rec, v, codes...)
	require.Equal(t, 1, rec.Len(), "exactly one responder call expected")
	call, _ := rec.Last()
	return call
}

func TestSend_StandardError(t *testing.T) {
	err := senderr.Trace(errors.New("Something went wrong"))

	call := sendOnce(t, err)

	assert.Equal(t, senderrtest.MethodError, call.Method)
	assert.Equal(t, "Something went wrong", call.Message)
	assert.Same(t, err, call.Data)
	assert.Equal(t, code.Empty, call.Code)

	var st interface{ StackTrace() string }
	require.True(t, errors.As(call.Data.(error), &st))
	assert.NotEmpty(t, st.StackTrace())
}

func TestSend_JSendFail(t *testing.T) {
	t.Run("senderr.Error", func(t *testing.T) {
		call := sendOnce(t, senderr.Fail("Something went wrong", senderr.WithCodeOption("ignored")), "also_ignored")
		assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodFail, Data: "Something went wrong"}, call)
	})
	t.Run("decoded object", func(t *testing.T) {
		in := map[string]any{"status": "fail", "data": "Something went wrong", "code": "ignored"}
		call := sendOnce(t, in, "also_ignored")
		assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodFail, Data: "Something went wrong"}, call)
	})
	t.Run("fail without data", func(t *testing.T) {
		call := sendOnce(t, map[string]any{"status": "fail"})
		assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodFail}, call)
	})
}

func TestSend_JSendError(t *testing.T) {
	base := func(kv ...any) map[string]any {
		m := map[string]any{"status": "error"}
		for i := 0; i+1 < len(kv); i += 2 {
			m[kv[i].(string)] = kv[i+1]
		}
		return m
	}

	t.Run("with data is not double wrapped", func(t *testing.T) {
		in := base("message", "Some error", "data", "Some data")
		call := sendOnce(t, in)
		assert.Equal(t, senderrtest.MethodError, call.Method)
		assert.Equal(t, "Some error", call.Message)
		assert.Equal(t, "Some data", call.Data)
		assert.Equal(t, code.Empty, call.Code)
	})

	t.Run("no codes", func(t *testing.T) {
		in := base("message", "Some error")
		call := sendOnce(t, in)
		assert.Equal(t, "Some error", call.Message)
		assert.Equal(t, in, call.Data)
		assert.Equal(t, code.Empty, call.Code)
	})

	t.Run("new code", func(t *testing.T) {
		in := base("message", "Error with code")
		call := sendOnce(t, in, "code")
		assert.Equal(t, "Error with code", call.Message)
		assert.Equal(t, in, call.Data)
		assert.Equal(t, code.Code("code"), call.Code)
	})

	t.Run("existing code", func(t *testing.T) {
		in := base("message", "Error with existing code", "code", "existing")
		call := sendOnce(t, in)
		assert.Equal(t, in, call.Data)
		assert.Equal(t, code.Code("existing"), call.Code)
	})

	t.Run("existing and new code", func(t *testing.T) {
		in := base("message", "Error with existing code", "code", "existing")
		call := sendOnce(t, in, "new")
		assert.Equal(t, "Error with existing code", call.Message)
		assert.Equal(t, in, call.Data)
		assert.Equal(t, code.Code("existing,new"), call.Code)
	})

	t.Run("senderr.Error with data", func(t *testing.T) {
		e := senderr.E("db is down", senderr.WithDataOption(map[string]any{"node": "pg-2"}), senderr.WithCodeOption("unavailable"))
		call := sendOnce(t, e, "orders")
		assert.Equal(t, "db is down", call.Message)
		assert.Equal(t, map[string]any{"node": "pg-2"}, call.Data)
		assert.Equal(t, code.Code("unavailable,orders"), call.Code)
	})

	t.Run("senderr.Error without data", func(t *testing.T) {
		e := senderr.E("db is down")
		call := sendOnce(t, e)
		assert.Same(t, e, call.Data)
	})

	t.Run("wrapped senderr.Error passes the wrapper as data", func(t *testing.T) {
		e := senderr.E("db is down", senderr.WithCodeOption("unavailable"))
		wrapped := fmt.Errorf("load orders: %w", e)
		call := sendOnce(t, wrapped)
		assert.Equal(t, "db is down", call.Message)
		assert.Same(t, wrapped, call.Data)
		assert.Equal(t, code.Code("unavailable"), call.Code)
	})

	t.Run("wrapped fail still fails", func(t *testing.T) {
		wrapped := fmt.Errorf("validate: %w", senderr.Fail("bad email"))
		call := sendOnce(t, wrapped)
		assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodFail, Data: "bad email"}, call)
	})
}

func TestSend_BareString(t *testing.T) {
	s := "Error with existing code"
	call := sendOnce(t, s)
	assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodError, Message: "", Data: s}, call)
}

func TestSend_Nil(t *testing.T) {
	call := sendOnce(t, nil, "code")
	assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodError, Code: "code"}, call)

	var typed *senderr.Error
	call = sendOnce(t, typed)
	assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodError}, call)
}

func TestSend_OtherStatusFollowsErrorPath(t *testing.T) {
	in := map[string]any{"status": "warn", "message": "careful", "data": "payload"}
	call := sendOnce(t, in)
	assert.Equal(t, senderrtest.Call{Method: senderrtest.MethodError, Message: "careful", Data: "payload"}, call)

	in = map[string]any{"status": true, "message": "careful"}
	call = sendOnce(t, in)
	assert.Equal(t, senderrtest.MethodError, call.Method)
	assert.Equal(t, in, call.Data)
}

func TestSend_FalsyDataFallsBack(t *testing.T) {
	for _, data := range []any{0, "", false, nil, 0.0} {
		in := map[string]any{"status": "error", "message": "m", "data": data}
		call := sendOnce(t, in)
		assert.Equal(t, in, call.Data, "data=%#v", data)
	}
}

func TestSend_FalsyStatusIsNotTagged(t *testing.T) {
	in := map[string]any{"status": "", "message": "plain", "code": "c1", "data": "d"}
	call := sendOnce(t, in, "c2")
	assert.Equal(t, senderrtest.MethodError, call.Method)
	assert.Equal(t, "plain", call.Message)
	assert.Equal(t, in, call.Data)
	assert.Equal(t, code.Code("c1,c2"), call.Code)
}

type codedErr struct{ c string }

func (e codedErr) Error() string     { return "coded" }
func (e codedErr) ErrorCode() string { return e.c }

func TestSend_ExceptionCode(t *testing.T) {
	err := fmt.Errorf("open: %w", codedErr{c: "enoent"})
	call := sendOnce(t, err, "storage")
	assert.Equal(t, "open: coded", call.Message)
	assert.Equal(t, code.Code("enoent,storage"), call.Code)
}

func TestSend_EmptySupplementaryCodesSkipped(t *testing.T) {
	call := sendOnce(t, errors.New("x"), "", "b", "")
	assert.Equal(t, code.Code("b"), call.Code)
}

func TestSend_Idempotent(t *testing.T) {
	rec := senderrtest.New()
	in := map[string]any{"status": "error", "message": "m", "code": "existing"}
	senderr.Send(rec, in, "new")
	senderr.Send(rec, in, "new")

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
}

func TestSend_Concurrent(t *testing.T) {
	rec := senderrtest.New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			senderr.Send(rec, senderr.E("boom", senderr.WithCodeOption("internal")))
		}()
	}
	wg.Wait()

	require.Equal(t, 32, rec.Len())
	for _, c := range rec.Calls() {
		assert.Equal(t, code.Internal, c.Code)
	}
}

func TestSend_ResponderFunc(t *testing.T) {
	var gotMsg string
	var gotCode code.Code
	var failed bool
	r := apis.ResponderFunc{
		OnError: func(message string, _ any, c code.Code) {
			gotMsg, gotCode = message, c
		},
	}

	senderr.Send(r, senderr.E("db down", senderr.WithCodeOption(code.Unavailable)), "orders")
	assert.Equal(t, "db down", gotMsg)
	assert.Equal(t, code.Code("unavailable,orders"), gotCode)

	// A nil OnFail is a no-op.
	assert.NotPanics(t, func() { senderr.Send(r, senderr.Fail("bad")) })

	r.OnFail = func(any) { failed = true }
	senderr.Send(r, senderr.Fail("bad"))
	assert.True(t, failed)
}
