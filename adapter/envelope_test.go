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

package adapter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/senderr"
	"dirpx.dev/senderr/adapter"
	"dirpx.dev/senderr/apis"
)

func TestFailEnvelope(t *testing.T) {
	env := adapter.FailEnvelope(map[string]any{"email": "required"}, false)
	assert.Equal(t, apis.Envelope{Status: "fail", Data: map[string]any{"email": "required"}}, env)
}

func TestErrorEnvelope_StringDoublesAsMessage(t *testing.T) {
	env := adapter.ErrorEnvelope("", "Error with existing code", "", false)
	assert.Equal(t, "Error with existing code", env.Message)
	assert.Equal(t, "Error with existing code", env.Data)
	assert.Empty(t, env.Code)

	env = adapter.ErrorEnvelope("explicit", "data", "c1,c2", false)
	assert.Equal(t, "explicit", env.Message)
	assert.Equal(t, "c1,c2", env.Code)
}

func TestPayload_Error(t *testing.T) {
	err := senderr.Trace(errors.New("boom"))

	p := adapter.Payload(err, false).(map[string]any)
	assert.Equal(t, map[string]any{"message": "boom"}, p)

	p = adapter.Payload(err, true).(map[string]any)
	assert.Equal(t, "boom", p["message"])
	assert.NotEmpty(t, p["stack"])

	// plain errors have no stack to show
	p = adapter.Payload(errors.New("plain"), true).(map[string]any)
	assert.Equal(t, map[string]any{"message": "plain"}, p)
}

func TestPayload_Tagged(t *testing.T) {
	e := senderr.E("db is down", senderr.WithCodeOption("unavailable"), senderr.WithDataOption(errors.New("inner")))
	p := adapter.Payload(e, false)
	assert.Equal(t, map[string]any{
		"status":  "error",
		"message": "db is down",
		"code":    "unavailable",
		"data":    map[string]any{"message": "inner"},
	}, p)
}

func TestPayload_PassThrough(t *testing.T) {
	in := map[string]any{"k": 1}
	assert.Equal(t, in, adapter.Payload(in, true))
	assert.Nil(t, adapter.Payload(nil, true))
	assert.Equal(t, 42, adapter.Payload(42, false))
}

func TestEnvelope_Map(t *testing.T) {
	m := adapter.ErrorEnvelope("m", nil, "c", false).Map()
	assert.Equal(t, map[string]any{"status": "error", "message": "m", "code": "c", "data": nil}, m)

	m = adapter.FailEnvelope("d", false).Map()
	assert.Equal(t, map[string]any{"status": "fail", "data": "d"}, m)
}

func TestPayload_SelfReferenceIsBounded(t *testing.T) {
	e := senderr.E("loop")
	e.Data = e

	p, ok := adapter.Payload(e, false).(map[string]any)
	assert.True(t, ok)

	depth := 0
	for {
		assert.Equal(t, "loop", p["message"])
		next, ok := p["data"].(map[string]any)
		if !ok {
			break
		}
		p = next
		depth++
	}
	assert.Equal(t, adapter.MaxDepth, depth)
	assert.NotContains(t, p, "data")
}
