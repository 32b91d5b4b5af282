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

// Package httpx writes senderr responses to a net/http ResponseWriter as
// JSend JSON.
package httpx

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"dirpx.dev/senderr"
	"dirpx.dev/senderr/adapter"
	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
	"dirpx.dev/senderr/internal/logx"
	"dirpx.dev/senderr/mapper"
)

// ContentType is set on every response written by this package.
const ContentType = "application/json; charset=utf-8"

// fallbackBody is written when the envelope cannot be marshaled.
var fallbackBody = []byte(`{"status":"error","message":"Internal Server Error","data":null}`)

// Writer holds the settings shared by all responses. The zero value is usable:
// it resolves statuses with mapper.Default and does not log.
type Writer struct {
	// Mapper resolves HTTP statuses. Nil means mapper.Default().
	Mapper apis.Mapper

	// Logger receives one entry per response. Nil disables logging.
	Logger *zap.Logger

	// IncludeStack exposes error stacks in the "data" payload. Keep it off
	// for public endpoints.
	IncludeStack bool
}

// Send normalizes v with senderr.Send and writes the result to rw.
//
//	errs := httpx.Writer{Mapper: m, Logger: log}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if err := do(r); err != nil {
//	        errs.Send(w, err, "orders")
//	        return
//	    }
//	}
func (w Writer) Send(rw http.ResponseWriter, v any, codes ...code.Code) {
	senderr.Send(w.Responder(rw), v, codes...)
}

// Responder returns a single-use apis.Responder bound to rw.
func (w Writer) Responder(rw http.ResponseWriter) *Responder {
	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}
	return &Responder{
		rw:           rw,
		mapper:       m,
		log:          logx.Or(w.Logger),
		includeStack: w.IncludeStack,
	}
}

// Responder writes at most one response. Later calls are dropped and logged.
type Responder struct {
	rw           http.ResponseWriter
	mapper       apis.Mapper
	log          *zap.Logger
	includeStack bool
	written      bool
}

var _ apis.Responder = (*Responder)(nil)

// Fail implements apis.Responder.
func (r *Responder) Fail(data any) {
	r.write(r.mapper.FailStatus().HTTP, adapter.FailEnvelope(data, r.includeStack))
}

// Error implements apis.Responder.
func (r *Responder) Error(message string, data any, c code.Code) {
	r.write(r.mapper.HTTPStatus(c), adapter.ErrorEnvelope(message, data, c, r.includeStack))
}

// Written reports whether a response has been written.
func (r *Responder) Written() bool {
	return r.written
}

func (r *Responder) write(status int, env apis.Envelope) {
	if r.written {
		r.log.Warn("response already written, dropping", zap.String("jsend", env.Status), zap.Int("status", status))
		return
	}
	r.written = true

	body, err := json.Marshal(env)
	if err != nil {
		r.log.Error("failed to marshal envelope", zap.Error(err))
		status = http.StatusInternalServerError
		body = fallbackBody
	}
	logx.Response(r.log, "http", status, env)

	r.rw.Header().Set("Content-Type", ContentType)
	r.rw.WriteHeader(status)
	_, _ = r.rw.Write(body)
}
