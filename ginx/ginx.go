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

// Package ginx adapts senderr to gin handlers.
//
//	r := gin.New()
//	r.Use(ginx.ErrorHandler(m, ginx.WithLogger(log)))
//	r.GET("/orders/:id", func(c *gin.Context) {
//	    if err := load(c); err != nil {
//	        ginx.Send(c, m, err, "orders")
//	    }
//	})
package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
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

var fallbackBody = []byte(`{"status":"error","message":"Internal Server Error","data":null}`)

type options struct {
	log          *zap.Logger
	includeStack bool
}

// Option configures a Responder or the ErrorHandler middleware.
type Option func(*options)

// WithLogger sets the logger for emitted responses.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithStack exposes error stacks in the "data" payload.
func WithStack(on bool) Option {
	return func(o *options) { o.includeStack = on }
}

// Responder writes JSend bodies to a gin context and aborts the chain.
type Responder struct {
	c            *gin.Context
	mapper       apis.Mapper
	log          *zap.Logger
	includeStack bool
}

var _ apis.Responder = (*Responder)(nil)

// New returns a Responder bound to c. A nil m means mapper.Default().
func New(c *gin.Context, m apis.Mapper, opts ...Option) *Responder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		m = mapper.Default()
	}
	return &Responder{c: c, mapper: m, log: logx.Or(o.log), includeStack: o.includeStack}
}

// Send normalizes v and writes it to c.
func Send(c *gin.Context, m apis.Mapper, v any, codes ...code.Code) {
	senderr.Send(New(c, m), v, codes...)
}

// Fail implements apis.Responder.
func (r *Responder) Fail(data any) {
	r.write(r.mapper.FailStatus().HTTP, adapter.FailEnvelope(data, r.includeStack))
}

// Error implements apis.Responder.
func (r *Responder) Error(message string, data any, c code.Code) {
	r.write(r.mapper.HTTPStatus(c), adapter.ErrorEnvelope(message, data, c, r.includeStack))
}

func (r *Responder) write(status int, env apis.Envelope) {
	if r.c.Writer.Written() {
		r.log.Warn("response already written, dropping", zap.String("jsend", env.Status), zap.Int("status", status))
		r.c.Abort()
		return
	}

	payload, err := json.Marshal(env)
	if err != nil {
		r.log.Error("failed to marshal envelope", zap.Error(err))
		status = http.StatusInternalServerError
		payload = fallbackBody
	}
	logx.Response(r.log, "http", status, env, routeFields(r.c)...)
	r.c.Data(status, ContentType, payload)
	r.c.Abort()
}

func routeFields(c *gin.Context) []zap.Field {
	if c.Request == nil {
		return nil
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	fields := []zap.Field{
		zap.String("route", route),
		zap.String("path", c.Request.URL.Path),
	}
	if id := c.Request.Header.Get("X-Request-ID"); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}

// ErrorHandler returns middleware that answers with the last error a handler
// attached via c.Error, unless the handler already wrote a response.
func ErrorHandler(m apis.Mapper, opts ...Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		senderr.Send(New(c, m, opts...), c.Errors.Last().Err)
	}
}
