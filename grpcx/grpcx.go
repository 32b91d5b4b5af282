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

// Package grpcx turns senderr responses into gRPC status errors. The JSend
// envelope travels as a google.protobuf.Struct status detail.
package grpcx

import (
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/senderr"
	"dirpx.dev/senderr/adapter"
	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
	"dirpx.dev/senderr/internal/logx"
	"dirpx.dev/senderr/mapper"
)

type options struct {
	log          *zap.Logger
	includeStack bool
}

// Option configures a Responder or an interceptor.
type Option func(*options)

// WithLogger sets the logger for emitted statuses.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithStack exposes error stacks in the envelope detail.
func WithStack(on bool) Option {
	return func(o *options) { o.includeStack = on }
}

// Responder collects one response as a *status.Status. It is not safe for
// concurrent use.
type Responder struct {
	mapper       apis.Mapper
	log          *zap.Logger
	includeStack bool
	st           *gstatus.Status
}

var _ apis.Responder = (*Responder)(nil)

// NewResponder returns an empty Responder. A nil m means mapper.Default().
func NewResponder(m apis.Mapper, opts ...Option) *Responder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		m = mapper.Default()
	}
	return &Responder{mapper: m, log: logx.Or(o.log), includeStack: o.includeStack}
}

// Fail implements apis.Responder.
func (r *Responder) Fail(data any) {
	s := r.mapper.FailStatus()
	r.set(s, apis.StatusFail, adapter.FailEnvelope(data, r.includeStack))
}

// Error implements apis.Responder.
func (r *Responder) Error(message string, data any, c code.Code) {
	r.set(r.mapper.Status(c), message, adapter.ErrorEnvelope(message, data, c, r.includeStack))
}

// Status returns the collected status, or nil if nothing was sent.
func (r *Responder) Status() *gstatus.Status {
	return r.st
}

// Err returns the collected status as an error, or nil if nothing was sent.
func (r *Responder) Err() error {
	if r.st == nil {
		return nil
	}
	return r.st.Err()
}

func (r *Responder) set(s apis.Status, msg string, env apis.Envelope) {
	if r.st != nil {
		r.log.Warn("response already written, dropping", zap.String("jsend", env.Status), zap.Stringer("grpc_code", s.GRPC))
		return
	}
	if env.Message != "" {
		msg = env.Message
	}
	logx.Response(r.log, "grpc", s.HTTP, env, zap.Stringer("grpc_code", s.GRPC))

	base := gstatus.New(s.GRPC, msg)
	r.st = base
	detail, err := toStruct(env)
	if err != nil {
		r.log.Error("failed to encode envelope detail", zap.Error(err))
		return
	}
	if with, err := base.WithDetails(detail); err == nil {
		r.st = with
	}
}

func toStruct(env apis.Envelope) (*structpb.Struct, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Convert normalizes v into a gRPC status error. Errors that already carry a
// gRPC status are returned unchanged unless they are status-tagged; a tagged
// error wrapping a downstream status is still rendered from its own tag.
func Convert(m apis.Mapper, v any, codes []code.Code, opts ...Option) error {
	if err, ok := v.(error); ok && senderr.Classify(v).Kind != senderr.KindStatus {
		if _, isStatus := gstatus.FromError(err); isStatus {
			return err
		}
	}
	r := NewResponder(m, opts...)
	senderr.Send(r, v, codes...)
	return r.Err()
}

// UnaryServerInterceptor normalizes every handler error.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, Convert(m, err, nil, opts...)
	}
}

// StreamServerInterceptor normalizes the error a stream handler returns.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return Convert(m, err, nil, opts...)
		}
		return nil
	}
}

// ExtractStruct returns the envelope detail attached to a gRPC error.
func ExtractStruct(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}

// ExtractEnvelope decodes the envelope detail of a gRPC error. Clients use it
// to read the same body an HTTP caller would get.
func ExtractEnvelope(err error) (apis.Envelope, bool) {
	s, ok := ExtractStruct(err)
	if !ok {
		return apis.Envelope{}, false
	}
	raw, mErr := protojson.Marshal(s)
	if mErr != nil {
		return apis.Envelope{}, false
	}
	var env apis.Envelope
	if json.Unmarshal(raw, &env) != nil {
		return apis.Envelope{}, false
	}
	return env, true
}
