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

package mapper

import (
	"dirpx.dev/senderr/code"
	"google.golang.org/grpc/codes"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for c.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[key(c)] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for c.
func WithGRPCDefault(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[key(c)] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for c. Overrides beat
// prefix rules and defaults for the same code.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[key(c)] = http }
}

// WithGRPCOverride registers an exact gRPC status for c.
func WithGRPCOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[key(c)] = grpc }
}

// WithHTTPPrefix adds a longest-prefix rule. "storage.pg" matches
// "storage.pg" and "storage.pg.connect_timeout"; "*" matches one segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule[int]{prefix, http}) }
}

// WithGRPCPrefix adds a longest-prefix rule for gRPC.
func WithGRPCPrefix(prefix string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule[codes.Code]{prefix, grpc}) }
}

// WithFallback sets the statuses used when nothing matches.
// Defaults to 500 / Internal.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallback.HTTP = http
		b.fallback.GRPC = grpc
	}
}

// WithFail sets the statuses used for JSend "fail" responses.
// Defaults to 400 / InvalidArgument.
func WithFail(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fail.HTTP = http
		b.fail.GRPC = grpc
	}
}
