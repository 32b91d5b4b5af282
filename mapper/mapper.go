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
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
	"dirpx.dev/senderr/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build steps:
//
//  1. seed the builder with library defaults;
//  2. apply options in order;
//  3. normalize and validate every prefix rule and load it into a trie;
//  4. copy all maps so nothing the caller holds can change the result.
//
// An error is returned for invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTrie(b.httpPrefixes)
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP rule: %w", err)
	}
	grpcTrie, err := buildTrie(b.grpcPrefixes)
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC rule: %w", err)
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallback:     b.fallback,
		fail:         b.fail,
	}, nil
}

// Must is like New but panics on error.
func Must(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is safe for concurrent use once built.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpTrie     *segmenttrie.Trie[int]
	grpcTrie     *segmenttrie.Trie[codes.Code]

	// fallback applies when no part of a code matches any rule.
	fallback apis.Status
	// fail is what JSend "fail" responses use.
	fail apis.Status
}

// HTTPStatus resolves the HTTP status for c.
//
// c may be a combined code. Its parts are normalized and tried left to
// right; for each part the order is:
//  1. exact override;
//  2. longest prefix rule;
//  3. default.
//
// The first part that resolves wins. If none does, the fallback is used.
func (m *mapper) HTTPStatus(c code.Code) int {
	return resolve(c, m.httpOverride, m.httpTrie, m.httpDefault, m.fallback.HTTP).val
}

// GRPCStatus resolves the gRPC status for c with the same rules as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	return resolve(c, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallback.GRPC).val
}

// Status resolves both transports.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c), GRPC: m.GRPCStatus(c)}
}

// FailStatus returns the configured status for JSend "fail" responses.
func (m *mapper) FailStatus() apis.Status {
	return m.fail
}

// Explain shows which rule decided each transport, e.g.
//
//	code="storage.pg.timeout,orders"
//	http: source=prefix code="storage.pg.timeout" pattern="storage.pg" -> 503
//	grpc: source=fallback -> INTERNAL(13)
//
// source is one of override, prefix, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	h := resolve(c, m.httpOverride, m.httpTrie, m.httpDefault, m.fallback.HTTP)
	_, _ = fmt.Fprintln(&b, h.line("http", strconv.Itoa(h.val)))

	g := resolve(c, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallback.GRPC)
	_, _ = fmt.Fprint(&b, g.line("grpc", grpcString(g.val)))

	return b.String()
}

type resolution[T any] struct {
	val     T
	source  string
	part    code.Code
	pattern string
}

func (r resolution[T]) line(transport, val string) string {
	switch r.source {
	case "prefix":
		return fmt.Sprintf("%s: source=prefix code=%q pattern=%q -> %s", transport, r.part, r.pattern, val)
	case "fallback":
		return fmt.Sprintf("%s: source=fallback -> %s", transport, val)
	default:
		return fmt.Sprintf("%s: source=%s code=%q -> %s", transport, r.source, r.part, val)
	}
}

func resolve[T any](c code.Code, override map[code.Code]T, trie *segmenttrie.Trie[T], def map[code.Code]T, fallback T) resolution[T] {
	for _, raw := range code.Split(c) {
		part := code.Code(code.Normalize(string(raw)))
		if v, ok := override[part]; ok {
			return resolution[T]{val: v, source: "override", part: part}
		}
		if v, ok, pat := trie.MatchWithPattern(string(part)); ok {
			return resolution[T]{val: v, source: "prefix", part: part, pattern: pat}
		}
		if v, ok := def[part]; ok {
			return resolution[T]{val: v, source: "default", part: part}
		}
	}
	return resolution[T]{val: fallback, source: "fallback"}
}

func grpcString(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

func buildTrie[T any](rules []prefixRule[T]) (*segmenttrie.Trie[T], error) {
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix %q: %w", r.prefix, err)
		}
		if err := t.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("cannot insert prefix %q: %w", p, err)
		}
	}
	return t, nil
}

var defaultMapper = Must()

// Default returns a shared Mapper built from the library defaults only.
// Responders use it when they are given no Mapper.
func Default() apis.Mapper {
	return defaultMapper
}
