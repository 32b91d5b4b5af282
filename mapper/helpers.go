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
	"errors"
	"strings"

	"dirpx.dev/senderr/code"
)

var (
	errEmptyPrefix    = errors.New("empty prefix")
	errInvalidSegment = errors.New("invalid segment")
	errOnlyWildcards  = errors.New("prefix cannot consist of '*' only")
)

// freeze returns a private copy of src, or nil when src is empty.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// normalizeAndValidatePrefix brings a prefix rule to canonical form.
// Segments must be "*" or [a-z][a-z0-9_]*, and at least one must not be "*".
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := code.Normalize(raw)
	if p == "" {
		return "", errEmptyPrefix
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", errInvalidSegment
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", errOnlyWildcards
	}
	return p, nil
}

func validPrefixSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
