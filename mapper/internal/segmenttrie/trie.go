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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated codes such as
// "storage.pg.connect_timeout". Each node is one segment; "*" matches exactly
// one segment. Lookups return the longest (deepest) matching prefix.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for MatchWithPattern.
	pattern string
}

// ErrInvalidPrefix is returned for empty prefixes, empty or malformed
// segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix:
//
//	"storage.pg"
//	"auth.*.verify"
//
// Inserting the same prefix twice keeps the last value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching key.
// Invalid keys never match.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the prefix that matched, for diagnostics.
//
// Both the exact child and the "*" child are explored at every level, so a
// wildcard path that reaches deeper wins over a shallower exact one. At equal
// depth the exact branch wins because it is visited first.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || !validKey(key) {
		return zero, false, ""
	}

	best := -1
	var bestNode *Trie[T]

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestNode = n
		}
		if off >= len(key) {
			return
		}
		end := segmentEnd(key, off)
		seg := key[off:end]
		next := end
		if next < len(key) {
			next++ // skip '.'
		}
		if child, ok := n.children[seg]; ok {
			walk(child, next, depth+1)
		}
		if child, ok := n.children["*"]; ok {
			walk(child, next, depth+1)
		}
	}
	walk(t, 0, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// validKey reports whether every segment of key is [a-z][a-z0-9_]*.
// Empty segments, including leading and trailing dots, are rejected.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for off := 0; ; {
		end := segmentEnd(key, off)
		if end < 0 {
			return false
		}
		if end == len(key) {
			return true
		}
		off = end + 1
		if off == len(key) {
			return false
		}
	}
}

// segmentEnd returns the index just past the segment starting at off, or -1
// if the segment is not [a-z][a-z0-9_]*.
func segmentEnd(s string, off int) int {
	c := s[off]
	if c < 'a' || c > 'z' {
		return -1
	}
	i := off + 1
	for ; i < len(s); i++ {
		c = s[i]
		if c == '.' {
			break
		}
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return -1
		}
	}
	return i
}

// validSegment reports whether seg is "*" (when allowed) or [a-z][a-z0-9_]*.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	return segmentEnd(seg, 0) == len(seg)
}
