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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a machine-readable error code as it travels to a responder.
//
// A Code may hold a single code ("not_found") or several codes joined with
// Separator ("existing,new"). Values taken from errors are carried verbatim;
// only Parse and Normalize rewrite them.
type Code string

// Separator joins individual codes inside a combined Code.
const Separator = ","

// MinLength and MaxLength bound a single canonical code.
const (
	MinLength = 1
	MaxLength = 128
)

const (
	// codeFmt accepts 1 to 4 dot-separated segments. Each segment starts with
	// a lowercase ASCII letter and continues with [a-z0-9_].
	//
	// Matches:
	//
	//	"internal"
	//	"storage.pg.connect_timeout"
	//	"e_notfound"
	//
	// Does not match:
	//
	//	"Internal"       (uppercase)
	//	"storage..pg"    (empty segment)
	//	"1st"            (digit first)
	//	"a,b"            (combined, use Split first)
	codeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var codeRe = regexp.MustCompile(codeFmt)

var (
	// ErrCodeInvalidFormat is returned when a code does not match codeFmt.
	ErrCodeInvalidFormat = errors.New("senderr: invalid code format")
	// ErrCodeInvalidLength is returned when a code is empty or too long.
	ErrCodeInvalidLength = errors.New("senderr: invalid code length")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty means "no code". Responders receive Empty when neither the error nor
// the caller supplied one.
var Empty Code = ""

// Join combines codes in order, skipping empty entries. The result is Empty
// when every entry is empty.
//
//	Join("existing", "new") == "existing,new"
//	Join("", "new")         == "new"
//	Join("", "")            == Empty
func Join(codes ...Code) Code {
	var b strings.Builder
	for _, c := range codes {
		if c == Empty {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(string(c))
	}
	return Code(b.String())
}

// Split breaks a combined code into its parts. Parts are trimmed and empty
// parts are dropped, so Split(Empty) returns nil.
func Split(c Code) []Code {
	if c == Empty {
		return nil
	}
	raw := strings.Split(string(c), Separator)
	out := make([]Code, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Code(p))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Normalize brings a single code closer to canonical form: it trims spaces,
// lower-cases, turns "/" into "." and "-" into "_".
//
// The result is not guaranteed to be valid; use Parse for that.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a single code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on error. Meant for package-level vars.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that c is a single canonical code. Empty is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the code as-is.
func (c Code) String() string {
	return string(c)
}

// Codes returns the individual parts of a combined code.
func (c Code) Codes() []Code {
	return Split(c)
}

// MarshalText implements encoding.TextMarshaler. Every part of a combined
// code must be canonical; Empty marshals to an empty slice.
func (c Code) MarshalText() ([]byte, error) {
	for _, p := range Split(c) {
		if err := Validate(p); err != nil {
			return nil, err
		}
	}
	return []byte(Join(Split(c)...)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Each part is normalized
// and validated before the combined value is assigned.
func (c *Code) UnmarshalText(text []byte) error {
	parts := Split(Code(bytes.TrimSpace(text)))
	parsed := make([]Code, 0, len(parts))
	for _, p := range parts {
		v, err := Parse(string(p))
		if err != nil {
			return err
		}
		parsed = append(parsed, v)
	}
	*c = Join(parsed...)
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeInvalidLength
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalidFormat
	}
	return nil
}
