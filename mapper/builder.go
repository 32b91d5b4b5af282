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
	"net/http"

	"dirpx.dev/senderr/apis"
	"dirpx.dev/senderr/code"
	"google.golang.org/grpc/codes"
)

type prefixRule[T any] struct {
	// prefix is the raw dot-separated code prefix, possibly with "*".
	// It is normalized and validated in New.
	prefix string
	val    T
}

// builder collects options before New freezes them.
type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]codes.Code

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpPrefixes []prefixRule[int]
	grpcPrefixes []prefixRule[codes.Code]

	fallback apis.Status
	fail     apis.Status
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),

		fallback: apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
		fail:     apis.Status{HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	}
}

// key normalizes a code used as a map key so that lookups, which normalize
// too, find it.
func key(c code.Code) code.Code {
	return code.Code(code.Normalize(string(c)))
}
