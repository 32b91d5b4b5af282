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

package apis

import (
	"dirpx.dev/senderr/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of status mapping rules.
// It turns a (possibly combined) code into transport statuses for HTTP and
// gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for an error response with code c.
	HTTPStatus(c code.Code) int

	// GRPCStatus returns the gRPC status for an error response with code c.
	GRPCStatus(c code.Code) codes.Code

	// Status resolves both transports in one call using the same rules.
	Status(c code.Code) Status

	// FailStatus is the status used for JSend "fail" responses, which carry
	// no code.
	FailStatus() Status

	// Explain describes which rule matched. Meant for humans, not parsing.
	Explain(c code.Code) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http compatible status code.
	GRPC codes.Code // gRPC status code.
}
