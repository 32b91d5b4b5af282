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

// Canonical codes known to the default mapper.
//
// Nothing forces callers to use these; any string is a valid Code for Send.
// They exist so that HTTP and gRPC responders can pick a sensible status
// without extra configuration.
const (
	// Internal is the catch-all for unclassified server-side failures.
	Internal Code = "internal"

	// Invalid marks input that breaks a structural or semantic rule.
	Invalid Code = "invalid"

	// Missing marks a required value that was not supplied.
	Missing Code = "missing"

	// Unsupported marks an operation or option the server will not perform.
	Unsupported Code = "unsupported"
)

// Availability and time.
const (
	Unavailable      Code = "unavailable"
	Timeout          Code = "timeout"
	Canceled         Code = "canceled"
	DependencyFailed Code = "dependency_failed"
)

// Resources and state.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
	Gone               Code = "gone"
)

// Access.
const (
	// Unauthenticated: no usable identity was presented.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied: the identity is known but not allowed.
	PermissionDenied Code = "permission_denied"
)

// Rate and quota.
const (
	RateLimited   Code = "rate_limited"
	QuotaExceeded Code = "quota_exceeded"
)
