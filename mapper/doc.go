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

// Package mapper turns response codes into transport statuses for HTTP and
// gRPC.
//
// The httpx, ginx and grpcx responders receive a code from senderr.Send that
// may be empty, a single code, or a combined one such as
// "storage.pg.timeout,orders". A Mapper picks one status pair for it.
//
// # Resolution
//
// The code is split on ",". Each part is normalized (code.Normalize) and tried
// in order. For a single part the tiers are:
//
//  1. exact override (WithHTTPOverride / WithGRPCOverride);
//  2. longest prefix rule (WithHTTPPrefix / WithGRPCPrefix), where prefixes
//     are "."-separated and "*" matches exactly one segment;
//  3. default (library defaults, adjustable with WithHTTPDefault /
//     WithGRPCDefault).
//
// The first part that resolves at any tier decides. When none does, the
// fallback applies (500 / Internal, see WithFallback).
//
// JSend "fail" responses carry no code; they use FailStatus, 400 /
// InvalidArgument unless changed with WithFail.
//
// # Building
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),
//	    mapper.WithHTTPPrefix("storage.pg", http.StatusServiceUnavailable),
//	    mapper.WithGRPCPrefix("storage.pg", codes.Unavailable),
//	)
//
// A Mapper is an immutable snapshot and safe to share across goroutines.
// Explain returns a human-readable trace of a resolution for debugging.
package mapper
