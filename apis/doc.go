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

// Package apis defines the small contracts shared by the senderr packages.
//
// The normalizer (senderr.Send), the transport responders (httpx, ginx,
// grpcx) and user code meet here: Responder is what Send talks to, the error
// interfaces describe what Send can learn from a value, and Mapper/Status
// describe how a code becomes a transport status.
//
// This package must stay lightweight. It only holds interfaces and a few
// plain view types.
package apis
