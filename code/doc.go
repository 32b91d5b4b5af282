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

// Package code defines the machine-readable error code handed to responders.
//
// Two shapes exist:
//
//   - a single code, e.g. "not_found" or "storage.pg.connect_timeout";
//   - a combined code, several single codes joined with ",", e.g.
//     "existing,new". This is what senderr.Send produces when an error
//     carries its own code and the caller adds a supplementary one.
//
// Codes coming from errors are passed through untouched. Normalize, Parse and
// Validate exist for the places that need a canonical form, such as the
// status mapper and configuration.
package code
