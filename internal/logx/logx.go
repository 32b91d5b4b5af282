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

// Package logx holds the logging conventions shared by the responders.
package logx

import (
	"net/http"

	"go.uber.org/zap"

	"dirpx.dev/senderr/apis"
)

// Or returns log, or a no-op logger when log is nil.
func Or(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Response logs one emitted envelope. Client-side statuses (< 500) are logged
// at Warn, server-side ones at Error.
func Response(log *zap.Logger, transport string, httpStatus int, env apis.Envelope, extra ...zap.Field) {
	fields := []zap.Field{
		zap.String("transport", transport),
		zap.String("jsend", env.Status),
		zap.Int("status", httpStatus),
	}
	if env.Code != "" {
		fields = append(fields, zap.String("code", env.Code))
	}
	if env.Message != "" {
		fields = append(fields, zap.String("message", env.Message))
	}
	fields = append(fields, extra...)
	if httpStatus >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
		return
	}
	log.Warn("request failed", fields...)
}
