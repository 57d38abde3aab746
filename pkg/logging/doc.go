// Copyright (c) 2026, VPack Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides structured logging utilities for vpack components.
//
// # Overview
//
// This package wraps the standard library slog package with vpack-specific
// defaults and conventions for consistent logging across the CLI and the
// API server. It supports environment-based log level configuration,
// module/version context injection, and automatic source location tracking
// for debug logs.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vpackctl", version)
//
//	    slog.Info("encoding version", "input", "1.2.3")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("vpackd", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity (debug, info,
// warn/warning, error; case-insensitive). If unset, INFO is used.
//
// # Output Format
//
// All logs are written to stderr in JSON with "module" and "version"
// attributes attached; debug level additionally records source location.
package logging
