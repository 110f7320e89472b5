// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger built on the slog package.
// The log level is read from an environment variable derived from the
// executable name, e.g. REMAC_LOG_LEVEL for an executable named "remac".
// Valid values are "DEBUG", "INFO", "WARN" and "ERROR"; anything else
// defaults to "WARN".
package ctxlog
