// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macros

import "fmt"

// ValidationError reports a malformed macro definition.
// It names the offending macro and, where applicable, the offending field.
type ValidationError struct {
	Macro  string
	Field  string
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid macro definition %q: %s", e.Macro, e.Detail)
	}

	return fmt.Sprintf("invalid macro definition %q: %s %s", e.Macro, e.Field, e.Detail)
}
