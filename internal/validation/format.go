package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins the lowercase display names of values for error
// messages and editor hints.
func FormatValidValues[T fmt.Stringer](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, strings.ToLower(value.String()))
	}
	return strings.Join(formatted, ", ")
}

// FormatInvalidValueError wraps base with the rejected input and the
// accepted values.
func FormatInvalidValueError[T fmt.Stringer](base error, value string, valid []T) error {
	return fmt.Errorf("%w: %q (valid: %s)", base, value, FormatValidValues(valid))
}
