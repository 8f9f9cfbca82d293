package kernel

import (
	"strings"
	"unicode/utf8"

	"procurement/internal/pkg/errs"
)

// RequiredText trims s and fails when nothing is left or when it is longer than
// maxRunes characters. maxRunes <= 0 disables the length check.
//
// Returns:
//   - string: The trimmed text
//   - error: ValueIsRequiredError when blank, ValueIsOutOfRangeError when too long
//
// Example:
//
//	name, err := kernel.RequiredText("product_name", "  widget ", 200)
//	// name == "widget"
func RequiredText(paramName, s string, maxRunes int) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if maxRunes > 0 {
		if n := utf8.RuneCountInString(trimmed); n > maxRunes {
			return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, maxRunes)
		}
	}
	return trimmed, nil
}
