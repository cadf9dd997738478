package cli

import (
	"errors"
	"strings"

	"cardwall/internal/model"
	"cardwall/internal/roster"
)

// CLI-local error codes. Loader codes (E00x) and roster validation codes
// (E1xx) live with their packages; only codes raised by commands
// themselves are defined here.
const (
	ErrCodeWriteFailed = "E008" // Output file write error
	ErrCodeBadLocale   = "E009" // Unparseable display locale
	ErrCodeBadPage     = "E010" // Host page read/parse error
)

// codeOf extracts the structured error code from a roster or validation
// error, falling back to the generic code.
func codeOf(err error) string {
	var loadErr *roster.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Code
	}
	return roster.ErrCodeGeneric
}

// isCommandError reports whether the code describes a command error
// (bad paths, unreadable input) rather than a roster validation failure.
// Command errors exit 2; validation failures exit 1. Bad-record errors
// (E007) count as validation failures: the path was fine, the data wasn't.
func isCommandError(code string) bool {
	if code == roster.ErrCodeBadRecord {
		return false
	}
	return strings.HasPrefix(code, "E0")
}
