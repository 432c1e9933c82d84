package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxGateIDLength bounds catalog keys. Gate ids end up in SVG ids, cache keys
// and Mongo documents.
const maxGateIDLength = 64

// MaxSpan bounds a component width or height in cells.
const MaxSpan = 512

// MaxGridCells bounds both the area of an exploded grid and the total number
// of cells its components claim. Occupancy costs one map write per claim.
const MaxGridCells = 1 << 18

// ValidateGateID validates a gate-type identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - No quotes or angle brackets (ids are embedded in SVG attributes)
//   - Maximum length of 64 characters
func ValidateGateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "gate id cannot be empty")
	}

	if len(id) > maxGateIDLength {
		return New(ErrCodeInvalidInput, "gate id too long (max %d characters)", maxGateIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "gate id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, `"'<>&`) {
		return New(ErrCodeInvalidInput, "gate id %q contains markup characters", id)
	}

	return nil
}

// ValidateSpan validates a component width or height.
// Zero means "absent" and is accepted; the layout treats it as 1.
func ValidateSpan(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidComponent, "%s must be >= 1 (got %d)", name, v)
	}
	if v > MaxSpan {
		return New(ErrCodeGridTooLarge, "%s must be <= %d (got %d)", name, MaxSpan, v)
	}
	return nil
}

// ValidateExtent checks that n cells starting at origin end on a
// representable coordinate. n must be >= 1.
func ValidateExtent(axis string, origin, n int) error {
	if origin > math.MaxInt-(n-1) {
		return New(ErrCodeInvalidComponent, "%s %d with span %d overflows the grid", axis, origin, n)
	}
	return nil
}

// ValidateFilename validates a catalog or operator filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidInput, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidInput, "filename cannot be a hidden file")
	}

	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
