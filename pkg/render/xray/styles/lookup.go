package styles

import (
	"github.com/matzehuels/gatexray/pkg/errors"
)

// Style names.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Names lists the selectable style names.
var Names = []string{StyleSimple, StyleHanddrawn}

// ValidateName rejects unknown style names. Constructing the hand-drawn
// style lives in its own package to keep this one dependency-free.
func ValidateName(name string) error {
	for _, n := range Names {
		if n == name {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want simple or handdrawn)", name)
}
