package sink

import (
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles/handdrawn"
)

// StyleByName returns the named style. The seed only affects handdrawn.
func StyleByName(name string, seed uint64) (styles.Style, error) {
	if err := styles.ValidateName(name); err != nil {
		return nil, err
	}
	if name == styles.StyleHanddrawn {
		return handdrawn.New(seed), nil
	}
	return styles.Simple{}, nil
}
