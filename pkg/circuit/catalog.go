package circuit

import (
	"slices"

	"github.com/matzehuels/gatexray/pkg/errors"
)

// GateType is a catalog entry: the visual attributes of one gate kind.
// Icon is either glyph text or an SVG fragment starting with '<'.
type GateType struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Title string `json:"title,omitempty" toml:"title" yaml:"title"`
	Fill  string `json:"fill" toml:"fill" yaml:"fill"`
	Icon  string `json:"icon,omitempty" toml:"icon" yaml:"icon"`
}

// IconIsMarkup reports whether Icon should be embedded as raw SVG.
func (g GateType) IconIsMarkup() bool {
	return len(g.Icon) > 0 && g.Icon[0] == '<'
}

// Catalog is an immutable gate-type lookup keyed by id.
// The zero value is an empty catalog.
type Catalog struct {
	byID map[string]GateType
	ids  []string
}

// NewCatalog builds a catalog from entries. Fills are normalized to hex;
// duplicate ids and invalid colors are rejected.
func NewCatalog(entries ...GateType) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]GateType, len(entries))}
	for _, e := range entries {
		if err := errors.ValidateGateID(e.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "catalog entry")
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate gate id %q", e.ID)
		}
		if e.Fill == "" {
			e.Fill = DefaultFill
		}
		fill, err := NormalizeColor(e.Fill)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "gate %q", e.ID)
		}
		e.Fill = fill
		if e.Title == "" {
			e.Title = e.ID
		}
		c.byID[e.ID] = e
		c.ids = append(c.ids, e.ID)
	}
	slices.Sort(c.ids)
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for
// package-level tables.
func MustCatalog(entries ...GateType) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry for id and whether it exists.
func (c *Catalog) Lookup(id string) (GateType, bool) {
	if c == nil {
		return GateType{}, false
	}
	g, ok := c.byID[id]
	return g, ok
}

// IDs returns all gate ids in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ids)
}

// Entries returns all entries sorted by id.
func (c *Catalog) Entries() []GateType {
	if c == nil {
		return nil
	}
	out := make([]GateType, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.byID[id]
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Missing returns the gate ids referenced by comps that the catalog does not
// know, in first-seen order without duplicates.
func (c *Catalog) Missing(comps []Component) []string {
	var out []string
	seen := make(map[string]bool)
	for _, comp := range comps {
		if _, ok := c.Lookup(comp.GateID); ok || seen[comp.GateID] {
			continue
		}
		seen[comp.GateID] = true
		out = append(out, comp.GateID)
	}
	return out
}
