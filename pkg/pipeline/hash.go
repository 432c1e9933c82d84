package pipeline

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/gatexray/pkg/cache"
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
)

type hashInput struct {
	Operator circuit.Operator   `json:"operator"`
	Gates    []circuit.GateType `json:"gates"`
	Unknown  []string           `json:"unknown,omitempty"`
}

// OperatorHash returns a content hash of op and of the catalog entries its
// components reference. The storage id does not take part.
func OperatorHash(op circuit.Operator, cat grid.Catalog) (string, error) {
	op.ID = ""
	in := hashInput{Operator: op}

	ids := make([]string, 0, len(op.Components))
	for _, c := range op.Components {
		ids = append(ids, c.GateID)
	}
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		if cat == nil {
			in.Unknown = append(in.Unknown, id)
			continue
		}
		if g, ok := cat.Lookup(id); ok {
			in.Gates = append(in.Gates, g)
		} else {
			in.Unknown = append(in.Unknown, id)
		}
	}

	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
