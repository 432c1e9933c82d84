// Package circuit defines the data model shared by every gatexray stage.
//
// # Components
//
// A [Component] is one placed sub-gate of a composite operator: a reference to
// a gate type plus an integer grid placement. Coordinates may be negative and
// need not be contiguous. Width and height default to one cell when absent:
//
//	c := circuit.Component{GateID: "AND", X: -1, Y: 2}
//	w, h := c.Size() // 1, 1
//
// # Operators
//
// An [Operator] is the gate being displayed. Custom operators carry the
// components their exploded view decomposes into; plain operators only have
// a symbol.
//
// # Catalog
//
// A [Catalog] is the immutable gate-type lookup keyed by id. It is built once
// and only read afterwards, so one value may be shared by concurrent renders:
//
//	cat := circuit.Builtin()
//	if gt, ok := cat.Lookup("XOR"); ok {
//	    fmt.Println(gt.Fill, gt.Icon)
//	}
//
// Catalogs can be loaded from TOML or YAML files with [LoadCatalog].
//
// # Colors
//
// Fill colors accept CSS color names or hex notation. [NormalizeColor]
// resolves both to lowercase "#rrggbb".
package circuit
