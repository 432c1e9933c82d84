package circuit

// builtin uses IEC 60617 style glyphs.
var builtin = MustCatalog(
	GateType{ID: "AND", Title: "AND", Fill: "#60a5fa", Icon: "&"},
	GateType{ID: "OR", Title: "OR", Fill: "#34d399", Icon: "≥1"},
	GateType{ID: "NOT", Title: "NOT", Fill: "#f87171", Icon: "1"},
	GateType{ID: "NAND", Title: "NAND", Fill: "#818cf8", Icon: "&̅"},
	GateType{ID: "NOR", Title: "NOR", Fill: "#2dd4bf", Icon: "≥1̅"},
	GateType{ID: "XOR", Title: "XOR", Fill: "#fbbf24", Icon: "=1"},
	GateType{ID: "XNOR", Title: "XNOR", Fill: "#f59e0b", Icon: "=1̅"},
	GateType{ID: "BUF", Title: "Buffer", Fill: "lightblue", Icon: "1"},
	GateType{ID: "MUX", Title: "Multiplexer", Fill: "#c084fc", Icon: "MUX"},
	GateType{ID: "DFF", Title: "D flip-flop", Fill: "#fb7185", Icon: "D"},
)

// Builtin returns the default gate catalog.
func Builtin() *Catalog {
	return builtin
}
