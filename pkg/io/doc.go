// Package io reads and writes operator documents.
//
// # Format
//
// An operator is a JSON (or YAML) object:
//
//	{
//	  "title": "Half adder",
//	  "fill": "#fde68a",
//	  "height": 2,
//	  "custom": true,
//	  "symbol": "HA",
//	  "components": [
//	    {"gateId": "XOR", "x": 0, "y": 0},
//	    {"gateId": "AND", "x": 0, "y": 1, "w": 1, "h": 1}
//	  ]
//	}
//
// Component spans w and h may be omitted; they default to 1. Unknown
// fields are rejected so that typos such as "gateID" fail loudly instead
// of producing an empty gate id.
//
// # Import
//
// Use [ImportOperator] to read from a file path (the extension picks JSON or
// YAML) or [ReadOperator] to read JSON from any io.Reader. Both validate the
// result with [circuit.Operator.Validate].
//
// # Export
//
// Use [ExportOperator] or [WriteOperator]. Output is indented JSON and
// re-imports identically.
package io
