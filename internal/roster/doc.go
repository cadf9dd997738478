// Package roster provides the record sources cardwall can render.
//
// Three sources exist:
//
//   - Seed: the embedded demo roster, used when no input is given.
//   - YAML files: a single file holding an ordered list of records.
//   - CUE directories: records authored as CUE structs, compiled via the
//     CUE Go API (never the CLI subprocess).
//
// All sources run model.Validate after loading; a roster with duplicate
// ids never reaches the renderer through this package.
//
// # YAML Format
//
//	name: demo
//	records:
//	  - id: 1
//	    name: Alice Johnson
//	    is_active: true
//	    age: 27
//	    skills: [Go, SQL]
//	    address: { street: 12 Rose Lane, city: Springfield, postal_code: 49007 }
//	    status: active
//	    score: 100
//	    birthdate: "1998-05-15"
//
// # CUE Format
//
//	package roster
//
//	person: alice: {
//		id:        1
//		name:      "Alice Johnson"
//		is_active: true
//		age:       27
//		skills: ["Go", "SQL"]
//		address: {street: "12 Rose Lane", city: "Springfield", postal_code: 49007}
//		status:    "active"
//		score:     100
//		birthdate: "1998-05-15"
//	}
//
// CUE rosters may span multiple files in one directory; records are
// ordered by id after the merge so display order is deterministic.
package roster
