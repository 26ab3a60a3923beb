// Package wasm holds the experimental binary emitter. It produces a fixed
// module exporting an "add" function over two i32 parameters and is
// independent of any parsed program; real code generation does not exist
// yet.
package wasm

const (
	sectionType     = 0x01
	sectionFunction = 0x03
	sectionExport   = 0x07
	sectionCode     = 0x0a
)

// Module returns the bytes of the fixed experimental module:
//
//	(module
//	  (func (param i32 i32) (result i32)
//	    local.get 0
//	    local.get 1
//	    i32.add)
//	  (export "add" (func 0)))
func Module() []byte {
	var b []byte
	b = append(b, 0x00, 0x61, 0x73, 0x6d) // magic
	b = append(b, 0x01, 0x00, 0x00, 0x00) // version

	// one function type: (i32, i32) -> i32
	b = appendSection(b, sectionType, []byte{0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f})

	// one function using type 0
	b = appendSection(b, sectionFunction, []byte{0x01, 0x00})

	// export "add" as function 0
	export := []byte{0x01, 0x03}
	export = append(export, []byte("add")...)
	export = append(export, 0x00, 0x00)
	b = appendSection(b, sectionExport, export)

	// local.get 0, local.get 1, i32.add, end
	b = appendSection(b, sectionCode, []byte{0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b})

	return b
}

func appendSection(b []byte, id byte, payload []byte) []byte {
	b = append(b, id, byte(len(payload)))
	return append(b, payload...)
}
