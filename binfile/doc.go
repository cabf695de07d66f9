// Package binfile implements the binary envelope and the generic codecs
// used to serialize assemblies.
//
// # File Layout
//
// A File is a deduplicated string table followed by a raw payload:
//
//	┌───────────┬──────────────────┬──────────────────┬───────────────┐
//	│ magic (2) │ interner len u64 │ interner block   │ payload ...   │
//	│ optional  │ little-endian    │ NUL-joined, pad8 │ to EOF        │
//	└───────────┴──────────────────┴──────────────────┴───────────────┘
//
// Strings never appear inline in the payload. Every string field is
// written as its u64 position in the interner; position 0 is "".
//
// # Wire Forms
//
//	Kind            Encoding
//	──────────────────────────────────────────────────────────
//	intN/uintN      N/8 bytes, little-endian
//	bool            1 byte, 0 or 1
//	string          u64 interner position
//	*T              u8 tag (0 absent, 1 present) + T
//	[]T, [N]T       u64 count + elements
//	map[K]V         u64 count + pairs, ascending key order
//	OrderedMap      u64 count + pairs, insertion order
//	flags           underlying unsigned integer
//	enum            underlying integer discriminant
//	union           kind discriminant + variant fields
//	reference       string holding the formatted reference
//
// # Codecs
//
// Codecs are plain functions over *File:
//
//	EncodeFunc[T] = func(*File, T) error
//	DecodeFunc[T] = func(*File) (T, error)
//
// Containers take element codecs as arguments, and the Seq/Option/Map
// encoder constructors lift them for nesting:
//
//	binfile.EncodeSeq(f, args, binfile.EncodeValue[ref.TypeRef])
//	binfile.DecodeSeq(f, binfile.OptionDecoder(binfile.DecodeString))
//
// User types plug in by implementing Encoder and Decoder on a pointer
// receiver; the bingen command writes these methods for records, enums,
// flag sets and tagged unions.
//
// # Errors
//
// Decode failures are *errors.Error values. Truncated input yields
// KindShortRead, never a panic, and container codecs prepend the element
// index or map key to the error path.
package binfile
