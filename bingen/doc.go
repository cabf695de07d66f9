// Package bingen generates binary codecs for annotated Go types.
//
// Types opt in with a directive at the end of their doc comment:
//
//	// Visibility controls access.
//	//
//	//bingen:enum
//	type Visibility uint8
//
// Directives:
//
//	//bingen:record                 struct; fields in declaration order
//	//bingen:enum                   integer type; its constants are the variants
//	//bingen:flags                  unsigned type; its constants are the known bits
//	//bingen:union repr=uint16      interface; discriminant width (default uint8)
//	//bingen:case Name [GoType]     union variant, in discriminant order
//
// A union case names a struct type in the same package, defaulting to Name.
// Case types are generated as records and get a Kind method.
//
// Field types map to binfile codecs: fixed-width integers, bool and string
// use the primitive codecs; pointers are options; slices are sequences;
// arrays are fixed-length sequences; maps with string or integer keys are
// maps; binfile.OrderedMap keeps insertion order. Named types with
// EncodeBinary and DecodeBinary methods, and types declared with a
// directive, encode themselves. Interfaces with generated Encode<Name> and
// Decode<Name> functions encode as unions. Anything else is a generation
// error naming the type and field.
//
// The output is one <package>_bin.go file per package, normally produced by
//
//	//go:generate go run github.com/wippyai/plbin/cmd/bingen -dir .
package bingen
