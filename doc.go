// Package plbin implements the binary container format of compiled program
// assemblies: a string interner, a file envelope, a codec library and the
// assembly data model, plus a generator that writes codecs for annotated Go
// types.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	plbin/
//	├── errors/          Structured error types with phase, kind and field path
//	├── binfile/         File envelope, string interner and the codec library
//	├── ref/             Type and method references, their text syntax and codecs
//	├── attrs/           Visibility and implementation flag sets
//	├── instruction/     Bytecode instructions and a disassembler
//	├── assembly/        Assembly model: classes, structs, methods, fields
//	├── bingen/          Codec generator driven by //bingen: directives
//	├── export/          CBOR and msgpack documents for other tooling
//	└── cmd/
//	    ├── bingen/      go:generate entry point for bingen
//	    └── plb/         dump, strings, verify, export and inspect commands
//
// # File Layout
//
// An assembly file is an optional two-byte magic header, a little-endian u64
// interner length, the interner block (NUL-separated strings padded with NUL
// to a multiple of 8 bytes) and the payload. Strings in the payload are u64
// positions into the interner; position 0 is always the empty string.
//
// # Quick Start
//
// Write and read an assembly:
//
//	a := &assembly.Assembly{Name: "Hello"}
//	a.Add(assembly.NewClass("Hello.Program"))
//
//	if err := assembly.WriteFile("hello.plb", a, assembly.WithMagic()); err != nil {
//	    log.Fatal(err)
//	}
//
//	a, err := assembly.ReadFile("hello.plb", assembly.WithMagic())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Generated Codecs
//
// Records, enums, flag sets and tagged unions get their EncodeBinary and
// DecodeBinary methods from bingen:
//
//	//go:generate go run github.com/wippyai/plbin/cmd/bingen -dir .
//
// Each package checks in the generated <pkg>_bin.go file. See package bingen
// for the directive grammar.
//
// # Errors
//
// Every failure is an *errors.Error. Decoding failures carry the field path
// that was being read, for example "TypeDefs.Hello.Program.Class.Methods.Main().RetType".
//
// # Thread Safety
//
// A binfile.File is a single-pass cursor and must not be shared between
// goroutines. Independent files may be encoded and decoded concurrently.
package plbin
