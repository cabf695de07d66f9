// Package instruction defines the register-based bytecode of a method body.
//
// Every opcode is a variant of the Instruction union. Field order is wire
// order: the generated codec writes the kind discriminant as a u64, then
// each field in declaration order.
package instruction

import (
	"strconv"

	"github.com/wippyai/plbin/ref"
)

//go:generate go run github.com/wippyai/plbin/cmd/bingen -dir .

// Register addresses a method-local register.
type Register uint8

func (r Register) String() string {
	return "r" + strconv.Itoa(int(r))
}

// Instruction is one bytecode operation.
//
//bingen:union repr=uint64
//bingen:case LoadTrue
//bingen:case LoadFalse
//bingen:case LoadU8
//bingen:case LoadU8Zero
//bingen:case LoadU8One
//bingen:case LoadU8Two
//bingen:case LoadU8Three
//bingen:case LoadU8Four
//bingen:case LoadU8Five
//bingen:case LoadU64
//bingen:case NewObject
//bingen:case InstanceCall
//bingen:case StaticCall
//bingen:case LoadArg
//bingen:case LoadAllArgsAsArray
//bingen:case LoadStatic
//bingen:case ReturnVal
//bingen:case SetField
type Instruction interface {
	Kind() InstructionKind
}

// LoadTrue stores true in RegisterAddr.
type LoadTrue struct {
	RegisterAddr Register
}

// LoadFalse stores false in RegisterAddr.
type LoadFalse struct {
	RegisterAddr Register
}

// LoadU8 stores an 8-bit constant.
type LoadU8 struct {
	RegisterAddr Register
	Val          uint8
}

// LoadU8Zero through LoadU8Five store small constants without an operand.
type LoadU8Zero struct {
	RegisterAddr Register
}

type LoadU8One struct {
	RegisterAddr Register
}

type LoadU8Two struct {
	RegisterAddr Register
}

type LoadU8Three struct {
	RegisterAddr Register
}

type LoadU8Four struct {
	RegisterAddr Register
}

type LoadU8Five struct {
	RegisterAddr Register
}

// LoadU64 stores a 64-bit constant.
type LoadU64 struct {
	RegisterAddr Register
	Val          uint64
}

// NewObject constructs Type through the constructor CtorName and stores
// the instance in RegisterAddr.
type NewObject struct {
	Type         ref.TypeRef
	CtorName     string
	Args         []Register
	RegisterAddr Register
}

// InstanceCall calls Method on the object in Val.
type InstanceCall struct {
	Val    Register
	Method ref.MethodRef
	Args   []Register
	RetAt  Register
}

// StaticCall calls a static Method of Type.
type StaticCall struct {
	Type   ref.TypeRef
	Method ref.MethodRef
	Args   []Register
	RetAt  Register
}

// LoadArg copies argument Arg into RegisterAddr.
type LoadArg struct {
	RegisterAddr Register
	Arg          uint8
}

// LoadAllArgsAsArray packs every argument into an array.
type LoadAllArgsAsArray struct {
	RegisterAddr Register
}

// LoadStatic reads the static field Name of Type.
type LoadStatic struct {
	RegisterAddr Register
	Type         ref.TypeRef
	Name         string
}

// ReturnVal returns the value in RegisterAddr.
type ReturnVal struct {
	RegisterAddr Register
}

// SetField stores RegisterAddr into the static field Field of the
// enclosing type.
type SetField struct {
	RegisterAddr Register
	Field        string
}
