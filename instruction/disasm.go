package instruction

import (
	"fmt"
	"strings"
)

// Disassemble renders one instruction as a line of assembly text.
func Disassemble(in Instruction) string {
	switch x := in.(type) {
	case *LoadTrue:
		return "load.true " + x.RegisterAddr.String()
	case *LoadFalse:
		return "load.false " + x.RegisterAddr.String()
	case *LoadU8:
		return fmt.Sprintf("load.u8 %s, %d", x.RegisterAddr, x.Val)
	case *LoadU8Zero:
		return fmt.Sprintf("load.u8.0 %s", x.RegisterAddr)
	case *LoadU8One:
		return fmt.Sprintf("load.u8.1 %s", x.RegisterAddr)
	case *LoadU8Two:
		return fmt.Sprintf("load.u8.2 %s", x.RegisterAddr)
	case *LoadU8Three:
		return fmt.Sprintf("load.u8.3 %s", x.RegisterAddr)
	case *LoadU8Four:
		return fmt.Sprintf("load.u8.4 %s", x.RegisterAddr)
	case *LoadU8Five:
		return fmt.Sprintf("load.u8.5 %s", x.RegisterAddr)
	case *LoadU64:
		return fmt.Sprintf("load.u64 %s, %d", x.RegisterAddr, x.Val)
	case *NewObject:
		return fmt.Sprintf("newobj %s = %s::%s [%s]", x.RegisterAddr, x.Type, x.CtorName, registers(x.Args))
	case *InstanceCall:
		return fmt.Sprintf("callvirt %s = %s.%s [%s]", x.RetAt, x.Val, x.Method, registers(x.Args))
	case *StaticCall:
		return fmt.Sprintf("call %s = %s::%s [%s]", x.RetAt, x.Type, x.Method, registers(x.Args))
	case *LoadArg:
		return fmt.Sprintf("load.arg %s, %d", x.RegisterAddr, x.Arg)
	case *LoadAllArgsAsArray:
		return "load.args " + x.RegisterAddr.String()
	case *LoadStatic:
		return fmt.Sprintf("load.static %s, %s::%s", x.RegisterAddr, x.Type, x.Name)
	case *ReturnVal:
		return "ret " + x.RegisterAddr.String()
	case *SetField:
		return fmt.Sprintf("store.static %s, %s", x.Field, x.RegisterAddr)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%T>", in)
	}
}

func registers(rs []Register) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
