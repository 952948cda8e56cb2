package dalvik

import (
	"fmt"
	"strings"
)

// String renders the instruction in smali-like syntax with raw pool
// indices, e.g. "invoke-static {v0, v3}, method@4455". Literals print as
// two's-complement hex at the width of their encoding, branch offsets as
// signed code-unit deltas.
func (in Inst) String() string {
	mn := in.Op.String()
	switch opFormats[in.Op] {
	case fmt10x:
		return mn
	case fmt12x, fmt22x, fmt32x:
		return fmt.Sprintf("%s v%d, v%d", mn, in.A, in.B)
	case fmt11n:
		return fmt.Sprintf("%s v%d, %s", mn, in.A, hexLit(in.Lit, 8))
	case fmt11x:
		return fmt.Sprintf("%s v%d", mn, in.A)
	case fmt10t, fmt20t, fmt30t:
		return fmt.Sprintf("%s %+d", mn, in.Off)
	case fmt21t:
		return fmt.Sprintf("%s v%d, %+d", mn, in.A, in.Off)
	case fmt21s:
		return fmt.Sprintf("%s v%d, %s", mn, in.A, hexLit(in.Lit, 16))
	case fmt21h:
		if in.Op == OpConstHigh16 {
			// the carried value is the upper half of a 32-bit word
			return fmt.Sprintf("%s v%d, %s0000", mn, in.A, hexLit(in.Lit, 16))
		}
		return fmt.Sprintf("%s v%d, %#x", mn, in.A, uint16(in.Lit))
	case fmt21c:
		return fmt.Sprintf("%s v%d, %s@%x", mn, in.A, in.Op.poolKind(), in.Idx)
	case fmt23x:
		return fmt.Sprintf("%s v%d, v%d, v%d", mn, in.A, in.B, in.C)
	case fmt22b:
		return fmt.Sprintf("%s v%d, v%d, %s", mn, in.A, in.B, hexLit(in.Lit, 8))
	case fmt22t:
		// historical smali quirk: no comma before the offset here
		return fmt.Sprintf("%s v%d, v%d %+d", mn, in.A, in.B, in.Off)
	case fmt22s:
		return fmt.Sprintf("%s v%d, v%d, %s", mn, in.A, in.B, hexLit(in.Lit, 16))
	case fmt22c:
		return fmt.Sprintf("%s v%d, v%d, %s@%x", mn, in.A, in.B, in.Op.poolKind(), in.Idx)
	case fmt31i:
		return fmt.Sprintf("%s v%d, %#x", mn, in.A, uint32(in.Lit))
	case fmt31t:
		return fmt.Sprintf("%s v%d, %+d", mn, in.A, in.Off)
	case fmt31c:
		return fmt.Sprintf("%s v%d, string@%x", mn, in.A, in.Idx)
	case fmt35c, fmt3rc:
		return fmt.Sprintf("%s {%s}, %s@%x", mn, regList(in.Args), in.Op.poolKind(), in.Idx)
	case fmt51l:
		return fmt.Sprintf("%s v%d, %#x", mn, in.A, uint64(in.Lit))
	}
	return mn
}

// poolKind names the constant-pool section an instruction's Idx refers
// to, derived from the opcode range.
func (op Opcode) poolKind() string {
	switch {
	case op == OpConstString || op == OpConstStringJumbo:
		return "string"
	case op >= OpIget && op <= OpSputShort:
		return "field"
	case op >= OpInvokeVirtual && op <= OpInvokeInterfaceRange:
		return "method"
	}
	return "type"
}

func regList(regs []Reg) string {
	var b strings.Builder
	for i, r := range regs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "v%d", r)
	}
	return b.String()
}

// hexLit formats a literal as two's-complement hex truncated to the
// encoded width, matching how disassemblers show small signed constants
// (-1 in a byte field is 0xff, not -0x1).
func hexLit(v int64, bits int) string {
	switch bits {
	case 8:
		return fmt.Sprintf("%#x", uint8(v))
	case 16:
		return fmt.Sprintf("%#x", uint16(v))
	}
	return fmt.Sprintf("%#x", uint64(v))
}

// Symbols resolves constant-pool indices to names. Implementations
// normally sit on top of parsed dex metadata.
type Symbols interface {
	// Method returns the defining class, method name, parameter
	// descriptor and return descriptor.
	Method(idx uint32) (class, name, params, ret string)
	// Field returns the defining class, field name and type descriptor.
	Field(idx uint32) (class, name, typ string)
	// StringData returns the contents of the string pool entry.
	StringData(idx uint32) string
	// TypeName returns the descriptor of the type pool entry.
	TypeName(idx uint32) string
}

// Render formats the instruction like String but with pool indices
// resolved through sym: strings are quoted, types spelled out, fields
// as Class->name:type and methods as Class->name(params)ret.
func Render(sym Symbols, in Inst) string {
	mn := in.Op.String()
	switch {
	case in.Op == OpConstString || in.Op == OpConstStringJumbo:
		return fmt.Sprintf("%s v%d, %q", mn, in.A, sym.StringData(in.Idx))
	case in.Op == OpConstClass || in.Op == OpCheckCast || in.Op == OpNewInstance:
		return fmt.Sprintf("%s v%d, %s", mn, in.A, sym.TypeName(in.Idx))
	case in.Op == OpInstanceOf || in.Op == OpNewArray:
		return fmt.Sprintf("%s v%d, v%d, %s", mn, in.A, in.B, sym.TypeName(in.Idx))
	case in.Op == OpFilledNewArray || in.Op == OpFilledNewArrayRange:
		return fmt.Sprintf("%s {%s}, %s", mn, regList(in.Args), sym.TypeName(in.Idx))
	case in.Op >= OpIget && in.Op <= OpIputShort:
		class, name, typ := sym.Field(in.Idx)
		return fmt.Sprintf("%s v%d, v%d, %s->%s:%s", mn, in.A, in.B, class, name, typ)
	case in.Op >= OpSget && in.Op <= OpSputShort:
		class, name, typ := sym.Field(in.Idx)
		return fmt.Sprintf("%s v%d, %s->%s:%s", mn, in.A, class, name, typ)
	case in.Op >= OpInvokeVirtual && in.Op <= OpInvokeInterfaceRange:
		class, name, params, ret := sym.Method(in.Idx)
		return fmt.Sprintf("%s {%s}, %s->%s(%s)%s", mn, regList(in.Args), class, name, params, ret)
	}
	return in.String()
}
