package dalvik

// Reg is a virtual register index. Narrow 4-bit and 8-bit register fields
// are promoted to this width during decoding.
type Reg uint16

// Inst is a single decoded instruction. Which fields are meaningful is
// fully determined by Op's format: register operands fill A, B, C in
// mnemonic (left-to-right) order regardless of how the encoding packs
// them, literals land in Lit sign-extended to the format's width,
// constant-pool references in Idx, and branch displacements in Off.
//
// Instructions are immutable once produced by Decode.
type Inst struct {
	Op   Opcode
	A    Reg   // first register operand
	B    Reg   // second register operand
	C    Reg   // third register operand
	Lit  int64 // literal value, sign-extended where the format is signed
	Idx  uint32 // string/type/field/method pool index
	Off  int32 // branch offset in code units, relative to this instruction
	Args []Reg // argument registers for invoke-* and filled-new-array
}

// Units returns the instruction's encoded length in 16-bit code units.
// It always equals the number of units Decode consumed to produce it.
func (in Inst) Units() int {
	return formatUnits[opFormats[in.Op]]
}

// FlowKind classifies an instruction's effect on control flow.
type FlowKind uint8

const (
	// FlowFallThrough proceeds to the next instruction in address order.
	FlowFallThrough FlowKind = iota
	// FlowTerminate ends the method: return or throw. No successor.
	FlowTerminate
	// FlowGoTo jumps unconditionally by a relative offset.
	FlowGoTo
	// FlowBranch either jumps by a relative offset or falls through.
	FlowBranch
)

// Flow is the control-flow effect of one instruction. Off is the jump
// displacement in code units, valid for FlowGoTo and FlowBranch.
type Flow struct {
	Kind FlowKind
	Off  int32
}

// Flow classifies the instruction's control-flow effect.
func (in Inst) Flow() Flow {
	switch in.Op {
	case OpReturnVoid, OpReturn, OpReturnWide, OpReturnObject, OpThrow:
		return Flow{Kind: FlowTerminate}
	case OpGoto, OpGoto16, OpGoto32:
		return Flow{Kind: FlowGoTo, Off: in.Off}
	case OpIfEq, OpIfNe, OpIfLt, OpIfGe, OpIfGt, OpIfLe,
		OpIfEqz, OpIfNez, OpIfLtz, OpIfGez, OpIfGtz, OpIfLez:
		return Flow{Kind: FlowBranch, Off: in.Off}
	}
	return Flow{Kind: FlowFallThrough}
}
