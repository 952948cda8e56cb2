package dalvik

// format is one of the standard Dalvik operand-packing layouts. The name
// encodes length in code units, operand count, and operand flavor, e.g.
// fmt21c is 2 units, 1 register, 1 constant-pool index.
type format uint8

const (
	fmtNone format = iota // unmapped opcode

	fmt10x // op
	fmt12x // B|A|op
	fmt11n // B|A|op, B is a signed 4-bit literal
	fmt11x // AA|op
	fmt10t // AA|op, AA is a signed 8-bit branch offset
	fmt20t // 00|op AAAA, signed 16-bit branch offset
	fmt22x // AA|op BBBB
	fmt21t // AA|op BBBB, BBBB is a signed 16-bit branch offset
	fmt21s // AA|op BBBB, BBBB is a signed 16-bit literal
	fmt21h // AA|op BBBB, BBBB is the high 16 bits of a 32/64-bit literal
	fmt21c // AA|op BBBB, BBBB is a constant-pool index
	fmt23x // AA|op CC|BB
	fmt22b // AA|op CC|BB, CC is a signed 8-bit literal
	fmt22t // B|A|op CCCC, CCCC is a signed 16-bit branch offset
	fmt22s // B|A|op CCCC, CCCC is a signed 16-bit literal
	fmt22c // B|A|op CCCC, CCCC is a constant-pool index
	fmt30t // 00|op AAAAlo AAAAhi, signed 32-bit branch offset
	fmt32x // 00|op AAAA BBBB
	fmt31i // AA|op BBBBlo BBBBhi, 32-bit literal
	fmt31t // AA|op BBBBlo BBBBhi, signed 32-bit branch offset
	fmt31c // AA|op BBBBlo BBBBhi, 32-bit constant-pool index
	fmt35c // A|G|op BBBB F|E|D|C, up to 5 packed register nibbles + pool index
	fmt3rc // AA|op BBBB CCCC, register range + pool index
	fmt51l // AA|op + 4 units, 64-bit literal
)

// formatUnits maps a format to its encoded length in 16-bit code units.
var formatUnits = [...]int{
	fmtNone: 0,
	fmt10x:  1,
	fmt12x:  1,
	fmt11n:  1,
	fmt11x:  1,
	fmt10t:  1,
	fmt20t:  2,
	fmt22x:  2,
	fmt21t:  2,
	fmt21s:  2,
	fmt21h:  2,
	fmt21c:  2,
	fmt23x:  2,
	fmt22b:  2,
	fmt22t:  2,
	fmt22s:  2,
	fmt22c:  2,
	fmt30t:  3,
	fmt32x:  3,
	fmt31i:  3,
	fmt31t:  3,
	fmt31c:  3,
	fmt35c:  3,
	fmt3rc:  3,
	fmt51l:  5,
}

// opFormats is the total opcode-to-format mapping. Entries left at fmtNone
// are the unused gaps in the opcode map (0x3e-0x43, 0x73, 0x79-0x7a,
// 0xe3-0xff); decoding them is an encoding error.
var opFormats = [256]format{
	OpNop:              fmt10x,
	OpMove:             fmt12x,
	OpMoveFrom16:       fmt22x,
	OpMove16:           fmt32x,
	OpMoveWide:         fmt12x,
	OpMoveWideFrom16:   fmt22x,
	OpMoveWide16:       fmt32x,
	OpMoveObject:       fmt12x,
	OpMoveObjectFrom16: fmt22x,
	OpMoveObject16:     fmt32x,
	OpMoveResult:       fmt11x,
	OpMoveResultWide:   fmt11x,
	OpMoveResultObject: fmt11x,
	OpMoveException:    fmt11x,

	OpReturnVoid:   fmt10x,
	OpReturn:       fmt11x,
	OpReturnWide:   fmt11x,
	OpReturnObject: fmt11x,

	OpConst4:           fmt11n,
	OpConst16:          fmt21s,
	OpConst:            fmt31i,
	OpConstHigh16:      fmt21h,
	OpConstWide16:      fmt21s,
	OpConstWide32:      fmt31i,
	OpConstWide:        fmt51l,
	OpConstWideHigh16:  fmt21h,
	OpConstString:      fmt21c,
	OpConstStringJumbo: fmt31c,
	OpConstClass:       fmt21c,

	OpMonitorEnter:        fmt11x,
	OpMonitorExit:         fmt11x,
	OpCheckCast:           fmt21c,
	OpInstanceOf:          fmt22c,
	OpArrayLength:         fmt12x,
	OpNewInstance:         fmt21c,
	OpNewArray:            fmt22c,
	OpFilledNewArray:      fmt35c,
	OpFilledNewArrayRange: fmt3rc,
	OpFillArrayData:       fmt31t,
	OpThrow:               fmt11x,

	OpGoto:         fmt10t,
	OpGoto16:       fmt20t,
	OpGoto32:       fmt30t,
	OpPackedSwitch: fmt31t,
	OpSparseSwitch: fmt31t,

	OpCmplFloat:  fmt23x,
	OpCmpgFloat:  fmt23x,
	OpCmplDouble: fmt23x,
	OpCmpgDouble: fmt23x,
	OpCmpLong:    fmt23x,

	OpIfEq:  fmt22t,
	OpIfNe:  fmt22t,
	OpIfLt:  fmt22t,
	OpIfGe:  fmt22t,
	OpIfGt:  fmt22t,
	OpIfLe:  fmt22t,
	OpIfEqz: fmt21t,
	OpIfNez: fmt21t,
	OpIfLtz: fmt21t,
	OpIfGez: fmt21t,
	OpIfGtz: fmt21t,
	OpIfLez: fmt21t,

	OpAget:        fmt23x,
	OpAgetWide:    fmt23x,
	OpAgetObject:  fmt23x,
	OpAgetBoolean: fmt23x,
	OpAgetByte:    fmt23x,
	OpAgetChar:    fmt23x,
	OpAgetShort:   fmt23x,
	OpAput:        fmt23x,
	OpAputWide:    fmt23x,
	OpAputObject:  fmt23x,
	OpAputBoolean: fmt23x,
	OpAputByte:    fmt23x,
	OpAputChar:    fmt23x,
	OpAputShort:   fmt23x,

	OpIget:        fmt22c,
	OpIgetWide:    fmt22c,
	OpIgetObject:  fmt22c,
	OpIgetBoolean: fmt22c,
	OpIgetByte:    fmt22c,
	OpIgetChar:    fmt22c,
	OpIgetShort:   fmt22c,
	OpIput:        fmt22c,
	OpIputWide:    fmt22c,
	OpIputObject:  fmt22c,
	OpIputBoolean: fmt22c,
	OpIputByte:    fmt22c,
	OpIputChar:    fmt22c,
	OpIputShort:   fmt22c,

	OpSget:        fmt21c,
	OpSgetWide:    fmt21c,
	OpSgetObject:  fmt21c,
	OpSgetBoolean: fmt21c,
	OpSgetByte:    fmt21c,
	OpSgetChar:    fmt21c,
	OpSgetShort:   fmt21c,
	OpSput:        fmt21c,
	OpSputWide:    fmt21c,
	OpSputObject:  fmt21c,
	OpSputBoolean: fmt21c,
	OpSputByte:    fmt21c,
	OpSputChar:    fmt21c,
	OpSputShort:   fmt21c,

	OpInvokeVirtual:        fmt35c,
	OpInvokeSuper:          fmt35c,
	OpInvokeDirect:         fmt35c,
	OpInvokeStatic:         fmt35c,
	OpInvokeInterface:      fmt35c,
	OpInvokeVirtualRange:   fmt3rc,
	OpInvokeSuperRange:     fmt3rc,
	OpInvokeDirectRange:    fmt3rc,
	OpInvokeStaticRange:    fmt3rc,
	OpInvokeInterfaceRange: fmt3rc,

	OpNegInt:        fmt12x,
	OpNotInt:        fmt12x,
	OpNegLong:       fmt12x,
	OpNotLong:       fmt12x,
	OpNegFloat:      fmt12x,
	OpNegDouble:     fmt12x,
	OpIntToLong:     fmt12x,
	OpIntToFloat:    fmt12x,
	OpIntToDouble:   fmt12x,
	OpLongToInt:     fmt12x,
	OpLongToFloat:   fmt12x,
	OpLongToDouble:  fmt12x,
	OpFloatToInt:    fmt12x,
	OpFloatToLong:   fmt12x,
	OpFloatToDouble: fmt12x,
	OpDoubleToInt:   fmt12x,
	OpDoubleToLong:  fmt12x,
	OpDoubleToFloat: fmt12x,
	OpIntToByte:     fmt12x,
	OpIntToChar:     fmt12x,
	OpIntToShort:    fmt12x,

	OpAddInt:    fmt23x,
	OpSubInt:    fmt23x,
	OpMulInt:    fmt23x,
	OpDivInt:    fmt23x,
	OpRemInt:    fmt23x,
	OpAndInt:    fmt23x,
	OpOrInt:     fmt23x,
	OpXorInt:    fmt23x,
	OpShlInt:    fmt23x,
	OpShrInt:    fmt23x,
	OpUshrInt:   fmt23x,
	OpAddLong:   fmt23x,
	OpSubLong:   fmt23x,
	OpMulLong:   fmt23x,
	OpDivLong:   fmt23x,
	OpRemLong:   fmt23x,
	OpAndLong:   fmt23x,
	OpOrLong:    fmt23x,
	OpXorLong:   fmt23x,
	OpShlLong:   fmt23x,
	OpShrLong:   fmt23x,
	OpUshrLong:  fmt23x,
	OpAddFloat:  fmt23x,
	OpSubFloat:  fmt23x,
	OpMulFloat:  fmt23x,
	OpDivFloat:  fmt23x,
	OpRemFloat:  fmt23x,
	OpAddDouble: fmt23x,
	OpSubDouble: fmt23x,
	OpMulDouble: fmt23x,
	OpDivDouble: fmt23x,
	OpRemDouble: fmt23x,

	OpAddInt2Addr:    fmt12x,
	OpSubInt2Addr:    fmt12x,
	OpMulInt2Addr:    fmt12x,
	OpDivInt2Addr:    fmt12x,
	OpRemInt2Addr:    fmt12x,
	OpAndInt2Addr:    fmt12x,
	OpOrInt2Addr:     fmt12x,
	OpXorInt2Addr:    fmt12x,
	OpShlInt2Addr:    fmt12x,
	OpShrInt2Addr:    fmt12x,
	OpUshrInt2Addr:   fmt12x,
	OpAddLong2Addr:   fmt12x,
	OpSubLong2Addr:   fmt12x,
	OpMulLong2Addr:   fmt12x,
	OpDivLong2Addr:   fmt12x,
	OpRemLong2Addr:   fmt12x,
	OpAndLong2Addr:   fmt12x,
	OpOrLong2Addr:    fmt12x,
	OpXorLong2Addr:   fmt12x,
	OpShlLong2Addr:   fmt12x,
	OpShrLong2Addr:   fmt12x,
	OpUshrLong2Addr:  fmt12x,
	OpAddFloat2Addr:  fmt12x,
	OpSubFloat2Addr:  fmt12x,
	OpMulFloat2Addr:  fmt12x,
	OpDivFloat2Addr:  fmt12x,
	OpRemFloat2Addr:  fmt12x,
	OpAddDouble2Addr: fmt12x,
	OpSubDouble2Addr: fmt12x,
	OpMulDouble2Addr: fmt12x,
	OpDivDouble2Addr: fmt12x,
	OpRemDouble2Addr: fmt12x,

	OpAddIntLit16:  fmt22s,
	OpRsubIntLit16: fmt22s,
	OpMulIntLit16:  fmt22s,
	OpDivIntLit16:  fmt22s,
	OpRemIntLit16:  fmt22s,
	OpAndIntLit16:  fmt22s,
	OpOrIntLit16:   fmt22s,
	OpXorIntLit16:  fmt22s,
	OpAddIntLit8:   fmt22b,
	OpRsubIntLit8:  fmt22b,
	OpMulIntLit8:   fmt22b,
	OpDivIntLit8:   fmt22b,
	OpRemIntLit8:   fmt22b,
	OpAndIntLit8:   fmt22b,
	OpOrIntLit8:    fmt22b,
	OpXorIntLit8:   fmt22b,
	OpShlIntLit8:   fmt22b,
	OpShrIntLit8:   fmt22b,
	OpUshrIntLit8:  fmt22b,
}
