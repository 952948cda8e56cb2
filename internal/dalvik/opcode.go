// Package dalvik decodes Dalvik bytecode into instructions and lifts
// instruction streams into basic blocks.
//
// All addresses and offsets are counted in 16-bit code units, never bytes.
// The decoder and lifter are pure computations over an immutable buffer;
// callers may share a buffer between goroutines freely.
package dalvik

// Opcode is the low 8 bits of an instruction's first code unit.
type Opcode uint8

// Moves
const (
	OpNop              Opcode = 0x00
	OpMove             Opcode = 0x01
	OpMoveFrom16       Opcode = 0x02
	OpMove16           Opcode = 0x03
	OpMoveWide         Opcode = 0x04
	OpMoveWideFrom16   Opcode = 0x05
	OpMoveWide16       Opcode = 0x06
	OpMoveObject       Opcode = 0x07
	OpMoveObjectFrom16 Opcode = 0x08
	OpMoveObject16     Opcode = 0x09
	OpMoveResult       Opcode = 0x0a
	OpMoveResultWide   Opcode = 0x0b
	OpMoveResultObject Opcode = 0x0c
	OpMoveException    Opcode = 0x0d
)

// Returns
const (
	OpReturnVoid   Opcode = 0x0e
	OpReturn       Opcode = 0x0f
	OpReturnWide   Opcode = 0x10
	OpReturnObject Opcode = 0x11
)

// Constants
const (
	OpConst4           Opcode = 0x12
	OpConst16          Opcode = 0x13
	OpConst            Opcode = 0x14
	OpConstHigh16      Opcode = 0x15
	OpConstWide16      Opcode = 0x16
	OpConstWide32      Opcode = 0x17
	OpConstWide        Opcode = 0x18
	OpConstWideHigh16  Opcode = 0x19
	OpConstString      Opcode = 0x1a
	OpConstStringJumbo Opcode = 0x1b
	OpConstClass       Opcode = 0x1c
)

// Objects and arrays
const (
	OpMonitorEnter        Opcode = 0x1d
	OpMonitorExit         Opcode = 0x1e
	OpCheckCast           Opcode = 0x1f
	OpInstanceOf          Opcode = 0x20
	OpArrayLength         Opcode = 0x21
	OpNewInstance         Opcode = 0x22
	OpNewArray            Opcode = 0x23
	OpFilledNewArray      Opcode = 0x24
	OpFilledNewArrayRange Opcode = 0x25
	OpFillArrayData       Opcode = 0x26
	OpThrow               Opcode = 0x27
)

// Control flow
const (
	OpGoto         Opcode = 0x28
	OpGoto16       Opcode = 0x29
	OpGoto32       Opcode = 0x2a
	OpPackedSwitch Opcode = 0x2b
	OpSparseSwitch Opcode = 0x2c
)

// Comparisons
const (
	OpCmplFloat  Opcode = 0x2d
	OpCmpgFloat  Opcode = 0x2e
	OpCmplDouble Opcode = 0x2f
	OpCmpgDouble Opcode = 0x30
	OpCmpLong    Opcode = 0x31
)

// Conditional branches
const (
	OpIfEq  Opcode = 0x32
	OpIfNe  Opcode = 0x33
	OpIfLt  Opcode = 0x34
	OpIfGe  Opcode = 0x35
	OpIfGt  Opcode = 0x36
	OpIfLe  Opcode = 0x37
	OpIfEqz Opcode = 0x38
	OpIfNez Opcode = 0x39
	OpIfLtz Opcode = 0x3a
	OpIfGez Opcode = 0x3b
	OpIfGtz Opcode = 0x3c
	OpIfLez Opcode = 0x3d
)

// Array element access
const (
	OpAget        Opcode = 0x44
	OpAgetWide    Opcode = 0x45
	OpAgetObject  Opcode = 0x46
	OpAgetBoolean Opcode = 0x47
	OpAgetByte    Opcode = 0x48
	OpAgetChar    Opcode = 0x49
	OpAgetShort   Opcode = 0x4a
	OpAput        Opcode = 0x4b
	OpAputWide    Opcode = 0x4c
	OpAputObject  Opcode = 0x4d
	OpAputBoolean Opcode = 0x4e
	OpAputByte    Opcode = 0x4f
	OpAputChar    Opcode = 0x50
	OpAputShort   Opcode = 0x51
)

// Instance field access
const (
	OpIget        Opcode = 0x52
	OpIgetWide    Opcode = 0x53
	OpIgetObject  Opcode = 0x54
	OpIgetBoolean Opcode = 0x55
	OpIgetByte    Opcode = 0x56
	OpIgetChar    Opcode = 0x57
	OpIgetShort   Opcode = 0x58
	OpIput        Opcode = 0x59
	OpIputWide    Opcode = 0x5a
	OpIputObject  Opcode = 0x5b
	OpIputBoolean Opcode = 0x5c
	OpIputByte    Opcode = 0x5d
	OpIputChar    Opcode = 0x5e
	OpIputShort   Opcode = 0x5f
)

// Static field access
const (
	OpSget        Opcode = 0x60
	OpSgetWide    Opcode = 0x61
	OpSgetObject  Opcode = 0x62
	OpSgetBoolean Opcode = 0x63
	OpSgetByte    Opcode = 0x64
	OpSgetChar    Opcode = 0x65
	OpSgetShort   Opcode = 0x66
	OpSput        Opcode = 0x67
	OpSputWide    Opcode = 0x68
	OpSputObject  Opcode = 0x69
	OpSputBoolean Opcode = 0x6a
	OpSputByte    Opcode = 0x6b
	OpSputChar    Opcode = 0x6c
	OpSputShort   Opcode = 0x6d
)

// Method invocation
const (
	OpInvokeVirtual        Opcode = 0x6e
	OpInvokeSuper          Opcode = 0x6f
	OpInvokeDirect         Opcode = 0x70
	OpInvokeStatic         Opcode = 0x71
	OpInvokeInterface      Opcode = 0x72
	OpInvokeVirtualRange   Opcode = 0x74
	OpInvokeSuperRange     Opcode = 0x75
	OpInvokeDirectRange    Opcode = 0x76
	OpInvokeStaticRange    Opcode = 0x77
	OpInvokeInterfaceRange Opcode = 0x78
)

// Unary operations
const (
	OpNegInt        Opcode = 0x7b
	OpNotInt        Opcode = 0x7c
	OpNegLong       Opcode = 0x7d
	OpNotLong       Opcode = 0x7e
	OpNegFloat      Opcode = 0x7f
	OpNegDouble     Opcode = 0x80
	OpIntToLong     Opcode = 0x81
	OpIntToFloat    Opcode = 0x82
	OpIntToDouble   Opcode = 0x83
	OpLongToInt     Opcode = 0x84
	OpLongToFloat   Opcode = 0x85
	OpLongToDouble  Opcode = 0x86
	OpFloatToInt    Opcode = 0x87
	OpFloatToLong   Opcode = 0x88
	OpFloatToDouble Opcode = 0x89
	OpDoubleToInt   Opcode = 0x8a
	OpDoubleToLong  Opcode = 0x8b
	OpDoubleToFloat Opcode = 0x8c
	OpIntToByte     Opcode = 0x8d
	OpIntToChar     Opcode = 0x8e
	OpIntToShort    Opcode = 0x8f
)

// Three-register binary operations
const (
	OpAddInt    Opcode = 0x90
	OpSubInt    Opcode = 0x91
	OpMulInt    Opcode = 0x92
	OpDivInt    Opcode = 0x93
	OpRemInt    Opcode = 0x94
	OpAndInt    Opcode = 0x95
	OpOrInt     Opcode = 0x96
	OpXorInt    Opcode = 0x97
	OpShlInt    Opcode = 0x98
	OpShrInt    Opcode = 0x99
	OpUshrInt   Opcode = 0x9a
	OpAddLong   Opcode = 0x9b
	OpSubLong   Opcode = 0x9c
	OpMulLong   Opcode = 0x9d
	OpDivLong   Opcode = 0x9e
	OpRemLong   Opcode = 0x9f
	OpAndLong   Opcode = 0xa0
	OpOrLong    Opcode = 0xa1
	OpXorLong   Opcode = 0xa2
	OpShlLong   Opcode = 0xa3
	OpShrLong   Opcode = 0xa4
	OpUshrLong  Opcode = 0xa5
	OpAddFloat  Opcode = 0xa6
	OpSubFloat  Opcode = 0xa7
	OpMulFloat  Opcode = 0xa8
	OpDivFloat  Opcode = 0xa9
	OpRemFloat  Opcode = 0xaa
	OpAddDouble Opcode = 0xab
	OpSubDouble Opcode = 0xac
	OpMulDouble Opcode = 0xad
	OpDivDouble Opcode = 0xae
	OpRemDouble Opcode = 0xaf
)

// Two-address binary operations
const (
	OpAddInt2Addr    Opcode = 0xb0
	OpSubInt2Addr    Opcode = 0xb1
	OpMulInt2Addr    Opcode = 0xb2
	OpDivInt2Addr    Opcode = 0xb3
	OpRemInt2Addr    Opcode = 0xb4
	OpAndInt2Addr    Opcode = 0xb5
	OpOrInt2Addr     Opcode = 0xb6
	OpXorInt2Addr    Opcode = 0xb7
	OpShlInt2Addr    Opcode = 0xb8
	OpShrInt2Addr    Opcode = 0xb9
	OpUshrInt2Addr   Opcode = 0xba
	OpAddLong2Addr   Opcode = 0xbb
	OpSubLong2Addr   Opcode = 0xbc
	OpMulLong2Addr   Opcode = 0xbd
	OpDivLong2Addr   Opcode = 0xbe
	OpRemLong2Addr   Opcode = 0xbf
	OpAndLong2Addr   Opcode = 0xc0
	OpOrLong2Addr    Opcode = 0xc1
	OpXorLong2Addr   Opcode = 0xc2
	OpShlLong2Addr   Opcode = 0xc3
	OpShrLong2Addr   Opcode = 0xc4
	OpUshrLong2Addr  Opcode = 0xc5
	OpAddFloat2Addr  Opcode = 0xc6
	OpSubFloat2Addr  Opcode = 0xc7
	OpMulFloat2Addr  Opcode = 0xc8
	OpDivFloat2Addr  Opcode = 0xc9
	OpRemFloat2Addr  Opcode = 0xca
	OpAddDouble2Addr Opcode = 0xcb
	OpSubDouble2Addr Opcode = 0xcc
	OpMulDouble2Addr Opcode = 0xcd
	OpDivDouble2Addr Opcode = 0xce
	OpRemDouble2Addr Opcode = 0xcf
)

// Literal binary operations
const (
	OpAddIntLit16  Opcode = 0xd0
	OpRsubIntLit16 Opcode = 0xd1
	OpMulIntLit16  Opcode = 0xd2
	OpDivIntLit16  Opcode = 0xd3
	OpRemIntLit16  Opcode = 0xd4
	OpAndIntLit16  Opcode = 0xd5
	OpOrIntLit16   Opcode = 0xd6
	OpXorIntLit16  Opcode = 0xd7
	OpAddIntLit8   Opcode = 0xd8
	OpRsubIntLit8  Opcode = 0xd9
	OpMulIntLit8   Opcode = 0xda
	OpDivIntLit8   Opcode = 0xdb
	OpRemIntLit8   Opcode = 0xdc
	OpAndIntLit8   Opcode = 0xdd
	OpOrIntLit8    Opcode = 0xde
	OpXorIntLit8   Opcode = 0xdf
	OpShlIntLit8   Opcode = 0xe0
	OpShrIntLit8   Opcode = 0xe1
	OpUshrIntLit8  Opcode = 0xe2
)

// String returns the instruction mnemonic, or a hex placeholder for
// opcode values with no mapped format.
func (op Opcode) String() string {
	if s := opNames[op]; s != "" {
		return s
	}
	return "unused-" + hexByte(uint8(op))
}

// Valid reports whether op maps to a decodable instruction format.
func (op Opcode) Valid() bool {
	return opFormats[op] != fmtNone
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'0', 'x', digits[b>>4], digits[b&0xf]})
}

var opNames = [256]string{
	OpNop:                  "nop",
	OpMove:                 "move",
	OpMoveFrom16:           "move/from16",
	OpMove16:               "move/16",
	OpMoveWide:             "move-wide",
	OpMoveWideFrom16:       "move-wide/from16",
	OpMoveWide16:           "move-wide/16",
	OpMoveObject:           "move-object",
	OpMoveObjectFrom16:     "move-object/from16",
	OpMoveObject16:         "move-object/16",
	OpMoveResult:           "move-result",
	OpMoveResultWide:       "move-result-wide",
	OpMoveResultObject:     "move-result-object",
	OpMoveException:        "move-exception",
	OpReturnVoid:           "return-void",
	OpReturn:               "return",
	OpReturnWide:           "return-wide",
	OpReturnObject:         "return-object",
	OpConst4:               "const/4",
	OpConst16:              "const/16",
	OpConst:                "const",
	OpConstHigh16:          "const/high16",
	OpConstWide16:          "const-wide/16",
	OpConstWide32:          "const-wide/32",
	OpConstWide:            "const-wide",
	OpConstWideHigh16:      "const-wide/high16",
	OpConstString:          "const-string",
	OpConstStringJumbo:     "const-string/jumbo",
	OpConstClass:           "const-class",
	OpMonitorEnter:         "monitor-enter",
	OpMonitorExit:          "monitor-exit",
	OpCheckCast:            "check-cast",
	OpInstanceOf:           "instance-of",
	OpArrayLength:          "array-length",
	OpNewInstance:          "new-instance",
	OpNewArray:             "new-array",
	OpFilledNewArray:       "filled-new-array",
	OpFilledNewArrayRange:  "filled-new-array/range",
	OpFillArrayData:        "fill-array-data",
	OpThrow:                "throw",
	OpGoto:                 "goto",
	OpGoto16:               "goto/16",
	OpGoto32:               "goto/32",
	OpPackedSwitch:         "packed-switch",
	OpSparseSwitch:         "sparse-switch",
	OpCmplFloat:            "cmpl-float",
	OpCmpgFloat:            "cmpg-float",
	OpCmplDouble:           "cmpl-double",
	OpCmpgDouble:           "cmpg-double",
	OpCmpLong:              "cmp-long",
	OpIfEq:                 "if-eq",
	OpIfNe:                 "if-ne",
	OpIfLt:                 "if-lt",
	OpIfGe:                 "if-ge",
	OpIfGt:                 "if-gt",
	OpIfLe:                 "if-le",
	OpIfEqz:                "if-eqz",
	OpIfNez:                "if-nez",
	OpIfLtz:                "if-ltz",
	OpIfGez:                "if-gez",
	OpIfGtz:                "if-gtz",
	OpIfLez:                "if-lez",
	OpAget:                 "aget",
	OpAgetWide:             "aget-wide",
	OpAgetObject:           "aget-object",
	OpAgetBoolean:          "aget-boolean",
	OpAgetByte:             "aget-byte",
	OpAgetChar:             "aget-char",
	OpAgetShort:            "aget-short",
	OpAput:                 "aput",
	OpAputWide:             "aput-wide",
	OpAputObject:           "aput-object",
	OpAputBoolean:          "aput-boolean",
	OpAputByte:             "aput-byte",
	OpAputChar:             "aput-char",
	OpAputShort:            "aput-short",
	OpIget:                 "iget",
	OpIgetWide:             "iget-wide",
	OpIgetObject:           "iget-object",
	OpIgetBoolean:          "iget-boolean",
	OpIgetByte:             "iget-byte",
	OpIgetChar:             "iget-char",
	OpIgetShort:            "iget-short",
	OpIput:                 "iput",
	OpIputWide:             "iput-wide",
	OpIputObject:           "iput-object",
	OpIputBoolean:          "iput-boolean",
	OpIputByte:             "iput-byte",
	OpIputChar:             "iput-char",
	OpIputShort:            "iput-short",
	OpSget:                 "sget",
	OpSgetWide:             "sget-wide",
	OpSgetObject:           "sget-object",
	OpSgetBoolean:          "sget-boolean",
	OpSgetByte:             "sget-byte",
	OpSgetChar:             "sget-char",
	OpSgetShort:            "sget-short",
	OpSput:                 "sput",
	OpSputWide:             "sput-wide",
	OpSputObject:           "sput-object",
	OpSputBoolean:          "sput-boolean",
	OpSputByte:             "sput-byte",
	OpSputChar:             "sput-char",
	OpSputShort:            "sput-short",
	OpInvokeVirtual:        "invoke-virtual",
	OpInvokeSuper:          "invoke-super",
	OpInvokeDirect:         "invoke-direct",
	OpInvokeStatic:         "invoke-static",
	OpInvokeInterface:      "invoke-interface",
	OpInvokeVirtualRange:   "invoke-virtual/range",
	OpInvokeSuperRange:     "invoke-super/range",
	OpInvokeDirectRange:    "invoke-direct/range",
	OpInvokeStaticRange:    "invoke-static/range",
	OpInvokeInterfaceRange: "invoke-interface/range",
	OpNegInt:               "neg-int",
	OpNotInt:               "not-int",
	OpNegLong:              "neg-long",
	OpNotLong:              "not-long",
	OpNegFloat:             "neg-float",
	OpNegDouble:            "neg-double",
	OpIntToLong:            "int-to-long",
	OpIntToFloat:           "int-to-float",
	OpIntToDouble:          "int-to-double",
	OpLongToInt:            "long-to-int",
	OpLongToFloat:          "long-to-float",
	OpLongToDouble:         "long-to-double",
	OpFloatToInt:           "float-to-int",
	OpFloatToLong:          "float-to-long",
	OpFloatToDouble:        "float-to-double",
	OpDoubleToInt:          "double-to-int",
	OpDoubleToLong:         "double-to-long",
	OpDoubleToFloat:        "double-to-float",
	OpIntToByte:            "int-to-byte",
	OpIntToChar:            "int-to-char",
	OpIntToShort:           "int-to-short",
	OpAddInt:               "add-int",
	OpSubInt:               "sub-int",
	OpMulInt:               "mul-int",
	OpDivInt:               "div-int",
	OpRemInt:               "rem-int",
	OpAndInt:               "and-int",
	OpOrInt:                "or-int",
	OpXorInt:               "xor-int",
	OpShlInt:               "shl-int",
	OpShrInt:               "shr-int",
	OpUshrInt:              "ushr-int",
	OpAddLong:              "add-long",
	OpSubLong:              "sub-long",
	OpMulLong:              "mul-long",
	OpDivLong:              "div-long",
	OpRemLong:              "rem-long",
	OpAndLong:              "and-long",
	OpOrLong:               "or-long",
	OpXorLong:              "xor-long",
	OpShlLong:              "shl-long",
	OpShrLong:              "shr-long",
	OpUshrLong:             "ushr-long",
	OpAddFloat:             "add-float",
	OpSubFloat:             "sub-float",
	OpMulFloat:             "mul-float",
	OpDivFloat:             "div-float",
	OpRemFloat:             "rem-float",
	OpAddDouble:            "add-double",
	OpSubDouble:            "sub-double",
	OpMulDouble:            "mul-double",
	OpDivDouble:            "div-double",
	OpRemDouble:            "rem-double",
	OpAddInt2Addr:          "add-int/2addr",
	OpSubInt2Addr:          "sub-int/2addr",
	OpMulInt2Addr:          "mul-int/2addr",
	OpDivInt2Addr:          "div-int/2addr",
	OpRemInt2Addr:          "rem-int/2addr",
	OpAndInt2Addr:          "and-int/2addr",
	OpOrInt2Addr:           "or-int/2addr",
	OpXorInt2Addr:          "xor-int/2addr",
	OpShlInt2Addr:          "shl-int/2addr",
	OpShrInt2Addr:          "shr-int/2addr",
	OpUshrInt2Addr:         "ushr-int/2addr",
	OpAddLong2Addr:         "add-long/2addr",
	OpSubLong2Addr:         "sub-long/2addr",
	OpMulLong2Addr:         "mul-long/2addr",
	OpDivLong2Addr:         "div-long/2addr",
	OpRemLong2Addr:         "rem-long/2addr",
	OpAndLong2Addr:         "and-long/2addr",
	OpOrLong2Addr:          "or-long/2addr",
	OpXorLong2Addr:         "xor-long/2addr",
	OpShlLong2Addr:         "shl-long/2addr",
	OpShrLong2Addr:         "shr-long/2addr",
	OpUshrLong2Addr:        "ushr-long/2addr",
	OpAddFloat2Addr:        "add-float/2addr",
	OpSubFloat2Addr:        "sub-float/2addr",
	OpMulFloat2Addr:        "mul-float/2addr",
	OpDivFloat2Addr:        "div-float/2addr",
	OpRemFloat2Addr:        "rem-float/2addr",
	OpAddDouble2Addr:       "add-double/2addr",
	OpSubDouble2Addr:       "sub-double/2addr",
	OpMulDouble2Addr:       "mul-double/2addr",
	OpDivDouble2Addr:       "div-double/2addr",
	OpRemDouble2Addr:       "rem-double/2addr",
	OpAddIntLit16:          "add-int/lit16",
	OpRsubIntLit16:         "rsub-int/lit16",
	OpMulIntLit16:          "mul-int/lit16",
	OpDivIntLit16:          "div-int/lit16",
	OpRemIntLit16:          "rem-int/lit16",
	OpAndIntLit16:          "and-int/lit16",
	OpOrIntLit16:           "or-int/lit16",
	OpXorIntLit16:          "xor-int/lit16",
	OpAddIntLit8:           "add-int/lit8",
	OpRsubIntLit8:          "rsub-int/lit8",
	OpMulIntLit8:           "mul-int/lit8",
	OpDivIntLit8:           "div-int/lit8",
	OpRemIntLit8:           "rem-int/lit8",
	OpAndIntLit8:           "and-int/lit8",
	OpOrIntLit8:            "or-int/lit8",
	OpXorIntLit8:           "xor-int/lit8",
	OpShlIntLit8:           "shl-int/lit8",
	OpShrIntLit8:           "shr-int/lit8",
	OpUshrIntLit8:          "ushr-int/lit8",
}
