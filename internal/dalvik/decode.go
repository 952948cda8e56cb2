package dalvik

import (
	"errors"
	"fmt"
)

// Decode failures. ErrTruncated means the buffer ended inside the current
// instruction; supplying more input may succeed. ErrEncoding means a
// structural invariant of the encoding was violated (reserved bits set, or
// an opcode with no mapped format) and the input is malformed.
var (
	ErrTruncated = errors.New("dalvik: truncated instruction")
	ErrEncoding  = errors.New("dalvik: invalid instruction encoding")
)

// PayloadKind identifies an inline, non-executable payload table.
type PayloadKind uint8

const (
	PackedSwitchPayload PayloadKind = iota + 1
	SparseSwitchPayload
	FillArrayDataPayload
)

func (k PayloadKind) String() string {
	switch k {
	case PackedSwitchPayload:
		return "packed-switch-payload"
	case SparseSwitchPayload:
		return "sparse-switch-payload"
	case FillArrayDataPayload:
		return "fill-array-data-payload"
	}
	return "payload"
}

// PayloadError reports that the cursor points at an inline payload table
// rather than an instruction. It is a control signal, not a failure: the
// caller should advance the cursor by Units code units and continue.
// Units counts the whole table including its header.
type PayloadError struct {
	Kind  PayloadKind
	Units int
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("dalvik: inline %s (%d code units)", e.Kind, e.Units)
}

// Decode decodes exactly one instruction from the front of code, returning
// it together with the number of code units consumed.
//
// If the cursor points at an inline payload table, Decode returns a
// *PayloadError carrying the exact skip length. On ErrTruncated or
// ErrEncoding, no input is considered consumed.
func Decode(code []uint16) (Inst, int, error) {
	if len(code) == 0 {
		return Inst{}, 0, ErrTruncated
	}
	op := Opcode(code[0] & 0xff)
	if op == OpNop {
		return decodeNop(code)
	}
	f := opFormats[op]
	if f == fmtNone {
		return Inst{}, 0, fmt.Errorf("%w: unmapped opcode %#02x", ErrEncoding, uint8(op))
	}
	n := formatUnits[f]
	if len(code) < n {
		return Inst{}, 0, ErrTruncated
	}

	in := Inst{Op: op}
	w := code[0]
	switch f {
	case fmt10x:
		// return-void; the unused AA byte must be zero
		if w>>8 != 0 {
			return Inst{}, 0, fmt.Errorf("%w: nonzero pad in %s", ErrEncoding, op)
		}
	case fmt12x:
		in.A = Reg(w >> 8 & 0xf)
		in.B = Reg(w >> 12)
	case fmt11n:
		in.A = Reg(w >> 8 & 0xf)
		in.Lit = int64(signExtend4(uint8(w >> 12)))
	case fmt11x:
		in.A = Reg(w >> 8)
	case fmt10t:
		in.Off = int32(int8(w >> 8))
	case fmt20t:
		if w>>8 != 0 {
			return Inst{}, 0, fmt.Errorf("%w: nonzero pad in %s", ErrEncoding, op)
		}
		in.Off = int32(int16(code[1]))
	case fmt22x:
		in.A = Reg(w >> 8)
		in.B = Reg(code[1])
	case fmt21t:
		in.A = Reg(w >> 8)
		in.Off = int32(int16(code[1]))
	case fmt21s:
		in.A = Reg(w >> 8)
		in.Lit = int64(int16(code[1]))
	case fmt21h:
		in.A = Reg(w >> 8)
		// const/high16 carries a signed value, const-wide/high16 does not
		if op == OpConstHigh16 {
			in.Lit = int64(int16(code[1]))
		} else {
			in.Lit = int64(code[1])
		}
	case fmt21c:
		in.A = Reg(w >> 8)
		in.Idx = uint32(code[1])
	case fmt23x:
		in.A = Reg(w >> 8)
		in.B = Reg(code[1] & 0xff)
		in.C = Reg(code[1] >> 8)
	case fmt22b:
		in.A = Reg(w >> 8)
		in.B = Reg(code[1] & 0xff)
		in.Lit = int64(int8(code[1] >> 8))
	case fmt22t:
		in.A = Reg(w >> 8 & 0xf)
		in.B = Reg(w >> 12)
		in.Off = int32(int16(code[1]))
	case fmt22s:
		in.A = Reg(w >> 8 & 0xf)
		in.B = Reg(w >> 12)
		in.Lit = int64(int16(code[1]))
	case fmt22c:
		in.A = Reg(w >> 8 & 0xf)
		in.B = Reg(w >> 12)
		in.Idx = uint32(code[1])
	case fmt30t:
		if w>>8 != 0 {
			return Inst{}, 0, fmt.Errorf("%w: nonzero pad in %s", ErrEncoding, op)
		}
		in.Off = int32(uint32(code[1]) | uint32(code[2])<<16)
	case fmt32x:
		if w>>8 != 0 {
			return Inst{}, 0, fmt.Errorf("%w: nonzero pad in %s", ErrEncoding, op)
		}
		in.A = Reg(code[1])
		in.B = Reg(code[2])
	case fmt31i:
		in.A = Reg(w >> 8)
		in.Lit = int64(uint32(code[1]) | uint32(code[2])<<16)
	case fmt31t:
		in.A = Reg(w >> 8)
		in.Off = int32(uint32(code[1]) | uint32(code[2])<<16)
	case fmt31c:
		in.A = Reg(w >> 8)
		in.Idx = uint32(code[1]) | uint32(code[2])<<16
	case fmt35c:
		count := int(w >> 12)
		if count > 5 {
			return Inst{}, 0, fmt.Errorf("%w: %s with %d argument registers", ErrEncoding, op, count)
		}
		in.Idx = uint32(code[1])
		fedc := code[2]
		regs := [5]Reg{
			Reg(fedc & 0xf),
			Reg(fedc >> 4 & 0xf),
			Reg(fedc >> 8 & 0xf),
			Reg(fedc >> 12),
			Reg(w >> 8 & 0xf),
		}
		in.Args = append([]Reg(nil), regs[:count]...)
	case fmt3rc:
		count := int(w >> 8)
		in.Idx = uint32(code[1])
		start := code[2]
		in.Args = make([]Reg, count)
		for i := range in.Args {
			in.Args[i] = Reg(start + uint16(i))
		}
	case fmt51l:
		in.A = Reg(w >> 8)
		in.Lit = int64(uint64(code[1]) |
			uint64(code[2])<<16 |
			uint64(code[3])<<32 |
			uint64(code[4])<<48)
	}

	return in, n, nil
}

// decodeNop handles opcode 0x00: the high byte of the first code unit
// selects between a true nop and the three inline payload table kinds.
func decodeNop(code []uint16) (Inst, int, error) {
	switch code[0] >> 8 {
	case 0x00:
		return Inst{Op: OpNop}, 1, nil
	case 0x01:
		// ident, size, first_key (2 units), then size 32-bit targets
		if len(code) < 2 {
			return Inst{}, 0, ErrTruncated
		}
		units := 4 + 2*int(code[1])
		if len(code) < units {
			return Inst{}, 0, ErrTruncated
		}
		return Inst{}, 0, &PayloadError{Kind: PackedSwitchPayload, Units: units}
	case 0x02:
		// ident, size, then size 32-bit keys and size 32-bit targets
		if len(code) < 2 {
			return Inst{}, 0, ErrTruncated
		}
		units := 2 + 4*int(code[1])
		if len(code) < units {
			return Inst{}, 0, ErrTruncated
		}
		return Inst{}, 0, &PayloadError{Kind: SparseSwitchPayload, Units: units}
	case 0x03:
		// ident, element_width, size (2 units), then the packed elements.
		// The reference manual's size formula is wrong; this matches the
		// runtime: (width*count+1)/2 rounded-up units of data after the
		// 4-unit header.
		if len(code) < 4 {
			return Inst{}, 0, ErrTruncated
		}
		width := int(code[1])
		count := int(uint32(code[2]) | uint32(code[3])<<16)
		units := (width*count+1)/2 + 4
		if len(code) < units {
			return Inst{}, 0, ErrTruncated
		}
		return Inst{}, 0, &PayloadError{Kind: FillArrayDataPayload, Units: units}
	}
	return Inst{}, 0, fmt.Errorf("%w: bad nop selector %#02x", ErrEncoding, uint8(code[0]>>8))
}

// DecodeAll decodes up to max instructions from code, transparently
// skipping inline payload tables. It stops early when the buffer is
// exhausted and propagates the first real decode failure.
func DecodeAll(code []uint16, max int) ([]Inst, error) {
	var out []Inst
	for len(code) > 0 && len(out) < max {
		in, n, err := Decode(code)
		if err != nil {
			var p *PayloadError
			if errors.As(err, &p) {
				code = code[p.Units:]
				continue
			}
			return nil, err
		}
		out = append(out, in)
		code = code[n:]
	}
	return out, nil
}

func signExtend4(nib uint8) int8 {
	return int8(nib<<4) >> 4
}
