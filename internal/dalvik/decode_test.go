package dalvik

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		code  []uint16
		want  string
		units int
	}{
		{
			name:  "nop",
			code:  []uint16{0x0000},
			want:  "nop",
			units: 1,
		},
		{
			name:  "move object from16",
			code:  []uint16{0x0108, 0x001f},
			want:  "move-object/from16 v1, v31",
			units: 2,
		},
		{
			name:  "const4",
			code:  []uint16{0x7b12},
			want:  "const/4 v11, 0x7",
			units: 1,
		},
		{
			name:  "const4 negative nibble",
			code:  []uint16{0xf012},
			want:  "const/4 v0, 0xff",
			units: 1,
		},
		{
			name:  "const16",
			code:  []uint16{0x0213, 0xfffe},
			want:  "const/16 v2, 0xfffe",
			units: 2,
		},
		{
			name:  "const high16",
			code:  []uint16{0x0015, 0x41a0},
			want:  "const/high16 v0, 0x41a00000",
			units: 2,
		},
		{
			name:  "const wide",
			code:  []uint16{0x0418, 0x1122, 0x3344, 0x5566, 0x7788},
			want:  "const-wide v4, 0x7788556633441122",
			units: 5,
		},
		{
			name:  "const string jumbo",
			code:  []uint16{0x001b, 0x4ee5, 0x0021},
			want:  "const-string/jumbo v0, string@214ee5",
			units: 3,
		},
		{
			name:  "check cast",
			code:  []uint16{0x071f, 0x00ab},
			want:  "check-cast v7, type@ab",
			units: 2,
		},
		{
			name:  "instance of",
			code:  []uint16{0x3120, 0x0042},
			want:  "instance-of v1, v3, type@42",
			units: 2,
		},
		{
			name:  "return void",
			code:  []uint16{0x000e},
			want:  "return-void",
			units: 1,
		},
		{
			name:  "goto backward",
			code:  []uint16{0xfd28},
			want:  "goto -3",
			units: 1,
		},
		{
			name:  "goto32",
			code:  []uint16{0x002a, 0x0005, 0x0000},
			want:  "goto/32 +5",
			units: 3,
		},
		{
			name:  "if eq has no comma before offset",
			code:  []uint16{0x2132, 0x0005},
			want:  "if-eq v1, v2 +5",
			units: 2,
		},
		{
			name:  "if nez",
			code:  []uint16{0x1039, 0x0401},
			want:  "if-nez v16, +1025",
			units: 2,
		},
		{
			name:  "iget object",
			code:  []uint16{0x2054, 0xbeef},
			want:  "iget-object v0, v2, field@beef",
			units: 2,
		},
		{
			name:  "sget",
			code:  []uint16{0x0360, 0x0011},
			want:  "sget v3, field@11",
			units: 2,
		},
		{
			name:  "invoke static two args",
			code:  []uint16{0x2071, 0x4455, 0x0030},
			want:  "invoke-static {v0, v3}, method@4455",
			units: 3,
		},
		{
			name:  "invoke static no args",
			code:  []uint16{0x0071, 0x0001, 0x0000},
			want:  "invoke-static {}, method@1",
			units: 3,
		},
		{
			name:  "invoke virtual range",
			code:  []uint16{0x0374, 0x0100, 0x0005},
			want:  "invoke-virtual/range {v5, v6, v7}, method@100",
			units: 3,
		},
		{
			name:  "add int lit8 negative",
			code:  []uint16{0x01d8, 0xff02},
			want:  "add-int/lit8 v1, v2, 0xff",
			units: 2,
		},
		{
			name:  "rsub int lit16",
			code:  []uint16{0x21d1, 0x000a},
			want:  "rsub-int/lit16 v1, v2, 0xa",
			units: 2,
		},
		{
			name:  "add int 2addr",
			code:  []uint16{0x32b0},
			want:  "add-int/2addr v2, v3",
			units: 1,
		},
		{
			name:  "cmp long",
			code:  []uint16{0x0031, 0x0402},
			want:  "cmp-long v0, v2, v4",
			units: 2,
		},
		{
			name:  "packed switch",
			code:  []uint16{0x022b, 0x000c, 0x0000},
			want:  "packed-switch v2, +12",
			units: 3,
		},
		{
			name:  "fill array data",
			code:  []uint16{0x0126, 0x0004, 0x0000},
			want:  "fill-array-data v1, +4",
			units: 3,
		},
		{
			name:  "move16",
			code:  []uint16{0x0003, 0x0102, 0x0304},
			want:  "move/16 v258, v772",
			units: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, n, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got := in.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if n != tt.units {
				t.Errorf("consumed %d units, want %d", n, tt.units)
			}
			if in.Units() != tt.units {
				t.Errorf("Units() = %d, want %d", in.Units(), tt.units)
			}
		})
	}
}

func TestDecodeLiterals(t *testing.T) {
	tests := []struct {
		name string
		code []uint16
		want int64
	}{
		{"const4 positive", []uint16{0x7b12}, 7},
		{"const4 negative", []uint16{0xf012}, -1},
		{"const16 negative", []uint16{0x0013, 0xfffe}, -2},
		{"const high16 keeps sign", []uint16{0x0015, 0x8000}, -32768},
		{"const wide high16 does not", []uint16{0x0019, 0x8000}, 0x8000},
		{"const zero extends", []uint16{0x0014, 0xffff, 0xffff}, 0xffffffff},
		{"lit8 negative", []uint16{0x01d8, 0xff02}, -1},
		{"lit16 negative", []uint16{0x21d0, 0xffff}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if in.Lit != tt.want {
				t.Errorf("Lit = %d, want %d", in.Lit, tt.want)
			}
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		code []uint16
	}{
		{"empty", nil},
		{"const16 missing value", []uint16{0x0013}},
		{"goto32 missing high half", []uint16{0x002a, 0x0005}},
		{"const wide missing tail", []uint16{0x0418, 0x1122, 0x3344}},
		{"invoke missing registers", []uint16{0x2071, 0x4455}},
		{"packed switch payload missing size", []uint16{0x0100}},
		{"packed switch payload short", []uint16{0x0100, 0x0002, 0x0000, 0x0000}},
		{"fill array payload short", []uint16{0x0300, 0x0002, 0x0003, 0x0000, 0x1111, 0x2222}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := Decode(tt.code)
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("err = %v, want ErrTruncated", err)
			}
			if n != 0 {
				t.Errorf("consumed %d units on error, want 0", n)
			}
		})
	}
}

func TestDecodeEncoding(t *testing.T) {
	tests := []struct {
		name string
		code []uint16
	}{
		{"unused opcode", []uint16{0x003e}},
		{"unused opcode high range", []uint16{0x00ff}},
		{"return void with pad bits", []uint16{0x010e}},
		{"goto16 with pad bits", []uint16{0x0129, 0x0005}},
		{"move16 with pad bits", []uint16{0x0103, 0x0000, 0x0000}},
		{"invoke with six registers", []uint16{0x6071, 0x0001, 0x0000}},
		{"bad nop selector", []uint16{0x0400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := Decode(tt.code)
			if !errors.Is(err, ErrEncoding) {
				t.Fatalf("err = %v, want ErrEncoding", err)
			}
			if n != 0 {
				t.Errorf("consumed %d units on error, want 0", n)
			}
		})
	}
}

func TestDecodePayloads(t *testing.T) {
	tests := []struct {
		name  string
		code  []uint16
		kind  PayloadKind
		units int
	}{
		{
			name:  "packed switch",
			code:  []uint16{0x0100, 0x0002, 0x000a, 0x0000, 0x0004, 0x0000, 0x0008, 0x0000},
			kind:  PackedSwitchPayload,
			units: 8,
		},
		{
			name:  "packed switch empty",
			code:  []uint16{0x0100, 0x0000, 0x0000, 0x0000},
			kind:  PackedSwitchPayload,
			units: 4,
		},
		{
			name:  "sparse switch",
			code:  []uint16{0x0200, 0x0001, 0x000a, 0x0000, 0x0004, 0x0000},
			kind:  SparseSwitchPayload,
			units: 6,
		},
		{
			name: "fill array odd byte count rounds up",
			// width 2, count 3: six data bytes round up to 7 total units
			code:  []uint16{0x0300, 0x0002, 0x0003, 0x0000, 0x1111, 0x2222, 0x3333},
			kind:  FillArrayDataPayload,
			units: 7,
		},
		{
			name:  "fill array single byte",
			code:  []uint16{0x0300, 0x0001, 0x0001, 0x0000, 0x00ff},
			kind:  FillArrayDataPayload,
			units: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.code)
			var p *PayloadError
			if !errors.As(err, &p) {
				t.Fatalf("err = %v, want *PayloadError", err)
			}
			if p.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", p.Kind, tt.kind)
			}
			if p.Units != tt.units {
				t.Errorf("Units = %d, want %d", p.Units, tt.units)
			}
		})
	}
}

func TestDecodeAll(t *testing.T) {
	code := []uint16{
		0x7b12,                 // const/4 v11, 0x7
		0x0126, 0x0004, 0x0000, // fill-array-data v1, +4
		0x0300, 0x0002, 0x0003, 0x0000, 0x1111, 0x2222, 0x3333, // payload, 7 units
		0x000e, // return-void
	}
	insts, err := DecodeAll(code, 100)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	want := []string{
		"const/4 v11, 0x7",
		"fill-array-data v1, +4",
		"return-void",
	}
	if len(insts) != len(want) {
		t.Fatalf("decoded %d instructions, want %d", len(insts), len(want))
	}
	for i, w := range want {
		if got := insts[i].String(); got != w {
			t.Errorf("inst %d: got %q, want %q", i, got, w)
		}
	}
}

func TestDecodeAllLimit(t *testing.T) {
	code := []uint16{0x0000, 0x0000, 0x0000, 0x0000}
	insts, err := DecodeAll(code, 2)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if len(insts) != 2 {
		t.Errorf("decoded %d instructions, want 2", len(insts))
	}
}

func TestDecodeDeterministic(t *testing.T) {
	code := []uint16{0x2071, 0x4455, 0x0030}
	a, an, err := Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	b, bn, err := Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	if an != bn || a.String() != b.String() {
		t.Errorf("repeat decode diverged: %q/%d vs %q/%d", a, an, b, bn)
	}
}
