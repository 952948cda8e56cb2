package cmd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"dexsect/internal/dalvik"
)

// loadCode reads a raw little-endian code-unit buffer from path. This is
// the code_item insns array as extracted from a dex container; container
// parsing itself is someone else's job.
func loadCode(path string) ([]uint16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a whole number of code units", path, len(raw))
	}
	code := make([]uint16, len(raw)/2)
	for i := range code {
		code[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return code, nil
}

// listing produces a linear disassembly with code-unit addresses, one
// instruction per line. Inline payload tables appear as comment lines.
func listing(code []uint16) (string, error) {
	var b strings.Builder
	cursor := 0
	for cursor < len(code) {
		in, n, err := dalvik.Decode(code[cursor:])
		if err != nil {
			var p *dalvik.PayloadError
			if errors.As(err, &p) {
				fmt.Fprintf(&b, "%04x  ; %s, %d units\n", cursor, p.Kind, p.Units)
				cursor += p.Units
				continue
			}
			return "", fmt.Errorf("at %#x: %w", cursor, err)
		}
		fmt.Fprintf(&b, "%04x  %s\n", cursor, in)
		cursor += n
	}
	return b.String(), nil
}

// blockListing renders one lifted block, instructions indented under an
// address label, with the exit edge spelled out.
func blockListing(bb *dalvik.BasicBlock) string {
	var b strings.Builder
	fmt.Fprintf(&b, "block %04x:\n", bb.Addr)
	for _, in := range bb.Insts {
		fmt.Fprintf(&b, "  %s\n", in)
	}
	switch bb.Next.Kind {
	case dalvik.NextGoto:
		fmt.Fprintf(&b, "  -> %04x\n", bb.Next.T)
	case dalvik.NextCond:
		fmt.Fprintf(&b, "  -> %04x if taken, %04x otherwise\n", bb.Next.T, bb.Next.F)
	}
	return b.String()
}

// parseEntries validates and sorts the --entry addresses.
func parseEntries(entries []int, limit int) ([]int, error) {
	for _, e := range entries {
		if e < 0 || e >= limit {
			return nil, fmt.Errorf("entry point %#x outside method (%d code units)", e, limit)
		}
	}
	out := append([]int(nil), entries...)
	sort.Ints(out)
	return out, nil
}
