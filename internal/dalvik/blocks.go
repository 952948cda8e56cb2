package dalvik

import (
	"errors"
	"fmt"
	"sort"
)

// BranchKind says how control leaves a basic block.
type BranchKind uint8

const (
	// NextNone: the block ends in a return or throw.
	NextNone BranchKind = iota
	// NextGoto: one successor at T.
	NextGoto
	// NextCond: taken successor at T, fall-through successor at F.
	NextCond
)

// NextBranch is the outgoing edge set of a basic block. Targets are
// absolute code-unit addresses.
type NextBranch struct {
	Kind BranchKind
	T    int
	F    int
}

// Targets returns the successor addresses, taken edge first.
func (n NextBranch) Targets() []int {
	switch n.Kind {
	case NextGoto:
		return []int{n.T}
	case NextCond:
		return []int{n.T, n.F}
	}
	return nil
}

// BasicBlock is a straight-line run of instructions. Addr is the
// code-unit address of the first instruction.
type BasicBlock struct {
	Addr  int
	Insts []Inst
	Next  NextBranch
}

// Blocks maps start addresses to the basic blocks discovered there.
type Blocks map[int]*BasicBlock

// Addrs returns the block start addresses in increasing order.
func (b Blocks) Addrs() []int {
	addrs := make([]int, 0, len(b))
	for a := range b {
		addrs = append(addrs, a)
	}
	sort.Ints(addrs)
	return addrs
}

// Lift decodes code into basic blocks. Discovery starts at address 0 and
// every address in entries, and follows branch and goto targets until no
// unvisited block start remains.
//
// A straight run also ends when it reaches an address already known to
// start a block; the run is then closed with an unconditional edge to
// that address. A branch into the middle of an already-decoded run does
// not split it: the target simply starts a second block whose
// instructions overlap the first.
func Lift(code []uint16, entries []int) (Blocks, error) {
	pending := map[int]struct{}{0: {}}
	for _, e := range entries {
		pending[e] = struct{}{}
	}
	blocks := make(Blocks)

	for len(pending) > 0 {
		addr := popMin(pending)
		if _, done := blocks[addr]; done {
			continue
		}
		bb, err := liftOne(code, addr, pending, blocks)
		if err != nil {
			return nil, fmt.Errorf("block at %#x: %w", addr, err)
		}
		blocks[addr] = bb
		for _, t := range bb.Next.Targets() {
			if _, done := blocks[t]; !done {
				pending[t] = struct{}{}
			}
		}
	}
	return blocks, nil
}

// liftOne decodes one straight run starting at addr. pending and blocks
// together are the known block starts that force a run boundary.
func liftOne(code []uint16, addr int, pending map[int]struct{}, blocks Blocks) (*BasicBlock, error) {
	bb := &BasicBlock{Addr: addr}
	cursor := addr
	for {
		if cursor < 0 || cursor > len(code) {
			return nil, fmt.Errorf("address %#x outside method (%d code units)", cursor, len(code))
		}
		if cursor != addr {
			_, hit := pending[cursor]
			if !hit {
				_, hit = blocks[cursor]
			}
			if hit {
				// fell onto another block's start; close with a plain edge
				bb.Next = NextBranch{Kind: NextGoto, T: cursor}
				return bb, nil
			}
		}
		in, n, err := Decode(code[cursor:])
		if err != nil {
			var p *PayloadError
			if errors.As(err, &p) {
				cursor += p.Units
				continue
			}
			return nil, err
		}
		bb.Insts = append(bb.Insts, in)

		flow := in.Flow()
		switch flow.Kind {
		case FlowTerminate:
			bb.Next = NextBranch{Kind: NextNone}
			return bb, nil
		case FlowGoTo:
			bb.Next = NextBranch{Kind: NextGoto, T: cursor + int(flow.Off)}
			return bb, nil
		case FlowBranch:
			bb.Next = NextBranch{
				Kind: NextCond,
				T:    cursor + int(flow.Off),
				F:    cursor + n,
			}
			return bb, nil
		}

		cursor += n
	}
}

func popMin(set map[int]struct{}) int {
	min, first := 0, true
	for a := range set {
		if first || a < min {
			min, first = a, false
		}
	}
	delete(set, min)
	return min
}
