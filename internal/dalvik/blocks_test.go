package dalvik

import (
	"reflect"
	"testing"
)

func TestLiftBranch(t *testing.T) {
	code := []uint16{
		0x0038, 0x0003, // 0: if-eqz v0, +3
		0x1012, // 2: const/4 v0, 0x1
		0x000e, // 3: return-void
	}
	blocks, err := Lift(code, nil)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if got, want := blocks.Addrs(), []int{0, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("block starts = %v, want %v", got, want)
	}

	b0 := blocks[0]
	if len(b0.Insts) != 1 || b0.Insts[0].Op != OpIfEqz {
		t.Errorf("block 0 = %v, want single if-eqz", b0.Insts)
	}
	if want := (NextBranch{Kind: NextCond, T: 3, F: 2}); b0.Next != want {
		t.Errorf("block 0 next = %+v, want %+v", b0.Next, want)
	}

	// the fall-through block runs into the branch target's block start
	// and is closed with a plain edge
	b2 := blocks[2]
	if len(b2.Insts) != 1 || b2.Insts[0].Op != OpConst4 {
		t.Errorf("block 2 = %v, want single const/4", b2.Insts)
	}
	if want := (NextBranch{Kind: NextGoto, T: 3}); b2.Next != want {
		t.Errorf("block 2 next = %+v, want %+v", b2.Next, want)
	}

	b3 := blocks[3]
	if b3.Next.Kind != NextNone {
		t.Errorf("block 3 next = %+v, want no successors", b3.Next)
	}
}

func TestLiftGotoTargetRelativeToInstruction(t *testing.T) {
	code := []uint16{
		0x0000, // 0: nop
		0x0228, // 1: goto +2, lands at 1+2
		0x0000, // 2: unreachable
		0x000e, // 3: return-void
	}
	blocks, err := Lift(code, nil)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	b0, ok := blocks[0]
	if !ok {
		t.Fatal("no block at 0")
	}
	if want := (NextBranch{Kind: NextGoto, T: 3}); b0.Next != want {
		t.Errorf("block 0 next = %+v, want %+v", b0.Next, want)
	}
	if len(b0.Insts) != 2 {
		t.Errorf("block 0 has %d instructions, want nop+goto", len(b0.Insts))
	}
	if _, ok := blocks[2]; ok {
		t.Error("unreachable address 2 got a block")
	}
	if _, ok := blocks[3]; !ok {
		t.Error("goto target 3 got no block")
	}
}

func TestLiftBranchTargetRelativeToInstruction(t *testing.T) {
	code := []uint16{
		0x0000, // 0: nop
		0x0038, 0x0004, // 1: if-eqz v0, +4, lands at 1+4
		0x000e, // 3: return-void
		0x0000, // 4: nop
		0x000e, // 5: return-void
	}
	blocks, err := Lift(code, nil)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	b0 := blocks[0]
	if want := (NextBranch{Kind: NextCond, T: 5, F: 3}); b0.Next != want {
		t.Errorf("branch block next = %+v, want %+v", b0.Next, want)
	}
}

func TestLiftEntryPoints(t *testing.T) {
	code := []uint16{
		0x000e, // 0: return-void
		0x1012, // 1: const/4 v0, 0x1  (handler, unreachable from 0)
		0x000e, // 2: return-void
	}
	blocks, err := Lift(code, []int{1})
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if got, want := blocks.Addrs(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("block starts = %v, want %v", got, want)
	}
	b1 := blocks[1]
	if len(b1.Insts) != 2 {
		t.Errorf("entry block has %d instructions, want 2", len(b1.Insts))
	}
}

func TestLiftEntryInsideRun(t *testing.T) {
	// a supplied entry point in the middle of a straight run forces a
	// boundary there; the run before it closes with a plain edge
	code := []uint16{
		0x1012, // 0: const/4 v0, 0x1
		0x2012, // 1: const/4 v0, 0x2  (handler entry)
		0x000e, // 2: return-void
	}
	blocks, err := Lift(code, []int{1})
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if got, want := blocks.Addrs(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("block starts = %v, want %v", got, want)
	}
	b0 := blocks[0]
	if len(b0.Insts) != 1 {
		t.Errorf("block 0 has %d instructions, want 1", len(b0.Insts))
	}
	if want := (NextBranch{Kind: NextGoto, T: 1}); b0.Next != want {
		t.Errorf("block 0 next = %+v, want %+v", b0.Next, want)
	}
	b1 := blocks[1]
	if len(b1.Insts) != 2 {
		t.Errorf("entry block has %d instructions, want 2", len(b1.Insts))
	}
}

func TestLiftEntryAfterInlinePayload(t *testing.T) {
	// the boundary also holds when the run reaches the entry by skipping
	// an inline table rather than by decoding an instruction
	code := []uint16{
		0x0012, // 0: const/4 v0, 0x0
		// 1: packed-switch payload, zero targets, 4 units
		0x0100, 0x0000, 0x0000, 0x0000,
		0x000e, // 5: return-void  (handler entry)
	}
	blocks, err := Lift(code, []int{5})
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if got, want := blocks.Addrs(), []int{0, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("block starts = %v, want %v", got, want)
	}
	b0 := blocks[0]
	if len(b0.Insts) != 1 {
		t.Errorf("block 0 has %d instructions, want 1", len(b0.Insts))
	}
	if want := (NextBranch{Kind: NextGoto, T: 5}); b0.Next != want {
		t.Errorf("block 0 next = %+v, want %+v", b0.Next, want)
	}
	if b5 := blocks[5]; b5.Next.Kind != NextNone {
		t.Errorf("entry block next = %+v, want no successors", b5.Next)
	}
}

func TestLiftSkipsInlinePayload(t *testing.T) {
	code := []uint16{
		0x0000, // 0: nop
		// 1: packed-switch payload, one target, 6 units
		0x0100, 0x0001, 0x000a, 0x0000, 0x0002, 0x0000,
		0x000e, // 7: return-void
	}
	blocks, err := Lift(code, nil)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	b0, ok := blocks[0]
	if !ok {
		t.Fatal("no block at 0")
	}
	if len(b0.Insts) != 2 {
		t.Fatalf("block 0 has %d instructions, want nop+return-void", len(b0.Insts))
	}
	if b0.Insts[1].Op != OpReturnVoid {
		t.Errorf("instruction after payload = %v, want return-void", b0.Insts[1].Op)
	}
}

func TestLiftOverlappingRunsAreNotSplit(t *testing.T) {
	// the branch jumps into the middle of the entry run; the target
	// starts its own block whose instructions overlap the first
	code := []uint16{
		0x1012,         // 0: const/4 v0, 0x1
		0x2012,         // 1: const/4 v0, 0x2
		0x0038, 0xffff, // 2: if-eqz v0, -1, lands at 1
		0x000e, // 4: return-void
	}
	blocks, err := Lift(code, nil)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	b0 := blocks[0]
	if len(b0.Insts) != 3 {
		t.Errorf("entry block has %d instructions, want 3 (not split)", len(b0.Insts))
	}
	b1, ok := blocks[1]
	if !ok {
		t.Fatal("branch target 1 got no block")
	}
	if len(b1.Insts) != 2 {
		t.Errorf("target block has %d instructions, want 2", len(b1.Insts))
	}
}

func TestLiftBadTarget(t *testing.T) {
	code := []uint16{
		0x6328, // 0: goto +99, far past the end
	}
	if _, err := Lift(code, nil); err == nil {
		t.Fatal("Lift accepted a branch outside the method")
	}
}

func TestLiftFallOffEnd(t *testing.T) {
	code := []uint16{
		0x1012, // 0: const/4, falls off the end
	}
	if _, err := Lift(code, nil); err == nil {
		t.Fatal("Lift accepted code that falls off the end")
	}
}
