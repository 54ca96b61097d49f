// Package walker implements the translation walk that locates the DBA
// block holding a given address, descending the BTH hierarchy rooted at
// L0T and consulting the B-TLB as a fast path.
package walker

import (
	"github.com/blockcache/dbrc/btlb"
	"github.com/blockcache/dbrc/dba"
)

// Lookup identifies the leaf block holding block_tag(addr), or reports a
// miss. lastBTH is the deepest interior block index reached before the
// miss occurred, with lastBTHValid=false if the miss happened at the L0T
// itself; it
// is meaningless on a hit and is the handoff insert needs to resume the
// descent top-down.
func Lookup(
	store *dba.Store,
	tlb *btlb.Cache,
	addr uint64,
) (idx uint32, hit bool, lastBTH uint32, lastBTHValid bool) {
	tag := store.BlockTag(addr)

	if cached, ok := tlb.Get(tag); ok {
		block := &store.Blocks[cached]
		if block.DUT.LF == store.L && block.DUT.V && block.TT.Tag == tag {
			return cached, true, 0, false
		}

		// A stale B-TLB entry is an invariant violation: every B-TLB
		// entry must reference a valid leaf carrying that exact tag.
		tlb.Invalidate(tag)
	}

	l0tSlot := store.L0TSlot(addr)
	rootEntry := store.L0T[l0tSlot]
	if !rootEntry.V {
		return 0, false, 0, false
	}

	cur := rootEntry.I
	parent := cur

	for level := 1; level < store.L; level++ {
		slot := store.InteriorSlot(addr, level)
		entry := store.Blocks[cur].BTH[slot]
		if !entry.V {
			return 0, false, cur, true
		}

		store.BumpReuse(entry.I)

		parent = cur
		cur = entry.I
	}

	leaf := &store.Blocks[cur]
	if leaf.DUT.LF != store.L || !leaf.DUT.V || leaf.TT.Tag != tag {
		return 0, false, parent, true
	}

	tlb.Put(tag, cur)

	return cur, true, 0, false
}
