// Package insert implements the insertion engine: top-down installation
// of the missing levels of the BTH hierarchy for an address that missed,
// reusing victims selected from the DBA and writing back anything dirty
// they were holding.
package insert

import (
	"github.com/blockcache/dbrc/btlb"
	"github.com/blockcache/dbrc/dba"
	"github.com/blockcache/dbrc/victim"
)

// Writeback is called with a dirty leaf's data, keyed by its block
// address (TAG*B), whenever eviction displaces a dirty block.
type Writeback func(blockAddr uint64, data []byte)

// Insert installs the block-sized payload for addr into the tree,
// allocating every missing level from lastBTH (or from L0T if
// lastBTHValid is false) down to the leaf, and returns the DBA index of
// the newly resident leaf. It is only valid to call after walker.Lookup
// reports a miss for addr.
func Insert(
	store *dba.Store,
	tlb *btlb.Cache,
	sel *victim.Selector,
	wb Writeback,
	addr uint64,
	payload []byte,
	lastBTH uint32,
	lastBTHValid bool,
) uint32 {
	var cur int

	if !lastBTHValid {
		l0tSlot := store.L0TSlot(addr)
		cur = 0

		if entry := store.L0T[l0tSlot]; entry.V {
			store.Blocks[entry.I].DUT.PV = false
		}
	} else {
		cur = store.Blocks[lastBTH].DUT.LF
	}

	cur++

	for cur <= store.L {
		v := sel.SelectVictim(store)
		reclaim(store, tlb, wb, v)

		store.Blocks[v].Reset(cur)
		link(store, addr, cur, lastBTH, v)

		lastBTH = v
		lastBTHValid = true
		cur++
	}

	leaf := &store.Blocks[lastBTH]
	leaf.TT.Tag = store.BlockTag(addr)
	copy(leaf.Data, payload)
	tlb.Put(leaf.TT.Tag, lastBTH)

	return lastBTH
}

// reclaim invalidates whatever the victim used to be: its parent's
// pointer to it, its children's parent-valid flag or its B-TLB entry,
// and writes back its data if it was a dirty leaf.
func reclaim(store *dba.Store, tlb *btlb.Cache, wb Writeback, v uint32) {
	block := &store.Blocks[v]

	if !block.DUT.V || block.DUT.LF == 0 {
		return
	}

	if block.DUT.PV {
		invalidateParentSlot(store, block, v)
	}

	switch {
	case block.DUT.LF == store.L:
		tlb.Invalidate(block.TT.Tag)
		if block.DUT.D {
			data := make([]byte, len(block.Data))
			copy(data, block.Data)
			wb(block.TT.Tag*store.B, data)
		}
		block.TT.Tag = 0
	default:
		for i := range block.BTH {
			if block.BTH[i].V {
				store.Blocks[block.BTH[i].I].DUT.PV = false
			}
		}
	}
}

func invalidateParentSlot(store *dba.Store, block *dba.Block, v uint32) {
	if block.DUT.LF == 1 {
		store.L0T[block.TT.Parent].V = false
		return
	}

	parent := &store.Blocks[block.TT.Parent]
	for i := range parent.BTH {
		if parent.BTH[i].V && parent.BTH[i].I == v {
			parent.BTH[i].V = false
			return
		}
	}
}

// link installs v into the slot its new level makes it occupy: the L0T
// slot for a fresh level-1 block, or the parent's BTH slot otherwise.
func link(store *dba.Store, addr uint64, level int, lastBTH uint32, v uint32) {
	block := &store.Blocks[v]

	if level == 1 {
		l0tSlot := store.L0TSlot(addr)
		store.L0T[l0tSlot] = dba.BTHEntry{V: true, I: v}
		block.TT.Parent = uint32(l0tSlot)
		return
	}

	slot := store.InteriorSlot(addr, level-1)
	store.Blocks[lastBTH].BTH[slot] = dba.BTHEntry{V: true, I: v}
	block.TT.Parent = lastBTH
}
