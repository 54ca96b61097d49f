// Package dba implements the Data Block Array: the fixed-capacity pool of
// uniform blocks that DBRC uses both to hold user data and, interpreted
// differently, to hold the interior translation tables that locate it.
package dba

import "log"

// BTHEntry is one slot of a translation table, including L0T: a validity
// bit plus the DBA index it points at when valid.
type BTHEntry struct {
	V bool
	I uint32
}

// DUT is the per-block metadata record (Data Usage Table entry).
type DUT struct {
	V      bool  // valid
	D      bool  // dirty
	Locked bool  // never chosen as a victim
	PV     bool  // parent-valid: some ancestor slot still references this block
	LF     int   // level field: 0 unused, 1..L-1 interior, L leaf
	R      uint8 // saturating reuse counter, 0..32
}

// MaxReuse is the saturation ceiling for DUT.R.
const MaxReuse = 32

// IncrementReuse bumps the reuse counter, saturating at MaxReuse. It
// reports whether the counter was already saturated, for callers that
// want to track how often hot blocks hit the ceiling.
func (d *DUT) IncrementReuse() (wasSaturated bool) {
	if d.R < MaxReuse {
		d.R++
		return false
	}

	return true
}

// TT is the per-block tag/parent record.
type TT struct {
	Tag    uint64 // leaf block tag; meaningless unless LF == leaf level
	Parent uint32 // L0T slot index when LF==1, DBA index of parent otherwise
}

// Block is one entry of the DBA: metadata plus a fixed interior table and
// a fixed data buffer. LF in the DUT selects which of BTH or Data is the
// semantically live view of the block's storage.
type Block struct {
	DUT  DUT
	TT   TT
	BTH  []BTHEntry
	Data []byte
}

// Reset clears a block's table and data and re-establishes it as a fresh
// block at the given level, ready to be linked into the tree.
func (b *Block) Reset(level int) {
	for i := range b.BTH {
		b.BTH[i] = BTHEntry{}
	}

	for i := range b.Data {
		b.Data[i] = 0
	}

	b.TT = TT{}
	b.DUT = DUT{V: true, PV: true, LF: level, R: 1}
}

// Store is the DBA: the block arena plus the dense L0T root table and the
// hierarchy parameters that describe how addresses map onto it.
type Store struct {
	B         uint64 // block size in bytes
	F         uint64 // fan-out of an interior table
	L         int    // number of levels, leaf level == L
	L0TOffset uint64 // address span covered by one L0T slot

	Blocks []Block
	L0T    []BTHEntry
}

// NewStore allocates a Store with capacity blocks and numL0TSlots root
// table entries, validating that the hierarchy parameters are internally
// consistent.
func NewStore(b, f uint64, l int, numL0TSlots uint64, capacity uint32) *Store {
	if b == 0 || f == 0 || l < 2 {
		log.Panicf("dba: invalid hierarchy parameters B=%d F=%d L=%d", b, f, l)
	}

	s := &Store{
		B:         b,
		F:         f,
		L:         l,
		L0TOffset: b * pow(f, uint64(l-1)),
		Blocks:    make([]Block, capacity),
		L0T:       make([]BTHEntry, numL0TSlots),
	}

	for i := range s.Blocks {
		s.Blocks[i].BTH = make([]BTHEntry, f)
		s.Blocks[i].Data = make([]byte, b)
	}

	return s
}

// BlockAddr returns the block-aligned address containing addr.
func (s *Store) BlockAddr(addr uint64) uint64 {
	return addr &^ (s.B - 1)
}

// BlockTag returns the block tag of addr.
func (s *Store) BlockTag(addr uint64) uint64 {
	return addr / s.B
}

// L0TSlot returns the root table slot that covers addr.
func (s *Store) L0TSlot(addr uint64) uint64 {
	return addr / s.L0TOffset
}

// InteriorSlot returns the BTH slot, within the interior block at the
// given level (1..L-1), that addr descends through.
func (s *Store) InteriorSlot(addr uint64, level int) uint64 {
	divisor := s.L0TOffset / pow(s.F, uint64(level))
	return (addr / divisor) % s.F
}

// BumpReuse increments block i's reuse counter on behalf of the
// translation walker, reporting whether it was already saturated.
func (s *Store) BumpReuse(i uint32) (wasSaturated bool) {
	return s.Blocks[i].DUT.IncrementReuse()
}

func pow(base, exp uint64) uint64 {
	result := uint64(1)
	for i := uint64(0); i < exp; i++ {
		result *= base
	}

	return result
}
