package dbrc

import "github.com/blockcache/dbrc/sim"

// Builder assembles a Comp from the coarse knobs spec.md §6 enumerates,
// deriving the hierarchy parameters (F, L0T_offset, C) that the DBA and
// walker actually need.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq

	size         uint64
	blockSize    uint64
	numLevels    int
	addressSpace uint64
	tlbSize      int
	mna          int
	latency      int
}

// MakeBuilder returns a Builder pre-loaded with the defaults spec.md §8
// uses in its worked examples.
func MakeBuilder() Builder {
	return Builder{
		freq:         1 * sim.GHz,
		size:         16384 * 64,
		blockSize:    64,
		numLevels:    3,
		addressSpace: 1 << 32,
		tlbSize:      65536,
		mna:          5,
		latency:      1,
	}
}

// WithEngine sets the simulation engine the cache runs against.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the cache's tick frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithSize sets the total cache byte capacity; C = size / block_size.
func (b Builder) WithSize(size uint64) Builder {
	b.size = size
	return b
}

// WithBlockSize sets B, the block size in bytes. F is derived as B/2.
func (b Builder) WithBlockSize(blockSize uint64) Builder {
	b.blockSize = blockSize
	return b
}

// WithNumLevels sets L, the number of translation levels including the
// root; the leaf level is L.
func (b Builder) WithNumLevels(numLevels int) Builder {
	b.numLevels = numLevels
	return b
}

// WithAddressSpace sets the byte span the L0T must densely cover. The
// number of L0T slots is derived as ceil(addressSpace / L0T_offset).
func (b Builder) WithAddressSpace(addressSpace uint64) Builder {
	b.addressSpace = addressSpace
	return b
}

// WithTLBSize sets T, the B-TLB capacity.
func (b Builder) WithTLBSize(tlbSize int) Builder {
	b.tlbSize = tlbSize
	return b
}

// WithMNA sets M, the maximum victim-scan attempts per level.
func (b Builder) WithMNA(mna int) Builder {
	b.mna = mna
	return b
}

// WithLatency sets the fixed access delay, in host cycles, applied to
// every request before access() runs.
func (b Builder) WithLatency(latency int) Builder {
	b.latency = latency
	return b
}

// Build constructs the Comp described by the builder.
func (b Builder) Build(name string) *Comp {
	fanout := b.blockSize / 2
	capacity := uint32(b.size / b.blockSize)

	l0tOffset := b.blockSize
	for i := 0; i < b.numLevels-1; i++ {
		l0tOffset *= fanout
	}

	numL0TSlots := b.addressSpace / l0tOffset
	if b.addressSpace%l0tOffset != 0 {
		numL0TSlots++
	}

	cfg := Config{
		BlockSize:   b.blockSize,
		Fanout:      fanout,
		Levels:      b.numLevels,
		NumL0TSlots: numL0TSlots,
		Capacity:    capacity,
		TLBSize:     b.tlbSize,
		MNA:         b.mna,
		Latency:     b.latency,
	}

	return NewComp(name, b.engine, b.freq, cfg)
}
