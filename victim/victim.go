// Package victim implements the DBA's victim-selection scan: a circular
// sweep from a rotating cursor that ages blocks toward evictability and
// falls back to the least-reused candidate seen if nothing ages out in
// time.
package victim

import (
	"log"

	"github.com/blockcache/dbrc/dba"
)

// Selector owns VBIR, the cursor that every scan resumes from.
type Selector struct {
	VBIR uint32
	M    int // maximum non-locked candidates considered per scan

	// Attempts is the cumulative count of non-locked candidates aged
	// down across every scan, for external reporting.
	Attempts uint64
}

// New creates a Selector starting at VBIR=0, for reproducibility.
func New(m int) *Selector {
	return &Selector{VBIR: 0, M: m}
}

// SelectVictim walks up to M non-locked candidates starting at VBIR and
// returns an index safe to evict. Locked blocks are skipped and do not
// count against the M attempts. VBIR always advances past whatever was
// examined, regardless of where the scan stopped.
func (s *Selector) SelectVictim(store *dba.Store) uint32 {
	capacity := uint32(len(store.Blocks))

	var (
		smallestRIdx  uint32
		smallestR     = uint8(dba.MaxReuse) + 1
		haveCandidate bool
		attempts      int
		lockedStreak  uint32
	)

	// lockedStreak counts consecutive locked blocks visited since the last
	// non-locked one. A full lap of nothing but locked blocks means every
	// block is locked: select_victim has no safe answer. Gating on the
	// streak rather than total scanned count lets the scan wrap around and
	// keep aging blocks when M is configured at or above capacity.
	for attempts < s.M {
		v := s.VBIR
		s.VBIR = (s.VBIR + 1) % capacity

		block := &store.Blocks[v]
		if block.DUT.Locked {
			lockedStreak++
			if lockedStreak >= capacity {
				log.Panicf("victim: no evictable block found after scanning the entire DBA")
			}

			continue
		}
		lockedStreak = 0

		if !block.DUT.V || !block.DUT.PV || block.DUT.R == 0 {
			return v
		}

		if !haveCandidate || block.DUT.R < smallestR {
			smallestRIdx = v
			smallestR = block.DUT.R
			haveCandidate = true
		}

		block.DUT.R = 0
		attempts++
		s.Attempts++
	}

	return smallestRIdx
}
