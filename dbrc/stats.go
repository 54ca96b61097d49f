package dbrc

import "github.com/blockcache/dbrc/sim"

// Stats accumulates the counters spec.md names (hits, misses, miss
// latency) plus a cumulative victim-scan counter that makes the victim
// selector's behavior observable from outside the package.
type Stats struct {
	Hits   uint64
	Misses uint64

	// MissLatencies records the host time, in seconds, between a miss
	// being detected and its insertion completing.
	MissLatencies []sim.VTimeInSec

	// VictimScanAttempts mirrors the victim selector's cumulative aged
	// candidate count at the time of the last sample.
	VictimScanAttempts uint64
}

// HitRatio returns hits / (hits + misses), or 0 if there have been no
// accesses yet.
func (s *Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

func (s *Stats) recordHit() {
	s.Hits++
}

// recordMissLatency appends a sampled miss latency. The miss count
// itself is incremented as soon as the miss is detected, not here.
func (s *Stats) recordMissLatency(latency sim.VTimeInSec) {
	s.MissLatencies = append(s.MissLatencies, latency)
}
