package metrics

import (
	"sync/atomic"
	"time"
)

// VoicingStats keeps in-process voicing counters for the metrics endpoint.
// All methods are safe for concurrent use and a nil receiver records nothing.
type VoicingStats struct {
	requests  atomic.Int64
	failures  atomic.Int64
	chords    atomic.Int64
	latencyUs atomic.Int64
}

// VoicingSnapshot is a point-in-time copy of VoicingStats
type VoicingSnapshot struct {
	Requests     int64   `json:"requests"`
	Failures     int64   `json:"failures"`
	ChordsVoiced int64   `json:"chords_voiced"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

func NewVoicingStats() *VoicingStats {
	return &VoicingStats{}
}

// Record counts one voicing request. Chords only count when it succeeded.
func (s *VoicingStats) Record(chordCount int, duration time.Duration, success bool) {
	if s == nil {
		return
	}
	s.requests.Add(1)
	s.latencyUs.Add(duration.Microseconds())
	if !success {
		s.failures.Add(1)
		return
	}
	s.chords.Add(int64(chordCount))
}

func (s *VoicingStats) Snapshot() VoicingSnapshot {
	if s == nil {
		return VoicingSnapshot{}
	}
	snap := VoicingSnapshot{
		Requests:     s.requests.Load(),
		Failures:     s.failures.Load(),
		ChordsVoiced: s.chords.Load(),
	}
	if snap.Requests > 0 {
		snap.AvgLatencyMs = float64(s.latencyUs.Load()) / float64(snap.Requests) / 1000
	}
	return snap
}
