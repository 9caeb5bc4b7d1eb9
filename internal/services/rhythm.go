package services

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRhythm is returned for a rhythm name with no pattern
var ErrUnknownRhythm = errors.New("unknown rhythm")

// patternCycleBeats is the span a pattern's offsets are written against.
// Offsets are scaled so one cycle fills one chord.
const patternCycleBeats = 4.0

// RhythmPattern places chord hits inside one chord's span
type RhythmPattern struct {
	Name string
	// Offsets within a 4-beat cycle
	Offsets []float64
	// Velocity multipliers for accents (1.0 = normal)
	Accents []float64
	// Fraction of the gap to the next hit that a note sounds
	Articulation float64
}

const (
	articulationFull    = 1.0
	articulationHigh    = 0.9
	articulationMedium  = 0.8
	articulationShort   = 0.4
	defaultRhythmName   = "sustain"
	minAccentedVelocity = 1
)

var rhythmPatterns = map[string]RhythmPattern{
	"sustain": {
		Offsets:      []float64{0},
		Accents:      []float64{1.0},
		Articulation: articulationFull,
	},
	"halves": {
		Offsets:      []float64{0, 2},
		Accents:      []float64{1.0, 0.9},
		Articulation: articulationFull,
	},
	"quarters": {
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{1.0, 0.8, 0.9, 0.8},
		Articulation: articulationHigh,
	},
	"eighths": {
		Offsets:      []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		Accents:      []float64{1.0, 0.7, 0.9, 0.7, 0.95, 0.7, 0.9, 0.7},
		Articulation: articulationMedium,
	},
	"swing": {
		// Triplet feel
		Offsets:      []float64{0, 0.67, 1, 1.67, 2, 2.67, 3, 3.67},
		Accents:      []float64{1.0, 0.7, 0.9, 0.7, 0.95, 0.7, 0.9, 0.7},
		Articulation: articulationMedium,
	},
	"charleston": {
		Offsets:      []float64{0, 1.5},
		Accents:      []float64{1.0, 0.85},
		Articulation: articulationHigh,
	},
	"tresillo": {
		// 3+3+2
		Offsets:      []float64{0, 1.5, 3},
		Accents:      []float64{1.0, 0.9, 0.95},
		Articulation: articulationHigh,
	},
	"offbeat": {
		Offsets:      []float64{0.5, 1.5, 2.5, 3.5},
		Accents:      []float64{0.9, 0.85, 0.9, 0.85},
		Articulation: articulationMedium,
	},
	"anticipation": {
		// Push before beats 2 and 4
		Offsets:      []float64{0, 1, 1.75, 3, 3.75},
		Accents:      []float64{1.0, 0.8, 0.9, 0.85, 0.9},
		Articulation: articulationHigh,
	},
	"staccato": {
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{1.0, 0.9, 0.95, 0.9},
		Articulation: articulationShort,
	},
	"legato": {
		Offsets:      []float64{0, 2},
		Accents:      []float64{0.9, 0.85},
		Articulation: articulationFull,
	},
}

// LookupRhythm returns the named pattern; "" means sustain
func LookupRhythm(name string) (RhythmPattern, error) {
	if name == "" {
		name = defaultRhythmName
	}
	p, ok := rhythmPatterns[name]
	if !ok {
		return RhythmPattern{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownRhythm, name, RhythmNames())
	}
	p.Name = name
	return p, nil
}

// RhythmNames lists the available patterns in sorted order
func RhythmNames() []string {
	names := make([]string, 0, len(rhythmPatterns))
	for name := range rhythmPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type rhythmHit struct {
	start    float64
	duration float64
	accent   float64
}

// hits lays the pattern over [start, start+length)
func (p RhythmPattern) hits(start, length float64) []rhythmHit {
	scale := length / patternCycleBeats
	out := make([]rhythmHit, 0, len(p.Offsets))

	for i, offset := range p.Offsets {
		pos := offset * scale
		if pos >= length {
			break
		}

		next := length
		if i+1 < len(p.Offsets) {
			next = p.Offsets[i+1] * scale
		}
		duration := (next - pos) * p.Articulation
		if pos+duration > length {
			duration = length - pos
		}

		accent := 1.0
		if i < len(p.Accents) {
			accent = p.Accents[i]
		}

		out = append(out, rhythmHit{start: start + pos, duration: duration, accent: accent})
	}
	return out
}

func accentVelocity(velocity int, accent float64) int {
	v := int(float64(velocity) * accent)
	if v < minAccentedVelocity {
		return minAccentedVelocity
	}
	if v > maxVelocity {
		return maxVelocity
	}
	return v
}
