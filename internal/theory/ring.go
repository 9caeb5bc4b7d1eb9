package theory

import "fmt"

// Ring is the chromatic scale ordered from some starting pitch class.
// It is an array value, so every rotation is an independent copy.
type Ring [semitonesPerOctave]PitchClass

// Chromatic is the canonical ring starting on C
var Chromatic = Ring{C, Db, D, Eb, E, F, Gb, G, Ab, A, Bb, B}

// PitchRange is the canonical ring realized over octaves 1-4.
// Octave numbers change at C, so position in this range is pitch order.
var PitchRange = Chromatic.Extend()

// Rotate returns a new ring with tonic first
func (r Ring) Rotate(tonic PitchClass) (Ring, error) {
	idx := r.IndexOf(tonic)
	if idx < 0 {
		return Ring{}, fmt.Errorf("%w: %q", ErrInvalidKey, tonic)
	}

	var rotated Ring
	for i := range rotated {
		rotated[i] = r[(idx+i)%semitonesPerOctave]
	}
	return rotated, nil
}

// At returns the pitch class offset semitones above the first element.
// Offsets wrap in both directions.
func (r Ring) At(offset int) PitchClass {
	return r[mod12(offset)]
}

// IndexOf returns the position of pc in the ring, or -1
func (r Ring) IndexOf(pc PitchClass) int {
	for i, p := range r {
		if p == pc {
			return i
		}
	}
	return -1
}

// First returns the ring's starting pitch class
func (r Ring) First() PitchClass {
	return r[0]
}

// Extend realizes the ring over octaves 1-4, octave-major, in ring order
func (r Ring) Extend() Range {
	notes := make([]Note, 0, semitonesPerOctave*highestOctave)
	for octave := lowestOctave; octave <= highestOctave; octave++ {
		for _, pc := range r {
			notes = append(notes, Note{Class: pc, Octave: octave})
		}
	}
	return Range{notes: notes}
}

// Range is a ring realized across several octaves
type Range struct {
	notes []Note
}

// Len returns the number of notes in the range
func (rg Range) Len() int {
	return len(rg.notes)
}

// Notes returns a copy of the range's notes in order
func (rg Range) Notes() []Note {
	out := make([]Note, len(rg.notes))
	copy(out, rg.notes)
	return out
}

// Position returns the index of n in the range, or -1
func (rg Range) Position(n Note) int {
	for i, candidate := range rg.notes {
		if candidate == n {
			return i
		}
	}
	return -1
}

// Contains reports whether n is part of the range
func (rg Range) Contains(n Note) bool {
	return rg.Position(n) >= 0
}

// Lowest returns the first note of the range
func (rg Range) Lowest() Note {
	return rg.notes[0]
}

// SliceBelow returns every note strictly before top
func (rg Range) SliceBelow(top Note) ([]Note, error) {
	pos := rg.Position(top)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %s is outside the range", ErrInvalidNote, top)
	}

	below := make([]Note, pos)
	copy(below, rg.notes[:pos])
	return below, nil
}

func mod12(n int) int {
	m := n % semitonesPerOctave
	if m < 0 {
		m += semitonesPerOctave
	}
	return m
}
