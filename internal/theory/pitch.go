package theory

import (
	"fmt"
	"strconv"
)

// PitchClass is a note name without octave, always spelled with flats
type PitchClass string

const (
	C  PitchClass = "C"
	Db PitchClass = "Db"
	D  PitchClass = "D"
	Eb PitchClass = "Eb"
	E  PitchClass = "E"
	F  PitchClass = "F"
	Gb PitchClass = "Gb"
	G  PitchClass = "G"
	Ab PitchClass = "Ab"
	A  PitchClass = "A"
	Bb PitchClass = "Bb"
	B  PitchClass = "B"
)

const (
	semitonesPerOctave = 12
	lowestOctave       = 1
	highestOctave      = 4
)

// ParsePitchClass validates a flat-spelled pitch class name
func ParsePitchClass(s string) (PitchClass, error) {
	pc := PitchClass(s)
	if Chromatic.IndexOf(pc) < 0 {
		return "", fmt.Errorf("%w: %q is not one of %v", ErrInvalidKey, s, Chromatic)
	}
	return pc, nil
}

// Note is a pitch class in a specific octave (1-4)
type Note struct {
	Class  PitchClass
	Octave int
}

// ParseNote parses "<pitch class><octave digit>", e.g. "Eb3"
func ParseNote(s string) (Note, error) {
	if len(s) < 2 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, s)
	}

	octave, err := strconv.Atoi(s[len(s)-1:])
	if err != nil || octave < lowestOctave || octave > highestOctave {
		return Note{}, fmt.Errorf("%w: %q has no octave in %d-%d", ErrInvalidNote, s, lowestOctave, highestOctave)
	}

	pc := PitchClass(s[:len(s)-1])
	if Chromatic.IndexOf(pc) < 0 {
		return Note{}, fmt.Errorf("%w: %q has unknown pitch class", ErrInvalidNote, s)
	}

	return Note{Class: pc, Octave: octave}, nil
}

func (n Note) String() string {
	return string(n.Class) + strconv.Itoa(n.Octave)
}

// MIDI returns the MIDI key number using the C4 = 60 convention
func (n Note) MIDI() int {
	return (n.Octave+1)*semitonesPerOctave + Chromatic.IndexOf(n.Class)
}

// NoteStrings formats notes as "<pc><octave>" strings
func NoteStrings(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}
