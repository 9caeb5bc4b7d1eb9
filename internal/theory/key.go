package theory

import (
	"fmt"
	"strings"
)

// Mode selects the diatonic pattern of a key
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

const degreesPerKey = 7

var modeOffsets = map[Mode][degreesPerKey]int{
	Major: {0, 2, 4, 5, 7, 9, 11},
	Minor: {0, 2, 3, 5, 7, 8, 10},
}

var majorQualities = [degreesPerKey]Quality{Major7, Minor7, Minor7, Major7, Dominant7, Minor7, Minor7Flat5}

// minorShift realigns the major table so the minor tonic lands on m7
const minorShift = 5

func qualitiesFor(m Mode) [degreesPerKey]Quality {
	if m == Major {
		return majorQualities
	}
	var rotated [degreesPerKey]Quality
	for i := range rotated {
		rotated[i] = majorQualities[(i+minorShift)%degreesPerKey]
	}
	return rotated
}

// Degree is one diatonic scale position and its default seventh chord
type Degree struct {
	Number  int // 1-7
	Offset  int // semitones above the tonic
	Root    PitchClass
	Quality Quality
}

// Chord returns the degree's default chord
func (d Degree) Chord() Chord {
	return Chord{Root: d.Root, Quality: d.Quality}
}

// KeyContext holds the tonic-rotated ring and diatonic degrees of one key.
// It is never mutated after construction; build a new one to change key.
type KeyContext struct {
	tonic   PitchClass
	mode    Mode
	ring    Ring
	degrees [degreesPerKey]Degree
}

// NewKeyContext derives the seven diatonic degrees of tonic in mode
func NewKeyContext(tonic PitchClass, mode Mode) (*KeyContext, error) {
	ring, err := Chromatic.Rotate(tonic)
	if err != nil {
		return nil, err
	}

	offsets, ok := modeOffsets[mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidKey, int(mode))
	}
	qualities := qualitiesFor(mode)

	k := &KeyContext{tonic: tonic, mode: mode, ring: ring}
	for i, off := range offsets {
		k.degrees[i] = Degree{
			Number:  i + 1,
			Offset:  off,
			Root:    ring.At(off),
			Quality: qualities[i],
		}
	}
	return k, nil
}

// ParseKey builds a KeyContext from strings like "C", "Eb", "Am" or "Bbminor".
// Without a minor marker the key is major.
func ParseKey(s string) (*KeyContext, error) {
	tonic, rest := splitTonic(strings.TrimSpace(s))
	if _, err := ParsePitchClass(tonic); err != nil {
		return nil, fmt.Errorf("%w: key %q", ErrInvalidKey, s)
	}

	mode := Major
	switch strings.ToLower(rest) {
	case "":
	case "m", "min", "minor":
		mode = Minor
	case "maj", "major":
	default:
		return nil, fmt.Errorf("%w: unknown mode marker %q in %q", ErrInvalidKey, rest, s)
	}

	return NewKeyContext(PitchClass(tonic), mode)
}

// splitTonic takes the letter plus an optional flat off the front of a key string
func splitTonic(s string) (string, string) {
	if len(s) >= 2 && s[1] == 'b' {
		return s[:2], s[2:]
	}
	if len(s) >= 1 {
		return s[:1], s[1:]
	}
	return "", ""
}

// Tonic returns the key's first degree
func (k *KeyContext) Tonic() PitchClass {
	return k.tonic
}

// Mode returns major or minor
func (k *KeyContext) Mode() Mode {
	return k.mode
}

// Ring returns the chromatic ring rotated to the tonic
func (k *KeyContext) Ring() Ring {
	return k.ring
}

// Diatonic returns the seven degrees in order
func (k *KeyContext) Diatonic() []Degree {
	out := make([]Degree, degreesPerKey)
	copy(out, k.degrees[:])
	return out
}

// Degree returns the 1-indexed diatonic degree n
func (k *KeyContext) Degree(n int) (Degree, error) {
	if n < 1 || n > degreesPerKey {
		return Degree{}, fmt.Errorf("%w: degree %d outside 1-%d", ErrInvalidChordSymbol, n, degreesPerKey)
	}
	return k.degrees[n-1], nil
}

// String returns the key in the form ParseKey accepts, e.g. "C" or "Am"
func (k *KeyContext) String() string {
	if k.mode == Minor {
		return string(k.tonic) + "m"
	}
	return string(k.tonic)
}
