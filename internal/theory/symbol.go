package theory

import (
	"fmt"
	"strings"
)

// Accidental shifts a borrowed chord's root by a semitone
type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

func (a Accidental) shift() int {
	switch a {
	case Flat:
		return -1
	case Sharp:
		return 1
	default:
		return 0
	}
}

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	default:
		return ""
	}
}

// ChordSymbol is a parsed degree-based chord request such as "5" or "2b7"
type ChordSymbol struct {
	Degree        int
	Accidental    Accidental
	ForceDominant bool
}

func (s ChordSymbol) String() string {
	out := fmt.Sprintf("%d%s", s.Degree, s.Accidental)
	if s.ForceDominant {
		out += "7"
	}
	return out
}

// ParseChordSymbol parses "<degree 1-7>[b|#][7]".
// Any suffix forces a dominant seventh.
func ParseChordSymbol(s string) (ChordSymbol, error) {
	if s == "" {
		return ChordSymbol{}, fmt.Errorf("%w: empty symbol", ErrInvalidChordSymbol)
	}
	if s[0] < '1' || s[0] > '7' {
		return ChordSymbol{}, fmt.Errorf("%w: %q must start with a degree 1-7", ErrInvalidChordSymbol, s)
	}

	sym := ChordSymbol{Degree: int(s[0] - '0')}
	suffix := s[1:]
	if suffix == "" {
		return sym, nil
	}

	if strings.Contains(suffix, "b") && strings.Contains(suffix, "#") {
		return ChordSymbol{}, fmt.Errorf("%w: %q has both flat and sharp", ErrInvalidChordSymbol, s)
	}

	rest := suffix
	switch rest[0] {
	case 'b':
		sym.Accidental = Flat
		rest = rest[1:]
	case '#':
		sym.Accidental = Sharp
		rest = rest[1:]
	}
	if rest != "" && rest != "7" {
		return ChordSymbol{}, fmt.Errorf("%w: unexpected suffix %q in %q", ErrInvalidChordSymbol, suffix, s)
	}

	sym.ForceDominant = true
	return sym, nil
}

// Chord is a resolved root and quality
type Chord struct {
	Root    PitchClass
	Quality Quality
}

// Symbol returns the lead-sheet name, e.g. "Db7" or "Bm7b5"
func (c Chord) Symbol() string {
	return string(c.Root) + c.Quality.String()
}

// Tones returns the chord's pitch classes in interval order
func (c Chord) Tones() ([]PitchClass, error) {
	return ResolveTones(c.Root, c.Quality)
}

// Resolve turns a parsed symbol into a chord in this key
func (k *KeyContext) Resolve(sym ChordSymbol) (Chord, error) {
	deg, err := k.Degree(sym.Degree)
	if err != nil {
		return Chord{}, err
	}

	if !sym.ForceDominant {
		return deg.Chord(), nil
	}

	// Borrowed dominant: shift the degree's offset a semitone and re-read the ring.
	root := k.ring.At(deg.Offset + sym.Accidental.shift())
	return Chord{Root: root, Quality: Dominant7}, nil
}

// Parse parses and resolves s in one step
func (k *KeyContext) Parse(s string) (Chord, error) {
	sym, err := ParseChordSymbol(s)
	if err != nil {
		return Chord{}, err
	}
	return k.Resolve(sym)
}
