package theory

import "fmt"

// DefaultTopNote is used when a caller gives no ceiling
const DefaultTopNote = "B4"

// Voicing is one chord symbol rendered to concrete notes
type Voicing struct {
	Symbol string
	Chord  Chord
	Top    Note
	Notes  []Note
}

// Strings returns the notes as "<pc><octave>" strings
func (v Voicing) Strings() []string {
	return NoteStrings(v.Notes)
}

// MIDI returns the notes as MIDI key numbers
func (v Voicing) MIDI() []int {
	out := make([]int, len(v.Notes))
	for i, n := range v.Notes {
		out[i] = n.MIDI()
	}
	return out
}

// Voicer chains symbol parsing, tone lookup and octave assignment for one key.
// A Voicer holds no mutable state and can be shared between goroutines.
type Voicer struct {
	key *KeyContext
}

// NewVoicer builds a voicer for a key string such as "C" or "Am"
func NewVoicer(key string) (*Voicer, error) {
	kc, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return &Voicer{key: kc}, nil
}

// Key returns the voicer's key context
func (v *Voicer) Key() *KeyContext {
	return v.key
}

// VoiceChord voices a degree symbol under topNote ("" means DefaultTopNote)
func (v *Voicer) VoiceChord(symbol, topNote string) (Voicing, error) {
	if topNote == "" {
		topNote = DefaultTopNote
	}

	top, err := ParseNote(topNote)
	if err != nil {
		return Voicing{}, err
	}

	chord, err := v.key.Parse(symbol)
	if err != nil {
		return Voicing{}, err
	}

	tones, err := chord.Tones()
	if err != nil {
		return Voicing{}, err
	}

	notes, err := AssignOctaves(tones, top)
	if err != nil {
		return Voicing{}, fmt.Errorf("voicing %s (%s) in %s: %w", symbol, chord.Symbol(), v.key, err)
	}

	return Voicing{Symbol: symbol, Chord: chord, Top: top, Notes: notes}, nil
}
