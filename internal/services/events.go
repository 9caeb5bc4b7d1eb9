package services

import (
	"github.com/Conceptual-Machines/magda-voicer/internal/models"
)

const (
	defaultBeatsPerChord = 1.0
	defaultVelocity      = 100
	maxVelocity          = 127
)

// EventOptions controls how a progression is laid out in time
type EventOptions struct {
	BeatsPerChord float64
	Velocity      int
	// Rhythm names a comping pattern; "" holds each chord for its full span
	Rhythm string
	// Arpeggiate plays one chord tone per hit instead of the whole chord
	Arpeggiate bool
}

func (o EventOptions) withDefaults() EventOptions {
	if o.BeatsPerChord <= 0 {
		o.BeatsPerChord = defaultBeatsPerChord
	}
	if o.Velocity <= 0 {
		o.Velocity = defaultVelocity
	}
	if o.Velocity > maxVelocity {
		o.Velocity = maxVelocity
	}
	return o
}

// ToNoteEvents lays chords out back to back, BeatsPerChord beats each.
// Inside a chord's span notes follow the rhythm pattern.
func ToNoteEvents(p models.Progression, opts EventOptions) ([]models.NoteEvent, []models.ChordEvent, error) {
	opts = opts.withDefaults()

	pattern, err := LookupRhythm(opts.Rhythm)
	if err != nil {
		return nil, nil, err
	}

	noteEvents := make([]models.NoteEvent, 0, len(p.Chords)*4*len(pattern.Offsets))
	chordEvents := make([]models.ChordEvent, 0, len(p.Chords))
	currentBeat := 0.0

	for _, chord := range p.Chords {
		chordEvents = append(chordEvents, models.ChordEvent{
			ChordSymbol:   chord.Symbol,
			StartBeats:    currentBeat,
			DurationBeats: opts.BeatsPerChord,
		})

		for i, hit := range pattern.hits(currentBeat, opts.BeatsPerChord) {
			notes := chord.MIDI
			if opts.Arpeggiate && len(notes) > 0 {
				notes = notes[i%len(notes) : i%len(notes)+1]
			}

			velocity := accentVelocity(opts.Velocity, hit.accent)
			for _, midiNote := range notes {
				noteEvents = append(noteEvents, models.NoteEvent{
					MidiNoteNumber: midiNote,
					Velocity:       velocity,
					StartBeats:     hit.start,
					DurationBeats:  hit.duration,
				})
			}
		}

		currentBeat += opts.BeatsPerChord
	}

	return noteEvents, chordEvents, nil
}
