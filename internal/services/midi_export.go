package services

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	defaultTempoBPM = 60
	midiChannel     = 0
	// maxTick is the largest absolute tick a variable-length delta can carry
	maxTick = 0x0FFFFFFF
)

// ErrTimelineTooLong is returned when a note ends past the last encodable tick
var ErrTimelineTooLong = errors.New("timeline exceeds MIDI file length")

type tickEvent struct {
	tick     uint32
	noteOff  bool
	key      uint8
	velocity uint8
}

// WriteMIDI writes note events as a single-track Standard MIDI File
func WriteMIDI(w io.Writer, events []models.NoteEvent, tempoBPM int, trackName string) error {
	if tempoBPM <= 0 {
		tempoBPM = defaultTempoBPM
	}

	timeline, err := toTicks(events)
	if err != nil {
		return err
	}

	var track smf.Track
	if trackName != "" {
		track.Add(0, smf.MetaTrackSequenceName(trackName))
	}
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(float64(tempoBPM)))

	var last uint32
	for _, ev := range timeline {
		delta := ev.tick - last
		last = ev.tick
		if ev.noteOff {
			track.Add(delta, midi.NoteOff(midiChannel, ev.key))
		} else {
			track.Add(delta, midi.NoteOn(midiChannel, ev.key, ev.velocity))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}

// toTicks converts beat-based events to absolute ticks, note-offs first on ties
func toTicks(events []models.NoteEvent) ([]tickEvent, error) {
	timeline := make([]tickEvent, 0, len(events)*2)
	for _, ev := range events {
		if ev.MidiNoteNumber < 0 || ev.MidiNoteNumber > 127 {
			return nil, fmt.Errorf("MIDI note %d out of range", ev.MidiNoteNumber)
		}
		if ev.StartBeats < 0 || ev.DurationBeats <= 0 {
			return nil, fmt.Errorf("invalid timing for note %d: start %.2f, duration %.2f",
				ev.MidiNoteNumber, ev.StartBeats, ev.DurationBeats)
		}

		if (ev.StartBeats+ev.DurationBeats)*ticksPerQuarter > maxTick {
			return nil, fmt.Errorf("%w: note %d ends at beat %.2f",
				ErrTimelineTooLong, ev.MidiNoteNumber, ev.StartBeats+ev.DurationBeats)
		}

		start := beatsToTicks(ev.StartBeats)
		end := beatsToTicks(ev.StartBeats + ev.DurationBeats)
		if end <= start {
			end = start + 1
		}
		key := uint8(ev.MidiNoteNumber)
		timeline = append(timeline,
			tickEvent{tick: start, key: key, velocity: clampVelocity(ev.Velocity)},
			tickEvent{tick: end, noteOff: true, key: key},
		)
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		if timeline[i].tick != timeline[j].tick {
			return timeline[i].tick < timeline[j].tick
		}
		return timeline[i].noteOff && !timeline[j].noteOff
	})
	return timeline, nil
}

func beatsToTicks(beats float64) uint32 {
	return uint32(beats*ticksPerQuarter + 0.5)
}

func clampVelocity(v int) uint8 {
	switch {
	case v <= 0:
		return defaultVelocity
	case v > maxVelocity:
		return maxVelocity
	default:
		return uint8(v)
	}
}
