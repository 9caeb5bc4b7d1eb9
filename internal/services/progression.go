package services

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/Conceptual-Machines/magda-voicer/internal/theory"
)

// ProgressionService voices chord symbols and whole progressions.
// It holds only defaults; every call builds its own key context.
type ProgressionService struct {
	defaultKey     string
	defaultTopNote string
}

// NewProgressionService creates a service with fallback key and top note
func NewProgressionService(defaultKey, defaultTopNote string) *ProgressionService {
	if defaultKey == "" {
		defaultKey = "C"
	}
	if defaultTopNote == "" {
		defaultTopNote = theory.DefaultTopNote
	}
	return &ProgressionService{
		defaultKey:     defaultKey,
		defaultTopNote: defaultTopNote,
	}
}

// Voicer returns a voicer for key, or for the default key when key is empty
func (s *ProgressionService) Voicer(key string) (*theory.Voicer, error) {
	if key == "" {
		key = s.defaultKey
	}
	return theory.NewVoicer(key)
}

// VoiceChord voices a single degree symbol
func (s *ProgressionService) VoiceChord(key string, req models.ChordRequest) (models.VoicedChord, error) {
	v, err := s.Voicer(key)
	if err != nil {
		return models.VoicedChord{}, err
	}
	return s.voice(v, req)
}

// VoiceProgression voices each chord independently, in order.
// The first failing chord aborts the whole progression.
func (s *ProgressionService) VoiceProgression(key string, chords []models.ChordRequest) (models.Progression, error) {
	v, err := s.Voicer(key)
	if err != nil {
		return models.Progression{}, err
	}

	progression := models.Progression{
		Key:    v.Key().String(),
		Chords: make([]models.VoicedChord, 0, len(chords)),
	}
	for i, req := range chords {
		voiced, err := s.voice(v, req)
		if err != nil {
			return models.Progression{}, fmt.Errorf("chord %d: %w", i+1, err)
		}
		progression.Chords = append(progression.Chords, voiced)
	}
	return progression, nil
}

func (s *ProgressionService) voice(v *theory.Voicer, req models.ChordRequest) (models.VoicedChord, error) {
	top := req.TopNote
	if top == "" {
		top = s.defaultTopNote
	}

	voicing, err := v.VoiceChord(req.Chord, top)
	if err != nil {
		return models.VoicedChord{}, err
	}

	return models.VoicedChord{
		Chord:   req.Chord,
		Symbol:  voicing.Chord.Symbol(),
		Root:    string(voicing.Chord.Root),
		Quality: voicing.Chord.Quality.Name(),
		TopNote: voicing.Top.String(),
		Notes:   voicing.Strings(),
		MIDI:    voicing.MIDI(),
	}, nil
}

// Diatonic lists the seven diatonic chords of key
func (s *ProgressionService) Diatonic(key string) (models.KeyOverview, error) {
	v, err := s.Voicer(key)
	if err != nil {
		return models.KeyOverview{}, err
	}

	kc := v.Key()
	overview := models.KeyOverview{
		Key:   kc.String(),
		Tonic: string(kc.Tonic()),
		Mode:  kc.Mode().String(),
	}
	for _, d := range kc.Diatonic() {
		overview.Degrees = append(overview.Degrees, models.DiatonicDegree{
			Degree:  d.Number,
			Root:    string(d.Root),
			Quality: d.Quality.Name(),
			Symbol:  d.Chord().Symbol(),
		})
	}
	return overview, nil
}
