package models

// NoteEvent represents a single musical note with timing and pitch information
type NoteEvent struct {
	MidiNoteNumber int     `json:"midiNoteNumber"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"startBeats"`
	DurationBeats  float64 `json:"durationBeats"`
}

// ChordEvent represents a chord with timing information
type ChordEvent struct {
	ChordSymbol   string  `json:"chordSymbol"`
	StartBeats    float64 `json:"startBeats"`
	DurationBeats float64 `json:"durationBeats"`
}

// DiatonicDegree is one row of a key's diatonic chord table
type DiatonicDegree struct {
	Degree  int    `json:"degree"`
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Symbol  string `json:"symbol"`
}

// KeyOverview lists the diatonic chords of a key
type KeyOverview struct {
	Key     string           `json:"key"`
	Tonic   string           `json:"tonic"`
	Mode    string           `json:"mode"`
	Degrees []DiatonicDegree `json:"degrees"`
}

// ChordRequest asks for one degree symbol voiced under a top note
type ChordRequest struct {
	Chord   string `json:"chord" binding:"required"`
	TopNote string `json:"top_note"`
}

// VoicedChord is a chord symbol resolved and voiced to concrete notes
type VoicedChord struct {
	Chord   string   `json:"chord"`
	Symbol  string   `json:"symbol"`
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	TopNote string   `json:"top_note"`
	Notes   []string `json:"notes"`
	MIDI    []int    `json:"midi"`
}

// Progression is an ordered list of independently voiced chords in one key
type Progression struct {
	Key    string        `json:"key"`
	Chords []VoicedChord `json:"chords"`
}

// ProgressionRequest is the body of the progression endpoints
type ProgressionRequest struct {
	Key           string         `json:"key"`
	Chords        []ChordRequest `json:"chords" binding:"required,min=1,max=256,dive"`
	BeatsPerChord float64        `json:"beats_per_chord" binding:"omitempty,gt=0,lte=64"`
	TempoBPM      int            `json:"tempo_bpm" binding:"omitempty,gt=0,lte=400"`
	Velocity      int            `json:"velocity"`
	Rhythm        string         `json:"rhythm"`
	Arpeggiate    bool           `json:"arpeggiate"`
}

// ProgressionResponse carries the voiced progression and its playback events
type ProgressionResponse struct {
	Progression
	Events      []NoteEvent  `json:"events"`
	ChordEvents []ChordEvent `json:"chord_events"`
}

// VoicingRequest is the body of the single-chord endpoint
type VoicingRequest struct {
	Key     string `json:"key"`
	Chord   string `json:"chord" binding:"required"`
	TopNote string `json:"top_note"`
}
