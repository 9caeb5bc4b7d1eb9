package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roots(degrees []Degree) []PitchClass {
	out := make([]PitchClass, len(degrees))
	for i, d := range degrees {
		out[i] = d.Root
	}
	return out
}

func qualities(degrees []Degree) []Quality {
	out := make([]Quality, len(degrees))
	for i, d := range degrees {
		out[i] = d.Quality
	}
	return out
}

func TestDiatonicCMajor(t *testing.T) {
	k, err := NewKeyContext(C, Major)
	require.NoError(t, err)

	degrees := k.Diatonic()
	require.Len(t, degrees, 7)
	assert.Equal(t, []PitchClass{C, D, E, F, G, A, B}, roots(degrees))
	assert.Equal(t,
		[]Quality{Major7, Minor7, Minor7, Major7, Dominant7, Minor7, Minor7Flat5},
		qualities(degrees))

	for i, d := range degrees {
		assert.Equal(t, i+1, d.Number)
	}
}

func TestDiatonicCMinor(t *testing.T) {
	k, err := NewKeyContext(C, Minor)
	require.NoError(t, err)

	degrees := k.Diatonic()
	assert.Equal(t, []PitchClass{C, D, Eb, F, G, Ab, Bb}, roots(degrees))
	assert.Equal(t,
		[]Quality{Minor7, Minor7Flat5, Major7, Minor7, Minor7, Major7, Dominant7},
		qualities(degrees))
}

func TestDiatonicOtherKeys(t *testing.T) {
	tests := []struct {
		key   string
		roots []PitchClass
	}{
		{key: "Eb", roots: []PitchClass{Eb, F, G, Ab, Bb, C, D}},
		{key: "D", roots: []PitchClass{D, E, Gb, G, A, B, Db}},
		{key: "Am", roots: []PitchClass{A, B, C, D, E, F, G}},
		{key: "Bbminor", roots: []PitchClass{Bb, C, Db, Eb, F, Gb, Ab}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, err := ParseKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.roots, roots(k.Diatonic()))
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input string
		tonic PitchClass
		mode  Mode
	}{
		{input: "C", tonic: C, mode: Major},
		{input: "Cm", tonic: C, mode: Minor},
		{input: "Eb", tonic: Eb, mode: Major},
		{input: "Ebm", tonic: Eb, mode: Minor},
		{input: "Bb", tonic: Bb, mode: Major},
		{input: "Bm", tonic: B, mode: Minor},
		{input: "Gmaj", tonic: G, mode: Major},
		{input: " Fmin ", tonic: F, mode: Minor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.tonic, k.Tonic())
			assert.Equal(t, tt.mode, k.Mode())
		})
	}
}

func TestParseKeyRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "H", "C#", "Cx", "c", "Dbdorian"} {
		_, err := ParseKey(input)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", input)
	}
}

func TestKeyString(t *testing.T) {
	k, err := ParseKey("Abminor")
	require.NoError(t, err)
	assert.Equal(t, "Abm", k.String())
	assert.Equal(t, Ab, k.Ring().First())
}

func TestDegreeOutOfRange(t *testing.T) {
	k, err := NewKeyContext(G, Major)
	require.NoError(t, err)

	_, err = k.Degree(0)
	assert.ErrorIs(t, err, ErrInvalidChordSymbol)
	_, err = k.Degree(8)
	assert.ErrorIs(t, err, ErrInvalidChordSymbol)

	d, err := k.Degree(5)
	require.NoError(t, err)
	assert.Equal(t, Chord{Root: D, Quality: Dominant7}, d.Chord())
}

func TestDiatonicReturnsCopy(t *testing.T) {
	k, err := NewKeyContext(C, Major)
	require.NoError(t, err)

	degrees := k.Diatonic()
	degrees[0].Root = Gb
	assert.Equal(t, C, k.Diatonic()[0].Root)
}
