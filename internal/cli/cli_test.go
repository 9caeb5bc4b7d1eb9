package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/Conceptual-Machines/magda-voicer/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEFAULT_KEY", "C")
	t.Setenv("DEFAULT_TOP_NOTE", "B4")

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVoiceCommand(t *testing.T) {
	out, err := runCLI(t, "voice", "2", "5", "1", "--key", "C", "--top", "G4")
	require.NoError(t, err)

	assert.Contains(t, out, "Key of C")
	assert.Contains(t, out, "Dm7")
	assert.Contains(t, out, "G7")
	assert.Contains(t, out, "C4 E4 G3 B3")
}

func TestVoiceCommandDefaults(t *testing.T) {
	out, err := runCLI(t, "voice", "2b7")
	require.NoError(t, err)
	assert.Contains(t, out, "Db7")
	assert.Contains(t, out, "Db4 F4 Ab4 B3")
}

func TestVoiceCommandErrors(t *testing.T) {
	_, err := runCLI(t, "voice")
	assert.Error(t, err)

	_, err = runCLI(t, "voice", "8")
	assert.ErrorIs(t, err, theory.ErrInvalidChordSymbol)

	_, err = runCLI(t, "voice", "1", "--key", "H")
	assert.ErrorIs(t, err, theory.ErrInvalidKey)
}

func TestDiatonicCommand(t *testing.T) {
	out, err := runCLI(t, "diatonic", "--key", "Am")
	require.NoError(t, err)

	assert.Contains(t, out, "A minor")
	for _, symbol := range []string{"Am7", "Bm7b5", "CM7", "Dm7", "Em7", "FM7", "G7"} {
		assert.Contains(t, out, symbol)
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ii-v-i.mid")

	out, err := runCLI(t, "export", path, "2", "5", "1", "--tempo", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 3 chords")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
}

func TestExportCommandNeedsSymbols(t *testing.T) {
	_, err := runCLI(t, "export", filepath.Join(t.TempDir(), "x.mid"))
	assert.Error(t, err)
}

func TestRenderProgression(t *testing.T) {
	out := renderProgression(models.Progression{
		Key: "Eb",
		Chords: []models.VoicedChord{
			{Chord: "1", Symbol: "EbM7", Notes: []string{"Eb4", "G4", "Bb3", "D4"}},
		},
	})

	assert.Contains(t, out, "Key of Eb")
	assert.Contains(t, out, "EbM7")
	assert.Contains(t, out, "Eb4 G4 Bb3 D4")
}

func TestExportCommandRejectsUnknownRhythm(t *testing.T) {
	_, err := runCLI(t, "export", filepath.Join(t.TempDir(), "x.mid"), "1", "--rhythm", "polka")
	assert.Error(t, err)
}
