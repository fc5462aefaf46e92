package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRootPitch(t *testing.T) {
	p, n, err := parseRootPitch("Db7")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, NPDFlat, p)

	_, _, err = parseRootPitch("Hmaj7")
	assert.Error(t, err)
}

func TestParseNote(t *testing.T) {
	n, err := ParseNote("C#4")
	require.NoError(t, err)
	assert.Equal(t, NPCSharp, n.NamedPitch)
	assert.Equal(t, Octave4, n.Octave)

	n, err = ParseNote("Bb")
	require.NoError(t, err)
	assert.Equal(t, NPBFlat, n.NamedPitch)
	assert.Equal(t, DefaultOctave, n.Octave)

	_, err = ParseNote("H4")
	assert.Error(t, err)
}

func TestParseChord_HalfDiminished(t *testing.T) {
	c, err := ParseChord("Cm7b5")
	require.NoError(t, err)
	assert.Equal(t, KnownChord{Kind: KCHalfDiminished, Degree: Seven}, KnownChordOf(c))

	notes, err := c.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 4)
	assert.Equal(t, NPC, notes[0].NamedPitch)
	assert.Equal(t, NPEFlat, notes[1].NamedPitch)
	assert.Equal(t, NPGFlat, notes[2].NamedPitch)
	assert.Equal(t, NPBFlat, notes[3].NamedPitch)
}

func TestParseChord_DominantFlat9Sharp11(t *testing.T) {
	c, err := ParseChord("C7b9#11")
	require.NoError(t, err)
	assert.Equal(t, KnownChord{Kind: KCDominantFlat9, Degree: Seven}, KnownChordOf(c))

	notes, err := c.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 6)
	assert.Equal(t, NPC, notes[0].NamedPitch)
	assert.Equal(t, NPE, notes[1].NamedPitch)
	assert.Equal(t, NPG, notes[2].NamedPitch)
	assert.Equal(t, NPBFlat, notes[3].NamedPitch)
	assert.Equal(t, NPDFlat, notes[4].NamedPitch)
	assert.Equal(t, NPFSharp, notes[5].NamedPitch)
}

func TestParseChord_SlashOctaveInversionCrunchy(t *testing.T) {
	c, err := ParseChord("Cm9/Eb@3^1!")
	require.NoError(t, err)
	require.NotNil(t, c.Slash)
	assert.Equal(t, NPEFlat, c.Slash.NamedPitch)
	assert.Equal(t, Octave3, c.Root.Octave)
	assert.Equal(t, uint8(1), c.Inversion)
	assert.True(t, c.Crunchy)
}

func TestParseChord_Parenthesized(t *testing.T) {
	c, err := ParseChord("C7(b9)")
	require.NoError(t, err)
	assert.Equal(t, KnownChord{Kind: KCDominantFlat9, Degree: Seven}, KnownChordOf(c))
}

func TestParseChord_InvalidToken(t *testing.T) {
	_, err := ParseChord("Cxyz")
	assert.Error(t, err)
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("Db major")
	require.NoError(t, err)
	assert.Equal(t, NPDFlat, s.Root.NamedPitch)
	assert.Equal(t, Major, s.Kind)

	notes, err := s.Notes()
	require.NoError(t, err)
	letters := make(map[byte]bool)
	for _, n := range notes {
		letters[n.NamedPitch.Letter()] = true
	}
	assert.Len(t, letters, 7)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("D dorian")
	require.NoError(t, err)
	assert.Equal(t, NPD, m.Root.NamedPitch)
	assert.Equal(t, Dorian, m.Kind)
}

func TestParseMode_SymbolInsensitive(t *testing.T) {
	m, err := ParseMode("C ionian #5")
	require.NoError(t, err)
	assert.Equal(t, IonianSharp5, m.Kind)
}

func TestParse_PrecedenceScaleOverChord(t *testing.T) {
	p, err := Parse("C major")
	require.NoError(t, err)
	assert.Equal(t, ParsedScale, p.Kind)
}

func TestParse_FallsBackToChord(t *testing.T) {
	p, err := Parse("Cmaj7")
	require.NoError(t, err)
	assert.Equal(t, ParsedChord, p.Kind)
}

func TestParseWithType_ForcesChord(t *testing.T) {
	p, err := ParseWithType("Cm", ParsedChord)
	require.NoError(t, err)
	assert.Equal(t, ParsedChord, p.Kind)
}
