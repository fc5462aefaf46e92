package kord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownChordOf(t *testing.T) {
	cases := []struct {
		name  string
		chord Chord
		want  KnownChord
	}{
		{"major", NewChord(DefaultNote(NPC)), KnownChord{Kind: KCMajor}},
		{"minor", NewChord(DefaultNote(NPC)).Minor(), KnownChord{Kind: KCMinor}},
		{"minorMajor7", NewChord(DefaultNote(NPC)).Minor().Major7(), KnownChord{Kind: KCMinorMajor7}},
		{"halfDiminished", NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat5), KnownChord{Kind: KCHalfDiminished, Degree: Seven}},
		{"minorDominantFlat13", NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat13), KnownChord{Kind: KCMinorDominantFlat13, Degree: Seven}},
		{"minorDominantFlat9Flat13", NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat13).WithModifier(Flat9), KnownChord{Kind: KCMinorDominantFlat9Flat13, Degree: Seven}},
		{"augmentedMajor7", NewChord(DefaultNote(NPC)).Augmented().Major7(), KnownChord{Kind: KCAugmentedMajor7}},
		{"augmentedDominantFlat9", NewChord(DefaultNote(NPC)).Augmented().Dominant(Seven).WithModifier(Flat9), KnownChord{Kind: KCAugmentedDominantFlat9, Degree: Seven}},
		{"augmented", NewChord(DefaultNote(NPC)).Augmented(), KnownChord{Kind: KCAugmented}},
		{"major7", NewChord(DefaultNote(NPC)).Major7(), KnownChord{Kind: KCMajor7}},
		{"dominantFlat9", NewChord(DefaultNote(NPC)).Dominant(Seven).WithModifier(Flat9), KnownChord{Kind: KCDominantFlat9, Degree: Seven}},
		{"dominantSharp11", NewChord(DefaultNote(NPC)).Dominant(Seven).WithModifier(Sharp11), KnownChord{Kind: KCDominantSharp11, Degree: Seven}},
		{"dominant", NewChord(DefaultNote(NPC)).Dominant(Seven), KnownChord{Kind: KCDominant, Degree: Seven}},
		{"diminished", NewChord(DefaultNote(NPC)).Diminished(), KnownChord{Kind: KCDiminished}},
		{"sharp11", NewChord(DefaultNote(NPC)).WithModifier(Sharp11), KnownChord{Kind: KCSharp11}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KnownChordOf(tc.chord))
		})
	}
}

func TestChord_HalfDiminished_Notes(t *testing.T) {
	// S1: Cm7b5 -> [C4, Eb4, Gb4, Bb4]
	c := NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat5)
	notes, err := c.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 4)
	assert.Equal(t, NPC, notes[0].NamedPitch)
	assert.Equal(t, NPEFlat, notes[1].NamedPitch)
	assert.Equal(t, NPGFlat, notes[2].NamedPitch)
	assert.Equal(t, NPBFlat, notes[3].NamedPitch)
}

func TestChord_DominantFlat9Sharp11_Notes(t *testing.T) {
	// S2: C7b9#11 -> [C4, E4, G4, Bb4, Db5, F#5]
	c := NewChord(DefaultNote(NPC)).Dominant(Seven).WithModifier(Flat9).WithModifier(Sharp11)
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

func TestChord_AugmentedMajor7_Notes(t *testing.T) {
	// S3: Chord::new(C4).augmented().major7().chord() -> [C4, E4, G#4, B4]
	c := NewChord(DefaultNote(NPC)).Augmented().Major7()
	notes, err := c.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 4)
	assert.Equal(t, NPC, notes[0].NamedPitch)
	assert.Equal(t, NPE, notes[1].NamedPitch)
	assert.Equal(t, NPGSharp, notes[2].NamedPitch)
	assert.Equal(t, NPB, notes[3].NamedPitch)
}

func TestChord_WithSlash(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Minor().Dominant(Nine).WithModifier(Flat5).WithSlash(DefaultNote(NPE))
	notes, err := c.Notes()
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, NPE, notes[0].NamedPitch)
}

func TestChord_Inversion(t *testing.T) {
	base := NewChord(DefaultNote(NPC))
	notes, err := base.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 3)

	inv := base.WithInversion(1)
	invNotes, err := inv.Notes()
	require.NoError(t, err)
	require.Len(t, invNotes, 3)
	assert.Equal(t, notes[1].NamedPitch, invNotes[0].NamedPitch)
}

func TestChord_Crunchy(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).WithExtension(Add9).WithExtension(Add13).WithCrunchy(true)
	notes, err := c.Notes()
	require.NoError(t, err)
	top, err := notes[0].Add(PerfectOctave)
	require.NoError(t, err)
	for _, n := range notes[1:] {
		assert.LessOrEqual(t, n.Frequency(), top.Frequency())
	}
}

func TestChord_Less(t *testing.T) {
	simple := NewChord(DefaultNote(NPC))
	withMod := NewChord(DefaultNote(NPC)).Minor()
	assert.True(t, simple.Less(withMod))
	assert.False(t, withMod.Less(simple))
}

func TestChord_Scale(t *testing.T) {
	c := NewChord(DefaultNote(NPC))
	notes, err := c.Scale()
	require.NoError(t, err)
	require.Len(t, notes, 7)
	assert.Equal(t, NPC, notes[0].NamedPitch)
}

func TestChord_Name(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat5)
	assert.Equal(t, "Cm7(♭5)", c.Name())
	assert.Equal(t, c.Name(), c.String())
}

func TestChord_PreciseName(t *testing.T) {
	c := NewChord(NewNote(NPC, Octave3)).Dominant(Nine).WithInversion(1).WithCrunchy(true)
	assert.Equal(t, "C9@3^1!", c.PreciseName())
}

func TestChord_WithModifier_AugmentedEvictsFlat5AndDiminished(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).WithModifier(Flat5).WithModifier(Diminished).Augmented()
	assert.False(t, c.hasModifier(ModFlat5))
	assert.False(t, c.hasModifier(ModDiminished))
	assert.True(t, c.hasModifier(ModAugmented5))
}

func TestChord_WithModifier_AugmentedRefusesFlat5AndDiminished(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Augmented().Flat5()
	assert.False(t, c.hasModifier(ModFlat5))
	assert.Equal(t, "C+", c.Name())

	c = NewChord(DefaultNote(NPC)).Augmented().Diminished()
	assert.False(t, c.hasModifier(ModDiminished))
}

func TestChord_ConvenienceBuilders(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Seven().Flat9().Sharp11()
	assert.Equal(t, NewChord(DefaultNote(NPC)).Dominant(Seven).WithModifier(Flat9).WithModifier(Sharp11), c)

	hd := NewChord(DefaultNote(NPC)).HalfDiminished()
	assert.Equal(t, KnownChord{Kind: KCHalfDiminished, Degree: Seven}, KnownChordOf(hd))

	sus := NewChord(DefaultNote(NPC)).Sus4().Add9()
	assert.Equal(t, NewChord(DefaultNote(NPC)).WithExtension(Sus4).WithExtension(Add9), sus)
}

func TestChord_WithOctave(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).WithOctave(Octave3)
	assert.Equal(t, Octave3, c.Root.Octave)
	assert.Equal(t, NPC, c.Root.NamedPitch)
}

func TestChord_RelativeScale(t *testing.T) {
	c := NewChord(DefaultNote(NPC))
	assert.Equal(t, KnownChordOf(c).RelativeScale(), c.RelativeScale())
}

func TestChord_Description(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat5)
	assert.Equal(t, KnownChordOf(c).Description(), c.Description())
}

func TestChord_KnownChord(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Minor()
	assert.Equal(t, KnownChord{Kind: KCMinor}, c.KnownChord())
}

func TestChord_FormatWithScaleCandidates(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Dominant(Seven)
	out := c.FormatWithScaleCandidates()
	assert.True(t, strings.HasPrefix(out, c.PreciseName()))
	assert.Contains(t, out, c.Description())
	for _, cand := range c.ScaleCandidates() {
		assert.Contains(t, out, cand.Name())
		assert.Contains(t, out, cand.Reason)
	}
}

func TestChord_PreciseName_RoundTrips(t *testing.T) {
	c := NewChord(DefaultNote(NPC)).Minor().Dominant(Seven).WithModifier(Flat5).WithSlash(DefaultNote(NPE))
	reparsed, err := ParseChord(c.PreciseName())
	require.NoError(t, err)
	assert.Equal(t, KnownChordOf(c), KnownChordOf(reparsed))

	wantNotes, err := c.Notes()
	require.NoError(t, err)
	gotNotes, err := reparsed.Notes()
	require.NoError(t, err)
	assert.Equal(t, wantNotes, gotNotes)
}
