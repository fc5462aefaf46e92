package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(octave Octave) Note { return Note{NamedPitch: NPC, Octave: octave} }

func TestNote_String(t *testing.T) {
	assert.Equal(t, "C4", DefaultNote(NPC).String())
	assert.Equal(t, "C♯4", DefaultNote(NPCSharp).String())
}

func TestNote_Name(t *testing.T) {
	n := DefaultNote(NPCSharp)
	assert.Equal(t, n.String(), n.Name())
}

func TestNote_Frequency(t *testing.T) {
	assert.InDelta(t, 261.6, c(Octave4).Frequency(), 0.5)
}

func TestNote_Frequency_SpecialOctaveFamilies(t *testing.T) {
	// B# in octave 3 sounds like C4.
	bSharp3 := Note{NamedPitch: NPBSharp, Octave: Octave3}
	assert.InDelta(t, c(Octave4).Frequency(), bSharp3.Frequency(), 0.01)

	// Cb in octave 4 sounds like B3.
	cFlat4 := Note{NamedPitch: NPCFlat, Octave: Octave4}
	b3 := Note{NamedPitch: NPB, Octave: Octave3}
	assert.InDelta(t, b3.Frequency(), cFlat4.Frequency(), 0.01)
}

func TestNote_Add(t *testing.T) {
	root := c(Octave4)

	cases := []struct {
		iv   Interval
		want Note
	}{
		{PerfectUnison, Note{NPC, Octave4}},
		{DiminishedSecond, Note{NPDDoubleFlat, Octave4}},
		{AugmentedUnison, Note{NPCSharp, Octave4}},
		{MinorSecond, Note{NPDFlat, Octave4}},
		{MajorSecond, Note{NPD, Octave4}},
		{PerfectOctave, Note{NPC, Octave5}},
	}

	for _, tc := range cases {
		got, err := root.Add(tc.iv)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "C4 + %s", tc.iv)
	}
}

func TestNote_Add_CancelsWrapOnSharpFamily(t *testing.T) {
	// B3 + AugmentedUnison lands on B#, whose pitch class (C) is lower than
	// B's, triggering an ordinary wrap to octave 4 — but B# reads as one
	// octave higher in frequency() already, so the special-octave
	// correction cancels the wrap back to octave 3.
	root := Note{NamedPitch: NPB, Octave: Octave3}
	got, err := root.Add(AugmentedUnison)
	require.NoError(t, err)
	assert.Equal(t, NPBSharp, got.NamedPitch)
	assert.Equal(t, Octave3, got.Octave)
}

func TestNote_Sub(t *testing.T) {
	root := c(Octave4)

	got, err := root.Sub(MajorSecond)
	require.NoError(t, err)
	assert.Equal(t, Note{NPBFlat, Octave3}, got)

	got, err = root.Sub(PerfectOctave)
	require.NoError(t, err)
	assert.Equal(t, Note{NPC, Octave3}, got)
}

func TestNote_IntervalTo(t *testing.T) {
	low := c(Octave4)
	high := Note{NamedPitch: NPG, Octave: Octave4}

	iv, err := low.IntervalTo(high)
	require.NoError(t, err)
	assert.Equal(t, PerfectFifth, iv)

	// Order shouldn't matter: the result is always the ascending interval.
	iv2, err := high.IntervalTo(low)
	require.NoError(t, err)
	assert.Equal(t, PerfectFifth, iv2)
}

func TestNote_Compare(t *testing.T) {
	low := c(Octave3)
	high := c(Octave4)
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.True(t, low.Less(high))
}

func TestNote_IDIndex(t *testing.T) {
	assert.Equal(t, 12*4, c(Octave4).IDIndex())
	assert.Equal(t, 12*4+2, Note{NamedPitch: NPD, Octave: Octave4}.IDIndex())
}

func TestIDMask(t *testing.T) {
	notes := []Note{c(Octave4), Note{NamedPitch: NPE, Octave: Octave4}}
	mask := IDMask(notes)
	id0, id1 := notes[0].ID(), notes[1].ID()
	assert.Equal(t, NoteID{id0[0] | id1[0], id0[1] | id1[1]}, mask)
}

func TestNote_ID_HighOctaveUsesSecondWord(t *testing.T) {
	n := Note{NamedPitch: NPC, Octave: Octave10} // IDIndex 120, past the first uint64 word
	id := n.ID()
	assert.Equal(t, uint64(0), id[0])
	assert.NotZero(t, id[1])
}

func TestNote_PrimaryHarmonicSeries(t *testing.T) {
	series := c(Octave4).PrimaryHarmonicSeries()
	require.Len(t, series, 13)
	assert.Equal(t, Note{NPC, Octave5}, series[0])
}

func TestTransposeNote(t *testing.T) {
	notes, err := TransposeNote(c(Octave4), MajorThird, PerfectFifth)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, Note{NPE, Octave4}, notes[0])
	assert.Equal(t, Note{NPG, Octave4}, notes[1])
}

func TestMeasureIntervals(t *testing.T) {
	ivs, err := MeasureIntervals(c(Octave4), Note{NPE, Octave4}, Note{NPG, Octave4})
	require.NoError(t, err)
	assert.Equal(t, []Interval{MajorThird, PerfectFifth}, ivs)
}

func TestNegate(t *testing.T) {
	root := c(Octave4)
	// E (4 semitones above root) reflects to Ab (4 semitones below root),
	// matching classical negative harmony.
	third := Note{NamedPitch: NPE, Octave: Octave4}
	neg := Negate(root, third)
	require.Len(t, neg, 1)
	assert.Equal(t, AFlat, neg[0].Pitch())

	// A note equal to root in pitch class is its own negation.
	same := Negate(root, root)
	assert.Equal(t, root, same[0])
}

func TestClosestNote(t *testing.T) {
	n := ClosestNote(440.0)
	assert.Equal(t, A, n.Pitch())
	assert.Equal(t, Octave4, n.Octave)
}

func TestDefaultNote(t *testing.T) {
	n := DefaultNote(NPG)
	assert.Equal(t, DefaultOctave, n.Octave)
	assert.Equal(t, NPG, n.NamedPitch)
}
