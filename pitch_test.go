package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitch_IsValid(t *testing.T) {
	for i := -128; i < 128; i++ {
		p := Pitch(i)
		assert.Equal(t, i >= 0 && i <= int(B), p.IsValid(), "Pitch(%d).IsValid()", i)
	}
}

func TestPitch_String(t *testing.T) {
	expected := []string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}
	for i, want := range expected {
		assert.Equal(t, want, Pitch(i).String())
	}
	assert.Contains(t, Pitch(99).String(), "?")
}

func TestPitch_BaseFrequency(t *testing.T) {
	assert.InDelta(t, 16.35, C.BaseFrequency(), 0.001)
	assert.InDelta(t, 30.87, B.BaseFrequency(), 0.001)
}

func TestPitchFromInt(t *testing.T) {
	p, err := PitchFromInt(2)
	require.NoError(t, err)
	assert.Equal(t, D, p)

	_, err = PitchFromInt(12)
	require.Error(t, err)
	var target *InvalidPitchError
	assert.ErrorAs(t, err, &target)
}

func TestAllPitches(t *testing.T) {
	assert.Len(t, AllPitches, 12)
	for i, p := range AllPitches {
		assert.Equal(t, Pitch(i), p)
	}
}
