package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedPitch_IsValid(t *testing.T) {
	for i := -128; i < 128; i++ {
		np := NamedPitch(i)
		assert.Equal(t, i >= 0 && i < namedPitchCount, np.IsValid(), "NamedPitch(%d).IsValid()", i)
	}
}

func TestNamedPitch_Pitch(t *testing.T) {
	assert.Equal(t, C, NPC.Pitch())
	assert.Equal(t, DFlat, NPDFlat.Pitch())
	assert.Equal(t, C, NPDDoubleFlat.Pitch())
	assert.Equal(t, C, NPBSharp.Pitch())
	assert.Equal(t, B, NPCFlat.Pitch())
}

func TestNamedPitch_Letter(t *testing.T) {
	assert.Equal(t, byte('C'), NPC.Letter())
	assert.Equal(t, byte('F'), NPFSharp.Letter())
}

func TestNamedPitch_Shift(t *testing.T) {
	g, err := NPC.Shift(1)
	require.NoError(t, err)
	assert.Equal(t, NPG, g)

	f, err := NPC.Shift(-1)
	require.NoError(t, err)
	assert.Equal(t, NPF, f)

	_, err = NPC.Shift(100)
	require.Error(t, err)
	var target *OutOfRangeError
	assert.ErrorAs(t, err, &target)
}

func TestNamedPitch_OctaveShiftFamilies(t *testing.T) {
	assert.True(t, NPCFlat.isFlatFamilyOctaveShift())
	assert.True(t, NPDTripleFlat.isFlatFamilyOctaveShift())
	assert.False(t, NPC.isFlatFamilyOctaveShift())

	assert.True(t, NPBSharp.isSharpFamilyOctaveShift())
	assert.True(t, NPATripleSharp.isSharpFamilyOctaveShift())
	assert.False(t, NPB.isSharpFamilyOctaveShift())
}

func TestAllNamedPitches(t *testing.T) {
	assert.Len(t, AllNamedPitches, namedPitchCount)
	assert.Equal(t, NPC, AllNamedPitches[22])
}
