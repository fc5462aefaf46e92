package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAccidental(t *testing.T) {
	d, w, ok := decodeAccidental("♭♭")
	assert.True(t, ok)
	assert.Equal(t, -1, d)
	assert.Equal(t, len("♭"), w)

	_, _, ok = decodeAccidental("5")
	assert.False(t, ok)
}

func TestMatchToken_PrefersLongerLiterals(t *testing.T) {
	action, n, ok := matchToken("maj7b5")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	c := action(Chord{})
	assert.True(t, c.hasModifier(ModMajor7))

	action, n, ok = matchToken("min7")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	c = action(Chord{})
	assert.True(t, c.hasModifier(ModMinor))
}

func TestNormalizeScaleName(t *testing.T) {
	assert.Equal(t, "ionian#5", normalizeScaleName("Ionian ♯5"))
	assert.Equal(t, "dorianb2", normalizeScaleName("Dorian B2"))
}
