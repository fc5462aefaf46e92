package kord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_IsValid(t *testing.T) {
	for i := -128; i < 128; i++ {
		iv := Interval(i)
		assert.Equal(t, i >= 0 && i < int(intervalCount), iv.IsValid(), "Interval(%d).IsValid()", i)
	}
}

func TestInterval_EnharmonicDistance(t *testing.T) {
	assert.Equal(t, 0, PerfectUnison.EnharmonicDistance())
	assert.Equal(t, 1, PerfectFifth.EnharmonicDistance())
	assert.Equal(t, -5, MinorSecond.EnharmonicDistance())
	assert.Equal(t, 4, MajorThird.EnharmonicDistance())
}

func TestInterval_OctaveContribution(t *testing.T) {
	assert.Equal(t, 0, MajorSeventh.OctaveContribution())
	assert.Equal(t, 1, PerfectOctave.OctaveContribution())
	assert.Equal(t, 3, ThreePerfectOctaves.OctaveContribution())
}

func TestAllIntervals(t *testing.T) {
	assert.Len(t, AllIntervals, int(intervalCount))
	for i, iv := range AllIntervals {
		assert.Equal(t, Interval(i), iv)
	}
}

func TestPrimaryHarmonicSeries(t *testing.T) {
	assert.Len(t, PrimaryHarmonicSeries, 13)
	assert.Equal(t, PerfectOctave, PrimaryHarmonicSeries[0])
	assert.Equal(t, ThreePerfectOctavesAndMajorSeventh, PrimaryHarmonicSeries[12])
}
