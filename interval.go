package kord

import "fmt"

// Interval is one of the 48 named intervals from PerfectUnison to
// ThreePerfectOctavesAndMajorSeventh. Each carries an enharmonic distance
// (its position on the circle of fifths, relative to its root) and an
// octave contribution (whole octaves the interval spans).
type Interval int8

const (
	PerfectUnison Interval = iota
	DiminishedSecond
	AugmentedUnison
	MinorSecond
	MajorSecond
	DiminishedThird
	AugmentedSecond
	MinorThird
	MajorThird
	DiminishedFourth
	AugmentedThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	DiminishedSixth
	AugmentedFifth
	MinorSixth
	MajorSixth
	DiminishedSeventh
	AugmentedSixth
	MinorSeventh
	MajorSeventh
	DiminishedOctave
	AugmentedSeventh
	PerfectOctave
	MinorNinth
	MajorNinth
	AugmentedNinth
	DiminishedEleventh
	PerfectEleventh
	AugmentedEleventh
	MinorThirteenth
	MajorThirteenth
	AugmentedThirteenth
	PerfectOctaveAndPerfectFifth
	TwoPerfectOctaves
	TwoPerfectOctavesAndMajorThird
	TwoPerfectOctavesAndPerfectFifth
	TwoPerfectOctavesAndMinorSeventh
	ThreePerfectOctaves
	ThreePerfectOctavesAndMajorSecond
	ThreePerfectOctavesAndMajorThird
	ThreePerfectOctavesAndAugmentedFourth
	ThreePerfectOctavesAndPerfectFifth
	ThreePerfectOctavesAndMinorSixth
	ThreePerfectOctavesAndMinorSeventh
	ThreePerfectOctavesAndMajorSeventh

	intervalCount
)

var intervalNames = [intervalCount]string{
	"PerfectUnison", "DiminishedSecond", "AugmentedUnison", "MinorSecond",
	"MajorSecond", "DiminishedThird", "AugmentedSecond", "MinorThird",
	"MajorThird", "DiminishedFourth", "AugmentedThird", "PerfectFourth",
	"AugmentedFourth", "DiminishedFifth", "PerfectFifth", "DiminishedSixth",
	"AugmentedFifth", "MinorSixth", "MajorSixth", "DiminishedSeventh",
	"AugmentedSixth", "MinorSeventh", "MajorSeventh", "DiminishedOctave",
	"AugmentedSeventh", "PerfectOctave", "MinorNinth", "MajorNinth",
	"AugmentedNinth", "DiminishedEleventh", "PerfectEleventh", "AugmentedEleventh",
	"MinorThirteenth", "MajorThirteenth", "AugmentedThirteenth",
	"PerfectOctaveAndPerfectFifth", "TwoPerfectOctaves", "TwoPerfectOctavesAndMajorThird",
	"TwoPerfectOctavesAndPerfectFifth", "TwoPerfectOctavesAndMinorSeventh",
	"ThreePerfectOctaves", "ThreePerfectOctavesAndMajorSecond",
	"ThreePerfectOctavesAndMajorThird", "ThreePerfectOctavesAndAugmentedFourth",
	"ThreePerfectOctavesAndPerfectFifth", "ThreePerfectOctavesAndMinorSixth",
	"ThreePerfectOctavesAndMinorSeventh", "ThreePerfectOctavesAndMajorSeventh",
}

// enharmonicDistances is each Interval's signed position on the circle of
// fifths, relative to its root.
var enharmonicDistances = [intervalCount]int{
	0, -12, 7, -5, 2, -10, 9, -3, 4, -8, 11, -1,
	6, -6, 1, -11, 8, -4, 3, -9, 10, -2, 5, -7,
	12, 0, -5, 2, 9, -8, -1, 6, -4, 3, 10,
	1, 0, 4, 1, -2, 0, 2, 4, 6, 1, -4, -2, 5,
}

// octaveContributions is the whole-octave span each Interval carries.
var octaveContributions = [intervalCount]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3,
}

// String implements the Stringer interface.
func (i Interval) String() string {
	if !i.IsValid() {
		return fmt.Sprintf("?(%d)", int8(i))
	}
	return intervalNames[i]
}

// IsValid returns true if i is one of the 48 named intervals.
func (i Interval) IsValid() bool {
	return i >= 0 && i < intervalCount
}

// EnharmonicDistance returns i's signed position on the circle of fifths.
func (i Interval) EnharmonicDistance() int {
	return enharmonicDistances[i]
}

// OctaveContribution returns the whole octaves i spans.
func (i Interval) OctaveContribution() int {
	return octaveContributions[i]
}

// AllIntervals is every Interval in declaration order.
var AllIntervals = func() [intervalCount]Interval {
	var all [intervalCount]Interval
	for i := range all {
		all[i] = Interval(i)
	}
	return all
}()

// PrimaryHarmonicSeries is 13 overtones of a note, expressed as Intervals
// ascending from PerfectOctave through ThreePerfectOctavesAndMajorSeventh.
// ThreePerfectOctaves (the eighth harmonic) is not among them.
var PrimaryHarmonicSeries = [13]Interval{
	PerfectOctave,
	PerfectOctaveAndPerfectFifth,
	TwoPerfectOctaves,
	TwoPerfectOctavesAndMajorThird,
	TwoPerfectOctavesAndPerfectFifth,
	TwoPerfectOctavesAndMinorSeventh,
	ThreePerfectOctavesAndMajorSecond,
	ThreePerfectOctavesAndMajorThird,
	ThreePerfectOctavesAndAugmentedFourth,
	ThreePerfectOctavesAndPerfectFifth,
	ThreePerfectOctavesAndMinorSixth,
	ThreePerfectOctavesAndMinorSeventh,
	ThreePerfectOctavesAndMajorSeventh,
}
