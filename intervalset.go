package kord

import "fmt"

// ScaleKind is one of the 11 scale types with an explicit, non-derived
// interval list.
type ScaleKind byte

const (
	Major ScaleKind = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
	WholeTone
	Chromatic
	DiminishedWholeHalf
	DiminishedHalfWhole
	MajorPentatonic
	MinorPentatonic
	Blues

	scaleKindCount
)

var scaleKindNames = [scaleKindCount]string{
	"major", "natural minor", "harmonic minor", "melodic minor", "whole tone",
	"chromatic", "diminished (whole-half)", "diminished (half-whole)",
	"major pentatonic", "minor pentatonic", "blues",
}

var scaleKindDescriptions = [scaleKindCount]string{
	"major scale, ionian mode parent",
	"natural minor scale, aeolian mode parent",
	"harmonic minor scale, raised seventh degree",
	"melodic minor scale, raised sixth and seventh degrees",
	"whole tone scale, all whole steps",
	"chromatic scale, all twelve semitones",
	"diminished scale, whole-half (W-H) pattern, fully diminished 7th chord parent",
	"diminished scale, half-whole (H-W) pattern, dominant 7♭9 (flat 9) chord parent",
	"major pentatonic scale, five-note major scale without 4th and 7th",
	"minor pentatonic scale, five-note minor scale without 2nd and 6th",
	"blues scale, minor pentatonic with added ♯4 (blue note)",
}

var scaleKindIntervals = [scaleKindCount][]Interval{
	Major:          {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	NaturalMinor:   {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	HarmonicMinor:  {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MajorSeventh},
	MelodicMinor:   {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	WholeTone:      {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, AugmentedFifth, AugmentedSixth},
	Chromatic: {
		PerfectUnison, MinorSecond, MajorSecond, MinorThird, MajorThird, PerfectFourth,
		AugmentedFourth, PerfectFifth, MinorSixth, MajorSixth, MinorSeventh, MajorSeventh,
	},
	DiminishedWholeHalf: {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, DiminishedFifth, MinorSixth, DiminishedSeventh, MajorSeventh},
	DiminishedHalfWhole: {PerfectUnison, MinorSecond, MinorThird, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MinorSeventh},
	MajorPentatonic:     {PerfectUnison, MajorSecond, MajorThird, PerfectFifth, MajorSixth},
	MinorPentatonic:     {PerfectUnison, MinorThird, PerfectFourth, PerfectFifth, MinorSeventh},
	Blues:               {PerfectUnison, MinorThird, PerfectFourth, AugmentedFourth, PerfectFifth, MinorSeventh},
}

// String implements the Stringer interface.
func (s ScaleKind) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("?(%d)", byte(s))
	}
	return scaleKindNames[s]
}

// IsValid returns true if s is one of the 11 scale kinds.
func (s ScaleKind) IsValid() bool {
	return s < scaleKindCount
}

// Description returns a human-readable description of s.
func (s ScaleKind) Description() string {
	return scaleKindDescriptions[s]
}

// Intervals returns the intervals defining s, from the root.
func (s ScaleKind) Intervals() []Interval {
	return scaleKindIntervals[s]
}

// AllScaleKinds is every ScaleKind in declaration order.
var AllScaleKinds = func() [scaleKindCount]ScaleKind {
	var all [scaleKindCount]ScaleKind
	for i := range all {
		all[i] = ScaleKind(i)
	}
	return all
}()

// ModeKind is one of the 19 modes with an explicit, non-derived interval
// list: the 7 modes of the major scale, plus the 6 non-root modes each of
// harmonic minor and melodic minor (their root modes are HarmonicMinor and
// MelodicMinor themselves, under ScaleKind).
type ModeKind byte

const (
	Ionian ModeKind = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian

	// Modes of harmonic minor (degrees 2-7; degree 1 is ScaleKind.HarmonicMinor).
	LocrianNatural6
	IonianSharp5
	DorianSharp4
	PhrygianDominant
	LydianSharp2
	Ultralocrian

	// Modes of melodic minor (degrees 2-7; degree 1 is ScaleKind.MelodicMinor).
	DorianFlat2
	LydianAugmented
	LydianDominant
	MixolydianFlat6
	LocrianNatural2
	Altered

	modeKindCount
)

var modeKindNames = [modeKindCount]string{
	"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian",
	"locrian natural 6", "ionian #5", "dorian #4", "phrygian dominant", "lydian #2", "ultralocrian",
	"dorian b2", "lydian augmented", "lydian dominant", "mixolydian b6", "locrian natural 2", "altered",
}

var modeKindDescriptions = [modeKindCount]string{
	"ionian, 1st mode of major scale, major scale",
	"dorian, 2nd mode of major scale, minor with raised 6th",
	"phrygian, 3rd mode of major scale, minor with lowered 2nd",
	"lydian, 4th mode of major scale, major with raised 4th",
	"mixolydian, 5th mode of major scale, major with lowered 7th",
	"aeolian, 6th mode of major scale, natural minor",
	"locrian, 7th mode of major scale, diminished, half-diminished chord scale",
	"locrian natural 6, 2nd mode of harmonic minor",
	"ionian sharp 5, 3rd mode of harmonic minor, augmented major",
	"dorian sharp 4, 4th mode of harmonic minor, ukrainian dorian",
	"phrygian dominant, 5th mode of harmonic minor, spanish phrygian",
	"lydian sharp 2, 6th mode of harmonic minor",
	"ultralocrian, 7th mode of harmonic minor, superlocrian double-flat 7",
	"dorian flat 2, 2nd mode of melodic minor, phrygian natural 6",
	"lydian augmented, 3rd mode of melodic minor",
	"lydian dominant, 4th mode of melodic minor, acoustic scale, overtone scale",
	"mixolydian flat 6, 5th mode of melodic minor, aeolian dominant",
	"locrian natural 2, 6th mode of melodic minor, half-diminished scale",
	"altered, 7th mode of melodic minor, super locrian, diminished whole tone",
}

var modeKindIntervals = [modeKindCount][]Interval{
	Ionian:      {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	Dorian:      {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MajorSixth, MinorSeventh},
	Phrygian:    {PerfectUnison, MinorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	Lydian:      {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MajorSeventh},
	Mixolydian:  {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MinorSeventh},
	Aeolian:     {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	Locrian:     {PerfectUnison, MinorSecond, MinorThird, PerfectFourth, DiminishedFifth, MinorSixth, MinorSeventh},

	LocrianNatural6:  {PerfectUnison, MinorSecond, MinorThird, PerfectFourth, DiminishedFifth, MajorSixth, MinorSeventh},
	IonianSharp5:  {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, AugmentedFifth, MajorSixth, MajorSeventh},
	DorianSharp4:  {PerfectUnison, MajorSecond, MinorThird, AugmentedFourth, PerfectFifth, MajorSixth, MinorSeventh},
	PhrygianDominant: {PerfectUnison, MinorSecond, MajorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	LydianSharp2:     {PerfectUnison, AugmentedSecond, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MajorSeventh},
	Ultralocrian:     {PerfectUnison, MinorSecond, MinorThird, DiminishedFourth, DiminishedFifth, MinorSixth, DiminishedSeventh},

	DorianFlat2:      {PerfectUnison, MinorSecond, MinorThird, PerfectFourth, PerfectFifth, MajorSixth, MinorSeventh},
	LydianAugmented:  {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, AugmentedFifth, MajorSixth, MajorSeventh},
	LydianDominant:   {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MinorSeventh},
	MixolydianFlat6:  {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	LocrianNatural2:  {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, DiminishedFifth, MinorSixth, MinorSeventh},
	Altered:          {PerfectUnison, MinorSecond, MinorThird, DiminishedFourth, DiminishedFifth, MinorSixth, MinorSeventh},
}

// modeKindParentScale is the scale each mode is drawn from, for
// documentation/lookup purposes only — intervals above are authoritative.
var modeKindParentScale = [modeKindCount]ScaleKind{
	Ionian: Major, Dorian: Major, Phrygian: Major, Lydian: Major, Mixolydian: Major, Aeolian: Major, Locrian: Major,
	LocrianNatural6: HarmonicMinor, IonianSharp5: HarmonicMinor, DorianSharp4: HarmonicMinor,
	PhrygianDominant: HarmonicMinor, LydianSharp2: HarmonicMinor, Ultralocrian: HarmonicMinor,
	DorianFlat2: MelodicMinor, LydianAugmented: MelodicMinor, LydianDominant: MelodicMinor,
	MixolydianFlat6: MelodicMinor, LocrianNatural2: MelodicMinor, Altered: MelodicMinor,
}

var modeKindParentDegree = [modeKindCount]int{
	Ionian: 1, Dorian: 2, Phrygian: 3, Lydian: 4, Mixolydian: 5, Aeolian: 6, Locrian: 7,
	LocrianNatural6: 2, IonianSharp5: 3, DorianSharp4: 4, PhrygianDominant: 5, LydianSharp2: 6, Ultralocrian: 7,
	DorianFlat2: 2, LydianAugmented: 3, LydianDominant: 4, MixolydianFlat6: 5, LocrianNatural2: 6, Altered: 7,
}

// String implements the Stringer interface.
func (m ModeKind) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("?(%d)", byte(m))
	}
	return modeKindNames[m]
}

// IsValid returns true if m is one of the 19 mode kinds.
func (m ModeKind) IsValid() bool {
	return m < modeKindCount
}

// Description returns a human-readable description of m.
func (m ModeKind) Description() string {
	return modeKindDescriptions[m]
}

// Intervals returns the intervals defining m, from the root.
func (m ModeKind) Intervals() []Interval {
	return modeKindIntervals[m]
}

// ParentScale returns the scale kind m is drawn from. This is metadata
// only — m's Intervals are explicit, not derived from the parent.
func (m ModeKind) ParentScale() ScaleKind {
	return modeKindParentScale[m]
}

// ParentDegree returns the scale degree (1-7) m starts on within its
// parent scale.
func (m ModeKind) ParentDegree() int {
	return modeKindParentDegree[m]
}

// AllModeKinds is every ModeKind in declaration order.
var AllModeKinds = func() [modeKindCount]ModeKind {
	var all [modeKindCount]ModeKind
	for i := range all {
		all[i] = ModeKind(i)
	}
	return all
}()

// Scale is a ScaleKind rooted at a particular note.
type Scale struct {
	Root Note
	Kind ScaleKind
}

// NewScale constructs a Scale.
func NewScale(root Note, kind ScaleKind) Scale {
	return Scale{Root: root, Kind: kind}
}

// Notes returns the notes of s, ascending from the root.
func (s Scale) Notes() ([]Note, error) {
	return TransposeNote(s.Root, s.Kind.Intervals()...)
}

// String implements the Stringer interface, e.g. "C major".
func (s Scale) String() string {
	return fmt.Sprintf("%s %s", s.Root.NamedPitch, s.Kind)
}

// Mode is a ModeKind rooted at a particular note.
type Mode struct {
	Root Note
	Kind ModeKind
}

// NewMode constructs a Mode.
func NewMode(root Note, kind ModeKind) Mode {
	return Mode{Root: root, Kind: kind}
}

// Notes returns the notes of m, ascending from the root.
func (m Mode) Notes() ([]Note, error) {
	return TransposeNote(m.Root, m.Kind.Intervals()...)
}

// String implements the Stringer interface, e.g. "D dorian".
func (m Mode) String() string {
	return fmt.Sprintf("%s %s", m.Root.NamedPitch, m.Kind)
}
