package kord

import "fmt"

// KnownChordKind is the closed set of chord identities the known_chord
// classifier (§4.5) can produce. Several carry a Degree payload (see
// KnownChord.Degree) describing which dominant extension they're built on.
type KnownChordKind byte

const (
	KCUnknown KnownChordKind = iota
	KCMajor
	KCMinor
	KCMajor7
	KCDominant
	KCMinorMajor7
	KCMinorDominant
	KCDominantSharp11
	KCAugmented
	KCAugmentedMajor7
	KCAugmentedDominant
	KCAugmentedDominantFlat9
	KCHalfDiminished
	KCDiminished
	KCDominantFlat9
	KCDominantSharp9
	KCMinorDominantFlat13
	KCMinorDominantFlat9Flat13
	KCSharp11

	knownChordKindCount
)

// KnownChord identifies a chord's classification, as produced by
// KnownChordOf. Degree is meaningful only for the kinds whose names above
// mention "dominant" (Dominant, MinorDominant, DominantSharp11,
// AugmentedDominant, AugmentedDominantFlat9, DominantFlat9, DominantSharp9,
// MinorDominantFlat13, MinorDominantFlat9Flat13), plus HalfDiminished.
type KnownChord struct {
	Kind   KnownChordKind
	Degree Degree
}

// String implements the Stringer interface.
func (k KnownChord) String() string {
	return k.Name()
}

var knownChordDescriptions = [knownChordKindCount]string{
	KCUnknown:                  "unknown",
	KCMajor:                    "major",
	KCMinor:                    "minor",
	KCMajor7:                   "major 7, ionian, first mode of major scale",
	KCDominant:                 "dominant, mixolydian, fifth mode of major scale, major with flat seven",
	KCMinorMajor7:              "minor major 7, melodic minor, major with flat third",
	KCMinorDominant:            "minor 7, dorian, second mode of major scale, major with flat third and flat seven",
	KCDominantSharp11:          "dominant sharp 11, lydian dominant, major with sharp four and flat seven",
	KCAugmented:                "augmented, major with sharp five",
	KCAugmentedMajor7:          "augmented major 7, major with sharp four and five, third mode of melodic minor",
	KCAugmentedDominant:        "augmented dominant, whole tone",
	KCAugmentedDominantFlat9:   "augmented dominant flat 9, whole tone with a half-step leading tone",
	KCHalfDiminished:           "half diminished, locrian, minor seven flat five, seventh mode of major scale",
	KCDiminished:               "fully diminished, diminished seventh, whole/half/whole diminished",
	KCDominantFlat9:            "dominant flat 9, fully diminished (half first), half/whole/half diminished",
	KCDominantSharp9:           "dominant sharp 9, altered, altered dominant, super locrian, diminished whole tone",
	KCMinorDominantFlat13:      "minor dominant flat 13, aeolian, sixth mode of major scale",
	KCMinorDominantFlat9Flat13: "dominant flat 9 flat 13, phrygian, third mode of a major scale",
	KCSharp11:                  "sharp 11, lydian, fourth mode of a major scale",
}

// Description returns a human-readable description of k. Panics if k.Kind
// is KCUnknown: Unknown is a classifier miss, never a value to describe.
func (k KnownChord) Description() string {
	if k.Kind == KCUnknown {
		panic("KnownChord{Kind: KCUnknown} has no description")
	}
	return knownChordDescriptions[k.Kind]
}

var knownChordRelativeScale = map[KnownChordKind][]Interval{
	KCMajor:           {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	KCMinor:           {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	KCMajor7:          {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	KCDominant:        {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, PerfectFifth, MajorSixth, MinorSeventh},
	KCMinorMajor7:     {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MajorSixth, MajorSeventh},
	KCMinorDominant:   {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MajorSixth, MinorSeventh},
	KCDominantSharp11: {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MinorSeventh},
	KCAugmented:       {PerfectUnison, MajorSecond, MajorThird, PerfectFourth, AugmentedFifth, MajorSixth, MajorSeventh},
	KCAugmentedMajor7: {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, AugmentedFifth, MajorSixth, MajorSeventh},
	KCAugmentedDominant: {
		PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, AugmentedFifth, AugmentedSixth,
	},
	KCAugmentedDominantFlat9: {
		PerfectUnison, MinorSecond, MajorThird, AugmentedFourth, AugmentedFifth, AugmentedSixth,
	},
	KCHalfDiminished: {PerfectUnison, MinorSecond, MinorThird, PerfectFourth, DiminishedFifth, MinorSixth, MinorSeventh},
	KCDiminished: {
		PerfectUnison, MajorSecond, MinorThird, PerfectFourth, DiminishedFifth, MinorSixth, DiminishedSeventh, MajorSeventh,
	},
	KCDominantFlat9: {
		PerfectUnison, MinorSecond, MinorThird, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MinorSeventh,
	},
	KCDominantSharp9:      {PerfectUnison, MinorSecond, MinorThird, DiminishedFourth, DiminishedFifth, MinorSixth, MinorSeventh},
	KCMinorDominantFlat13: {PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh},
	KCMinorDominantFlat9Flat13: {
		PerfectUnison, MajorSecond, MinorThird, PerfectFourth, PerfectFifth, MinorSixth, MinorSeventh,
	},
	KCSharp11: {PerfectUnison, MajorSecond, MajorThird, AugmentedFourth, PerfectFifth, MajorSixth, MajorSeventh},
}

// RelativeScale returns the scale intervals k is built from. Panics on
// KCUnknown, per the same reasoning as Description.
func (k KnownChord) RelativeScale() []Interval {
	if k.Kind == KCUnknown {
		panic("KnownChord{Kind: KCUnknown} has no relative scale")
	}
	return knownChordRelativeScale[k.Kind]
}

var knownChordRelativeChord = map[KnownChordKind][]Interval{
	KCMajor:           {PerfectUnison, MajorThird, PerfectFifth},
	KCMinor:           {PerfectUnison, MinorThird, PerfectFifth},
	KCMajor7:          {PerfectUnison, MajorThird, PerfectFifth, MajorSeventh},
	KCDominant:        {PerfectUnison, MajorThird, PerfectFifth, MinorSeventh},
	KCMinorMajor7:     {PerfectUnison, MinorThird, PerfectFifth, MajorSeventh},
	KCMinorDominant:   {PerfectUnison, MinorThird, PerfectFifth, MinorSeventh},
	KCDominantSharp11: {PerfectUnison, MajorThird, PerfectFifth, MinorSeventh, AugmentedEleventh},
	KCAugmented:       {PerfectUnison, MajorThird, AugmentedFifth},
	KCAugmentedMajor7: {PerfectUnison, MajorThird, AugmentedFifth, MajorSeventh},
	KCAugmentedDominant: {
		PerfectUnison, MajorThird, AugmentedFifth, MinorSeventh,
	},
	KCAugmentedDominantFlat9: {
		PerfectUnison, MajorThird, AugmentedFifth, MinorSeventh, MinorNinth,
	},
	KCHalfDiminished:      {PerfectUnison, MinorThird, DiminishedFifth, MinorSeventh},
	KCDiminished:          {PerfectUnison, MinorThird, DiminishedFifth, DiminishedSeventh},
	KCDominantFlat9:       {PerfectUnison, MajorThird, PerfectFifth, MinorSeventh, MinorNinth},
	KCDominantSharp9:      {PerfectUnison, MajorThird, PerfectFifth, MinorSeventh, AugmentedNinth},
	KCMinorDominantFlat13: {PerfectUnison, MinorThird, PerfectFifth, MinorSeventh, MinorThirteenth},
	KCMinorDominantFlat9Flat13: {
		PerfectUnison, MinorThird, PerfectFifth, MinorSeventh, MinorNinth, MinorThirteenth,
	},
	KCSharp11: {PerfectUnison, MajorThird, PerfectFifth, MajorSeventh, AugmentedEleventh},
}

// RelativeChord returns the chord tones k is built from, as intervals
// from the root. Panics on KCUnknown, per the same reasoning as
// Description.
func (k KnownChord) RelativeChord() []Interval {
	if k.Kind == KCUnknown {
		panic("KnownChord{Kind: KCUnknown} has no relative chord")
	}
	return knownChordRelativeChord[k.Kind]
}

// Name returns k's short chord-symbol suffix, e.g. "m7", "+(maj7)".
func (k KnownChord) Name() string {
	d := k.Degree.String()
	switch k.Kind {
	case KCUnknown:
		panic("KnownChord{Kind: KCUnknown} has no name")
	case KCMajor:
		return ""
	case KCMinor:
		return "m"
	case KCMajor7:
		return "maj7"
	case KCDominant:
		return d
	case KCMinorMajor7:
		return "m(maj7)"
	case KCMinorDominant:
		return "m" + d
	case KCDominantSharp11:
		return fmt.Sprintf("%s(♯11)", d)
	case KCAugmented:
		return "+"
	case KCAugmentedMajor7:
		return "+(maj7)"
	case KCAugmentedDominant:
		return "+" + d
	case KCAugmentedDominantFlat9:
		return fmt.Sprintf("+%s(♭9)", d)
	case KCHalfDiminished:
		return fmt.Sprintf("m%s(♭5)", d)
	case KCDiminished:
		return "dim"
	case KCDominantFlat9:
		return fmt.Sprintf("%s(♭9)", d)
	case KCDominantSharp9:
		return fmt.Sprintf("%s(♯9)", d)
	case KCMinorDominantFlat13:
		return fmt.Sprintf("m%s(♭13)", d)
	case KCMinorDominantFlat9Flat13:
		return fmt.Sprintf("m%s(♭9)(♭13)", d)
	case KCSharp11:
		return "(♯11)"
	default:
		return fmt.Sprintf("?(%d)", byte(k.Kind))
	}
}

// ScaleCandidate is a ranked scale or mode recommendation for a chord.
// Exactly one of IsMode's two corresponding fields is meaningful: Mode
// when IsMode is true, Scale otherwise.
type ScaleCandidate struct {
	IsMode bool
	Mode   ModeKind
	Scale  ScaleKind
	Rank   int
	Reason string
}

// Name returns the candidate's scale/mode name.
func (c ScaleCandidate) Name() string {
	if c.IsMode {
		return c.Mode.String()
	}
	return c.Scale.String()
}

// Description returns the candidate's scale/mode description.
func (c ScaleCandidate) Description() string {
	if c.IsMode {
		return c.Mode.Description()
	}
	return c.Scale.Description()
}

func modeCandidate(kind ModeKind, rank int, reason string) ScaleCandidate {
	return ScaleCandidate{IsMode: true, Mode: kind, Rank: rank, Reason: reason}
}

func scaleCandidate(kind ScaleKind, rank int, reason string) ScaleCandidate {
	return ScaleCandidate{IsMode: false, Scale: kind, Rank: rank, Reason: reason}
}

var knownChordScaleCandidates = map[KnownChordKind][]ScaleCandidate{
	KCMajor: {
		modeCandidate(Ionian, 1, "Primary major scale - natural fit for major triad"),
		scaleCandidate(MajorPentatonic, 2, "Five-note major sound - safe, consonant choice"),
		modeCandidate(Lydian, 3, "Bright alternative with ♯4 for added color"),
		modeCandidate(Mixolydian, 4, "Major with ♭7 - common in blues and rock"),
	},
	KCMinor: {
		modeCandidate(Aeolian, 1, "Natural minor - primary choice for minor triads"),
		scaleCandidate(MinorPentatonic, 2, "Five-note minor sound - blues and rock standard"),
		scaleCandidate(Blues, 3, "Minor pentatonic with ♭5 - essential blues scale"),
		modeCandidate(Dorian, 4, "Minor with ♮6 - jazzy, brighter minor sound"),
		modeCandidate(Phrygian, 5, "Minor with ♭2 - exotic, Spanish flavor"),
		scaleCandidate(HarmonicMinor, 6, "Classical minor with ♮7 for strong resolution"),
	},
	KCMajor7: {
		modeCandidate(Ionian, 1, "Natural major 7th from major scale"),
		modeCandidate(Lydian, 2, "Bright maj7 sound with ♯4 for modern jazz"),
	},
	KCDominant: {
		modeCandidate(Mixolydian, 1, "Primary dominant scale - major with ♭7"),
		scaleCandidate(Blues, 2, "Essential blues sound over dominant chords"),
		modeCandidate(LydianDominant, 3, "Dominant with ♯11 for sophisticated color"),
		modeCandidate(MixolydianFlat6, 4, "Dominant with ♭13 for darker, minor-leaning sound"),
		scaleCandidate(WholeTone, 5, "Symmetrical scale for augmented dominant color"),
	},
	KCMinorMajor7: {
		scaleCandidate(MelodicMinor, 1, "Source scale for minor-major 7 sound"),
		scaleCandidate(HarmonicMinor, 2, "Alternative with ♮7 and ♭6"),
	},
	KCMinorDominant: {
		modeCandidate(Dorian, 1, "Classic minor 7 scale - minor with ♮6"),
		scaleCandidate(MinorPentatonic, 2, "Simple, effective minor 7 choice"),
		scaleCandidate(Blues, 3, "Blues flavor over minor 7 chords"),
		modeCandidate(Aeolian, 4, "Natural minor alternative"),
		modeCandidate(Phrygian, 5, "Minor 7 with ♭2 for modal flavor"),
	},
	KCDominantSharp11: {
		modeCandidate(LydianDominant, 1, "Defining scale for dominant ♯11 sound"),
		modeCandidate(Mixolydian, 2, "Basic dominant scale alternative"),
	},
	KCAugmented: {
		scaleCandidate(WholeTone, 1, "Symmetrical scale built from augmented triads"),
		modeCandidate(LydianAugmented, 2, "Major with ♯4 and ♯5"),
	},
	KCAugmentedMajor7: {
		modeCandidate(LydianAugmented, 1, "3rd mode of melodic minor - major 7 with ♯5"),
		modeCandidate(IonianSharp5, 2, "Major with ♯5 from harmonic minor"),
	},
	KCAugmentedDominant: {
		scaleCandidate(WholeTone, 1, "Primary scale for augmented dominant chords"),
		modeCandidate(LydianDominant, 2, "Can be used with ♯5 alterations"),
	},
	KCAugmentedDominantFlat9: {
		scaleCandidate(WholeTone, 1, "Whole tone coloring with a flat 9 leading tone"),
		modeCandidate(PhrygianDominant, 2, "Flat 9 dominant sound with an augmented 5th available"),
	},
	KCHalfDiminished: {
		modeCandidate(Locrian, 1, "Primary half-diminished scale - 7th mode of major"),
		modeCandidate(LocrianNatural2, 2, "Half-diminished with ♮2 - smoother melodic motion"),
		modeCandidate(LocrianNatural6, 3, "Half-diminished with ♮6 from harmonic minor"),
	},
	KCDiminished: {
		scaleCandidate(DiminishedWholeHalf, 1, "Symmetrical scale for fully diminished 7th chords"),
		scaleCandidate(DiminishedHalfWhole, 2, "Alternative diminished scale pattern"),
	},
	KCDominantFlat9: {
		scaleCandidate(DiminishedHalfWhole, 1, "Primary scale for dominant ♭9 - half-whole pattern"),
		modeCandidate(PhrygianDominant, 2, "Spanish sound with ♭9 and major 3rd"),
	},
	KCDominantSharp9: {
		modeCandidate(Altered, 1, "Altered dominant scale - all alterations available"),
		modeCandidate(DorianFlat2, 2, "Minor with ♭2 providing ♯9 color"),
	},
	KCMinorDominantFlat13: {
		modeCandidate(Aeolian, 1, "Natural minor with ♭6/♭13"),
		modeCandidate(Phrygian, 2, "Minor with ♭2 and ♭6"),
	},
	KCMinorDominantFlat9Flat13: {
		modeCandidate(Phrygian, 1, "Minor with ♭2 (♭9) and ♭6 (♭13)"),
		modeCandidate(DorianFlat2, 2, "Minor with ♭2 and ♮6 for contrast"),
	},
	KCSharp11: {
		modeCandidate(Lydian, 1, "Major with ♯11 for bright, modern sound"),
		modeCandidate(LydianDominant, 2, "Dominant with ♯11"),
	},
}

// ScaleCandidates returns k's ranked scale/mode recommendations, or nil
// for KCUnknown.
func (k KnownChord) ScaleCandidates() []ScaleCandidate {
	return knownChordScaleCandidates[k.Kind]
}

// Scale materializes k's top-ranked scale candidate on root.
func (k KnownChord) Scale(root Note) ([]Note, error) {
	candidates := k.ScaleCandidates()
	if len(candidates) == 0 {
		return nil, &ParseError{Input: k.String(), Token: "scale_candidates"}
	}

	top := candidates[0]
	if top.IsMode {
		return NewMode(root, top.Mode).Notes()
	}
	return NewScale(root, top.Scale).Notes()
}
