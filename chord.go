package kord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Chord is an immutable chord value: a root note plus its modifiers,
// extensions, and voicing flags. All With* methods return a new Chord;
// there is no in-place mutation.
type Chord struct {
	Root       Note
	Slash      *Note
	Modifiers  []Modifier
	Extensions []Extension
	Inversion  uint8
	Crunchy    bool
}

// NewChord constructs a bare major triad on root.
func NewChord(root Note) Chord {
	return Chord{Root: root}
}

// WithModifier returns a copy of c with m appended to its modifiers,
// enforcing the Augmented5/Flat5/Diminished invariant: adding Augmented5
// evicts any Flat5 or Diminished already present, and Flat5/Diminished are
// refused outright while Augmented5 is present.
func (c Chord) WithModifier(m Modifier) Chord {
	out := c.clone()

	if m.Kind == ModAugmented5 {
		out.Modifiers = withoutModifierKind(out.Modifiers, ModFlat5)
		out.Modifiers = withoutModifierKind(out.Modifiers, ModDiminished)
	}

	if (m.Kind == ModDiminished || m.Kind == ModFlat5) && out.hasModifier(ModAugmented5) {
		return out
	}

	out.Modifiers = append(out.Modifiers, m)
	return out
}

// WithExtension returns a copy of c with e appended to its extensions.
func (c Chord) WithExtension(e Extension) Chord {
	out := c.clone()
	out.Extensions = append(out.Extensions, e)
	return out
}

// WithSlash returns a copy of c with its bass note set to slash.
func (c Chord) WithSlash(slash Note) Chord {
	out := c.clone()
	out.Slash = &slash
	return out
}

// WithInversion returns a copy of c with its inversion set to n.
func (c Chord) WithInversion(n uint8) Chord {
	out := c.clone()
	out.Inversion = n
	return out
}

// WithCrunchy returns a copy of c with its crunchy flag set to crunchy.
func (c Chord) WithCrunchy(crunchy bool) Chord {
	out := c.clone()
	out.Crunchy = crunchy
	return out
}

// WithOctave returns a copy of c with its root re-pitched onto octave,
// keeping the root's named pitch.
func (c Chord) WithOctave(octave Octave) Chord {
	out := c.clone()
	out.Root = NewNote(c.Root.NamedPitch, octave)
	return out
}

// Minor, Major7, Diminished, Augmented, and Dominant are convenience
// builders mirroring the common chord-symbol vocabulary.
func (c Chord) Minor() Chord      { return c.WithModifier(Minor) }
func (c Chord) Major7() Chord     { return c.WithModifier(Major7) }
func (c Chord) Diminished() Chord { return c.WithModifier(Diminished) }
func (c Chord) Augmented() Chord  { return c.WithModifier(Augmented5) }
func (c Chord) Dominant(d Degree) Chord {
	return c.WithModifier(NewDominant(d))
}

// Seven, Nine, Eleven, and Thirteen are Dominant(d) convenience builders
// for their respective degree.
func (c Chord) Seven() Chord    { return c.Dominant(Seven) }
func (c Chord) Nine() Chord     { return c.Dominant(Nine) }
func (c Chord) Eleven() Chord   { return c.Dominant(Eleven) }
func (c Chord) Thirteen() Chord { return c.Dominant(Thirteen) }

// HalfDiminished builds a minor 7 flat 5 chord: minor().seven().flat5().
func (c Chord) HalfDiminished() Chord {
	return c.Minor().Seven().Flat5()
}

// Flat5, Flat9, Sharp9, Sharp11, and Flat13 append the corresponding bare
// alteration modifier.
func (c Chord) Flat5() Chord    { return c.WithModifier(Flat5) }
func (c Chord) Flat9() Chord    { return c.WithModifier(Flat9) }
func (c Chord) Sharp9() Chord   { return c.WithModifier(Sharp9) }
func (c Chord) Sharp11() Chord  { return c.WithModifier(Sharp11) }
func (c Chord) Flat13() Chord   { return c.WithModifier(Flat13) }

// Sus2, Sus4, Sharp13, Add2, Add4, Add6, Add9, Add11, and Add13 append the
// corresponding extension.
func (c Chord) Sus2() Chord    { return c.WithExtension(Sus2) }
func (c Chord) Sus4() Chord    { return c.WithExtension(Sus4) }
func (c Chord) Sharp13() Chord { return c.WithExtension(Sharp13) }
func (c Chord) Add2() Chord    { return c.WithExtension(Add2) }
func (c Chord) Add4() Chord    { return c.WithExtension(Add4) }
func (c Chord) Add6() Chord    { return c.WithExtension(Add6) }
func (c Chord) Add9() Chord    { return c.WithExtension(Add9) }
func (c Chord) Add11() Chord   { return c.WithExtension(Add11) }
func (c Chord) Add13() Chord   { return c.WithExtension(Add13) }

func (c Chord) clone() Chord {
	out := c
	out.Modifiers = append([]Modifier(nil), c.Modifiers...)
	out.Extensions = append([]Extension(nil), c.Extensions...)
	return out
}

// HasSlash reports whether c has a slash bass note.
func (c Chord) HasSlash() bool {
	return c.Slash != nil
}

// dominantDegree returns c's Dominant modifier's degree and true, or
// (0, false) if c has no Dominant modifier.
func (c Chord) dominantDegree() (Degree, bool) {
	m, ok := containsModifierKind(c.Modifiers, ModDominant)
	if !ok {
		return 0, false
	}
	return m.Degree, true
}

func (c Chord) hasModifier(k ModifierKind) bool {
	_, ok := containsModifierKind(c.Modifiers, k)
	return ok
}

// KnownChordOf classifies c per the total, first-match-wins known-chord
// derivation.
func KnownChordOf(c Chord) KnownChord {
	d, hasDominant := c.dominantDegree()

	if c.hasModifier(ModDiminished) {
		return KnownChord{Kind: KCDiminished}
	}

	if c.hasModifier(ModMinor) {
		switch {
		case c.hasModifier(ModMajor7):
			return KnownChord{Kind: KCMinorMajor7}
		case hasDominant:
			switch {
			case c.hasModifier(ModFlat5):
				return KnownChord{Kind: KCHalfDiminished, Degree: d}
			case c.hasModifier(ModFlat13) && c.hasModifier(ModFlat9):
				return KnownChord{Kind: KCMinorDominantFlat9Flat13, Degree: d}
			case c.hasModifier(ModFlat13):
				return KnownChord{Kind: KCMinorDominantFlat13, Degree: d}
			default:
				return KnownChord{Kind: KCMinorDominant, Degree: d}
			}
		default:
			return KnownChord{Kind: KCMinor}
		}
	}

	if c.hasModifier(ModAugmented5) {
		switch {
		case c.hasModifier(ModMajor7):
			return KnownChord{Kind: KCAugmentedMajor7}
		case hasDominant && c.hasModifier(ModFlat9):
			return KnownChord{Kind: KCAugmentedDominantFlat9, Degree: d}
		case hasDominant:
			return KnownChord{Kind: KCAugmentedDominant, Degree: d}
		default:
			return KnownChord{Kind: KCAugmented}
		}
	}

	if c.hasModifier(ModMajor7) {
		return KnownChord{Kind: KCMajor7}
	}

	if hasDominant {
		switch {
		case c.hasModifier(ModFlat9):
			return KnownChord{Kind: KCDominantFlat9, Degree: d}
		case c.hasModifier(ModSharp9):
			return KnownChord{Kind: KCDominantSharp9, Degree: d}
		case c.hasModifier(ModSharp11):
			return KnownChord{Kind: KCDominantSharp11, Degree: d}
		default:
			return KnownChord{Kind: KCDominant, Degree: d}
		}
	}

	if c.hasModifier(ModSharp11) {
		return KnownChord{Kind: KCSharp11}
	}

	return KnownChord{Kind: KCMajor}
}

// RelativeChord returns the sorted, deduplicated set of intervals c's
// chord tones occupy relative to its root.
func (c Chord) RelativeChord() []Interval {
	known := KnownChordOf(c)
	intervals := append([]Interval(nil), known.RelativeChord()...)

	// Alterations replace an existing chord tone.
	if c.hasModifier(ModFlat5) {
		intervals = replaceInterval(intervals, PerfectFifth, DiminishedFifth)
	}
	if c.hasModifier(ModAugmented5) {
		intervals = replaceInterval(intervals, PerfectFifth, AugmentedFifth)
	}
	if containsExtension(c.Extensions, Sus2) {
		intervals = replaceInterval(intervals, MajorThird, MajorSecond)
		intervals = replaceInterval(intervals, MinorThird, MajorSecond)
	}
	if containsExtension(c.Extensions, Sus4) {
		intervals = replaceInterval(intervals, MajorThird, PerfectFourth)
		intervals = replaceInterval(intervals, MinorThird, PerfectFourth)
	}

	// Bare alterations/additions carried as modifiers add a tone alongside
	// the existing chord tones.
	for _, k := range []ModifierKind{ModFlat9, ModSharp9, ModSharp11, ModFlat13} {
		if c.hasModifier(k) {
			intervals = append(intervals, modifierAddedIntervals[k])
		}
	}

	// A dominant degree past the seventh implies the natural tones in
	// between, unless an alteration already occupies that scale step.
	if d, ok := c.dominantDegree(); ok {
		if d == Nine || d == Eleven || d == Thirteen {
			if !intersectsAny(intervals, MinorNinth, MajorNinth, AugmentedNinth) {
				intervals = append(intervals, MajorNinth)
			}
		}
		if d == Eleven || d == Thirteen {
			if !intersectsAny(intervals, DiminishedEleventh, PerfectEleventh, AugmentedEleventh) {
				intervals = append(intervals, PerfectEleventh)
			}
		}
		if d == Thirteen {
			if !intersectsAny(intervals, MinorThirteenth, MajorThirteenth, AugmentedThirteenth) {
				intervals = append(intervals, MajorThirteenth)
			}
		}
	}

	// Extensions not already consumed as alterations add their own tone.
	exts := normalizeExtensions(c.Modifiers, c.Extensions)
	for _, e := range exts {
		if e == Sus2 || e == Sus4 {
			continue
		}
		if iv, ok := e.Interval(); ok {
			intervals = append(intervals, iv)
		}
	}

	return dedupeIntervals(intervals)
}

// intersectsAny reports whether intervals contains any of family.
func intersectsAny(intervals []Interval, family ...Interval) bool {
	for _, iv := range intervals {
		for _, f := range family {
			if iv == f {
				return true
			}
		}
	}
	return false
}

func replaceInterval(intervals []Interval, from, to Interval) []Interval {
	out := make([]Interval, len(intervals))
	for i, iv := range intervals {
		if iv == from {
			out[i] = to
		} else {
			out[i] = iv
		}
	}
	return out
}

func dedupeIntervals(intervals []Interval) []Interval {
	sorted := append([]Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:0]
	for i, iv := range sorted {
		if i == 0 || iv != out[len(out)-1] {
			out = append(out, iv)
		}
	}
	return out
}

// Notes realizes c: its chord tones transposed from the root, then
// inversion, crunchy compression, and slash insertion are applied in that
// order, per the chord-building algorithm.
func (c Chord) Notes() ([]Note, error) {
	notes, err := TransposeNote(c.Root, c.RelativeChord()...)
	if err != nil {
		return nil, err
	}
	sortNotes(notes)

	for i := uint8(0); i < c.Inversion; i++ {
		if len(notes) == 0 {
			break
		}
		lowest := notes[0]
		rest := notes[1:]
		raised := lowest
		for {
			next, err := raised.Add(PerfectOctave)
			if err != nil {
				break
			}
			raised = next
			if len(rest) == 0 || raised.Frequency() > rest[len(rest)-1].Frequency() {
				break
			}
		}
		notes = append(append([]Note(nil), rest...), raised)
		sortNotes(notes)
	}

	if c.Crunchy && len(notes) > 0 {
		bottom := notes[0]
		top, err := bottom.Add(PerfectOctave)
		if err == nil {
			for i := 1; i < len(notes); i++ {
				for notes[i].Frequency() > top.Frequency() {
					lowered, err := notes[i].Sub(PerfectOctave)
					if err != nil {
						break
					}
					notes[i] = lowered
				}
			}
		}
		sortNotes(notes)
	}

	if c.Slash != nil {
		slash := c.Slash.WithOctave(Octave0)
		if len(notes) > 0 {
			floor, err := notes[0].Sub(PerfectOctave)
			if err == nil {
				for slash.Frequency() < floor.Frequency() {
					raised, err := slash.Add(PerfectOctave)
					if err != nil {
						break
					}
					slash = raised
				}
			}
		}
		notes = append([]Note{slash}, notes...)
	}

	sortNotes(notes)
	return dedupeNotesByFrequency(notes), nil
}

func sortNotes(notes []Note) {
	sort.Slice(notes, func(i, j int) bool { return notes[i].Less(notes[j]) })
}

func dedupeNotesByFrequency(notes []Note) []Note {
	out := notes[:0]
	for i, n := range notes {
		if i == 0 || n.Frequency() != out[len(out)-1].Frequency() {
			out = append(out, n)
		}
	}
	return out
}

// Scale materializes c's recommended scale, rooted at c.Root.
func (c Chord) Scale() ([]Note, error) {
	return KnownChordOf(c).Scale(c.Root)
}

// RelativeScale returns the scale intervals c's known-chord classification
// is built from, relative to c.Root.
func (c Chord) RelativeScale() []Interval {
	known := KnownChordOf(c)
	if known.Kind == KCUnknown {
		return nil
	}
	return known.RelativeScale()
}

// ScaleCandidates returns c's ranked scale/mode recommendations.
func (c Chord) ScaleCandidates() []ScaleCandidate {
	return KnownChordOf(c).ScaleCandidates()
}

// weight is the first term of the §4.5 chord ordering.
func (c Chord) weight() int {
	w := len(c.Modifiers) + len(c.Extensions)
	if c.HasSlash() {
		w += 2
	}
	if c.Inversion != 0 {
		w += 2
	}
	return w
}

// Less implements the §4.5 total chord ordering, used by the guesser to
// rank and dedupe its candidates.
func (c Chord) Less(other Chord) bool {
	if c.weight() != other.weight() {
		return c.weight() < other.weight()
	}
	if c.Inversion != other.Inversion {
		return c.Inversion < other.Inversion
	}
	if c.HasSlash() != other.HasSlash() {
		return !c.HasSlash()
	}
	if len(c.Extensions) != len(other.Extensions) {
		return len(c.Extensions) < len(other.Extensions)
	}
	if cmp := compareExtensions(sortExtensions(c.Extensions), sortExtensions(other.Extensions)); cmp != 0 {
		return cmp < 0
	}
	if len(c.Modifiers) != len(other.Modifiers) {
		return len(c.Modifiers) < len(other.Modifiers)
	}
	if cmp := compareModifiers(sortModifiers(c.Modifiers), sortModifiers(other.Modifiers)); cmp != 0 {
		return cmp < 0
	}
	if c.Root.Pitch() != other.Root.Pitch() {
		return c.Root.Pitch() < other.Root.Pitch()
	}
	return !c.Crunchy && other.Crunchy
}

func compareExtensions(a, b []Extension) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

func compareModifiers(a, b []Modifier) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i].Less(b[i]) {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// Name renders c's symbol without its octave, inversion, or crunchy
// decorations, e.g. "Cm7(♭5)". It leads with the root and the classified
// known-chord's own short name, then appends any modifier or extension not
// already implied by that name.
func (c Chord) Name() string {
	knownName := KnownChordOf(c).Name()

	var b strings.Builder
	b.WriteString(c.Root.NamedPitch.String())
	b.WriteString(knownName)

	if c.hasModifier(ModFlat5) && !strings.Contains(knownName, "(♭5)") {
		b.WriteString("(♭5)")
	}
	if c.hasModifier(ModAugmented5) && !strings.Contains(knownName, "+") && !strings.Contains(knownName, "(♯5)") {
		b.WriteString("(♯5)")
	}
	if c.hasModifier(ModFlat9) && !strings.Contains(knownName, "(♭9)") {
		b.WriteString("(♭9)")
	}
	if c.hasModifier(ModSharp9) && !strings.Contains(knownName, "(♯9)") {
		b.WriteString("(♯9)")
	}
	if c.hasModifier(ModSharp11) && !strings.Contains(knownName, "(♯11)") {
		b.WriteString("(♯11)")
	}
	if c.hasModifier(ModFlat13) && !strings.Contains(knownName, "(♭13)") {
		b.WriteString("(♭13)")
	}

	for _, e := range c.Extensions {
		fmt.Fprintf(&b, "(%s)", e)
	}
	if c.Slash != nil {
		b.WriteByte('/')
		b.WriteString(c.Slash.NamedPitch.String())
	}
	return b.String()
}

// PreciseName renders c's full round-trippable symbol: Name, followed by
// @octave for a non-default root octave, ^k for inversion ≠ 0, and ! when
// crunchy.
func (c Chord) PreciseName() string {
	var b strings.Builder
	b.WriteString(c.Name())

	if c.Root.Octave != DefaultOctave {
		fmt.Fprintf(&b, "@%d", int(c.Root.Octave))
	}
	if c.Inversion != 0 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(int(c.Inversion)))
	}
	if c.Crunchy {
		b.WriteByte('!')
	}
	return b.String()
}

// String implements the Stringer interface as c.PreciseName.
func (c Chord) String() string {
	return c.PreciseName()
}

// Description returns a human-readable description of c's known-chord
// classification, or "" if c didn't classify to a known chord.
func (c Chord) Description() string {
	known := KnownChordOf(c)
	if known.Kind == KCUnknown {
		return ""
	}
	return known.Description()
}

// KnownChord classifies c per the §4.5 total, first-match-wins derivation.
func (c Chord) KnownChord() KnownChord {
	return KnownChordOf(c)
}

// FormatWithScaleCandidates renders c.PreciseName, its description, and its
// ranked scale candidates as a multi-line report.
func (c Chord) FormatWithScaleCandidates() string {
	var b strings.Builder
	b.WriteString(c.PreciseName())

	if desc := c.Description(); desc != "" {
		fmt.Fprintf(&b, "\n   %s", desc)
	}

	for _, cand := range c.ScaleCandidates() {
		fmt.Fprintf(&b, "\n   %d. %s - %s", cand.Rank, cand.Name(), cand.Reason)
	}

	return b.String()
}
