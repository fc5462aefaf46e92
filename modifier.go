package kord

import (
	"fmt"
	"sort"
)

// Degree is the numeral attached to a Dominant modifier.
type Degree byte

const (
	Seven Degree = iota
	Nine
	Eleven
	Thirteen

	degreeCount
)

var degreeNames = [degreeCount]string{"7", "9", "11", "13"}

// String implements the Stringer interface.
func (d Degree) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("?(%d)", byte(d))
	}
	return degreeNames[d]
}

// IsValid returns true if d is one of the four dominant degrees.
func (d Degree) IsValid() bool {
	return d < degreeCount
}

// ModifierKind is the closed set of ways a Modifier can alter a chord's
// identity classification. Dominant carries a Degree payload (see
// Modifier.Degree); every other kind is a bare flag.
type ModifierKind byte

const (
	ModMinor ModifierKind = iota
	ModFlat5
	ModAugmented5
	ModMajor7
	ModDominant
	ModFlat9
	ModSharp9
	ModSharp11
	ModFlat13
	ModDiminished

	modifierKindCount
)

var modifierStaticNames = [modifierKindCount]string{
	"m", "♭5", "+", "maj7", "", "♭9", "♯9", "♯11", "♭13", "°",
}

// Modifier is one member of the chord's modifier set: Minor, Flat5,
// Augmented5, Major7, Dominant(Degree), Flat9, Sharp9, Sharp11, Flat13, or
// Diminished. Modifiers may alter the chord's identity classification
// (see KnownChordOf).
type Modifier struct {
	Kind   ModifierKind
	Degree Degree // meaningful only when Kind == ModDominant
}

// Minor, Flat5, Augmented5, Major7, Flat9, Sharp9, Sharp11, and Diminished
// construct the corresponding bare (non-Dominant) Modifier.
var (
	Minor      = Modifier{Kind: ModMinor}
	Flat5      = Modifier{Kind: ModFlat5}
	Augmented5 = Modifier{Kind: ModAugmented5}
	Major7     = Modifier{Kind: ModMajor7}
	Flat9      = Modifier{Kind: ModFlat9}
	Sharp9     = Modifier{Kind: ModSharp9}
	Sharp11    = Modifier{Kind: ModSharp11}
	Flat13     = Modifier{Kind: ModFlat13}
	Diminished = Modifier{Kind: ModDiminished}
)

// NewDominant constructs a Dominant(degree) Modifier.
func NewDominant(degree Degree) Modifier {
	return Modifier{Kind: ModDominant, Degree: degree}
}

// IsDominant reports whether m is a Dominant(_) modifier.
func (m Modifier) IsDominant() bool {
	return m.Kind == ModDominant
}

// String implements the Stringer interface.
func (m Modifier) String() string {
	if m.Kind >= modifierKindCount {
		return fmt.Sprintf("?(%d)", byte(m.Kind))
	}
	if m.Kind == ModDominant {
		return m.Degree.String()
	}
	return modifierStaticNames[m.Kind]
}

// Less orders modifiers first by kind, then by degree — used to give
// modifier sets a canonical, comparable order.
func (m Modifier) Less(other Modifier) bool {
	if m.Kind != other.Kind {
		return m.Kind < other.Kind
	}
	return m.Degree < other.Degree
}

// ExtensionKind is the closed set of tones a chord can add without
// changing its identity classification.
type ExtensionKind byte

const (
	ExtSus2 ExtensionKind = iota
	ExtSus4
	ExtFlat11
	ExtSharp13
	ExtAdd2
	ExtAdd4
	ExtAdd6
	ExtAdd9
	ExtAdd11
	ExtAdd13

	extensionKindCount
)

var extensionNames = [extensionKindCount]string{
	"sus2", "sus4", "♭11", "♯13", "add2", "add4", "add6", "add9", "add11", "add13",
}

// Extension is one member of the chord's extension set.
type Extension ExtensionKind

const (
	Sus2    = Extension(ExtSus2)
	Sus4    = Extension(ExtSus4)
	Flat11  = Extension(ExtFlat11)
	Sharp13 = Extension(ExtSharp13)
	Add2    = Extension(ExtAdd2)
	Add4    = Extension(ExtAdd4)
	Add6    = Extension(ExtAdd6)
	Add9    = Extension(ExtAdd9)
	Add11   = Extension(ExtAdd11)
	Add13   = Extension(ExtAdd13)
)

// String implements the Stringer interface.
func (e Extension) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("?(%d)", byte(e))
	}
	return extensionNames[e]
}

// IsValid returns true if e is one of the 10 extensions.
func (e Extension) IsValid() bool {
	return e < Extension(extensionKindCount)
}

// extensionIntervals is the tone each extension adds to relative_chord
// (Flat11 and Sharp13 included). Sus2/Sus4 replace the third instead and
// are handled directly by relative chord construction.
var extensionIntervals = map[Extension]Interval{
	Flat11:  DiminishedEleventh,
	Sharp13: AugmentedThirteenth,
	Add2:    MajorSecond,
	Add4:    PerfectFourth,
	Add6:    MajorSixth,
	Add9:    MajorNinth,
	Add11:   PerfectEleventh,
	Add13:   MajorThirteenth,
}

// Interval returns the tone e contributes, and whether e contributes a
// fixed add-tone (as opposed to altering an existing chord tone).
func (e Extension) Interval() (Interval, bool) {
	iv, ok := extensionIntervals[e]
	return iv, ok
}

// modifierAddedIntervals is the tone Flat9/Sharp9/Sharp11/Flat13
// contribute to relative_chord (added alongside the base chord tones,
// rather than replacing one of them).
var modifierAddedIntervals = map[ModifierKind]Interval{
	ModFlat9:   MinorNinth,
	ModSharp9:  AugmentedNinth,
	ModSharp11: AugmentedEleventh,
	ModFlat13:  MinorThirteenth,
}

// sortModifiers returns mods sorted into canonical order (used by the
// §4.5 chord ordering and by set-equality dedup).
func sortModifiers(mods []Modifier) []Modifier {
	out := append([]Modifier(nil), mods...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// sortExtensions returns exts sorted into canonical order.
func sortExtensions(exts []Extension) []Extension {
	out := append([]Extension(nil), exts...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// containsModifierKind reports whether mods has a modifier of kind k,
// returning it if so.
func containsModifierKind(mods []Modifier, k ModifierKind) (Modifier, bool) {
	for _, m := range mods {
		if m.Kind == k {
			return m, true
		}
	}
	return Modifier{}, false
}

// withoutModifierKind returns mods with every modifier of kind k removed.
func withoutModifierKind(mods []Modifier, k ModifierKind) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.Kind != k {
			out = append(out, m)
		}
	}
	return out
}

// containsExtension reports whether exts contains e.
func containsExtension(exts []Extension, e Extension) bool {
	for _, x := range exts {
		if x == e {
			return true
		}
	}
	return false
}

// withoutExtension returns exts with e removed.
func withoutExtension(exts []Extension, e Extension) []Extension {
	out := make([]Extension, 0, len(exts))
	for _, x := range exts {
		if x != e {
			out = append(out, x)
		}
	}
	return out
}

// applyModifierInvariants enforces the chord-level modifier invariants:
// Augmented5 evicts Flat5/Diminished when added, and Flat5/Diminished
// cannot be added while Augmented5 is present.
func applyModifierInvariants(mods []Modifier) []Modifier {
	if _, ok := containsModifierKind(mods, ModAugmented5); ok {
		mods = withoutModifierKind(mods, ModFlat5)
		mods = withoutModifierKind(mods, ModDiminished)
	}
	return mods
}

// normalizeModifiers applies the guesser's final-normalization rule:
// Diminished overrides Minor, Flat5, and Augmented5.
func normalizeModifiers(mods []Modifier) []Modifier {
	if _, ok := containsModifierKind(mods, ModDiminished); ok {
		mods = withoutModifierKind(mods, ModMinor)
		mods = withoutModifierKind(mods, ModFlat5)
		mods = withoutModifierKind(mods, ModAugmented5)
	}
	return applyModifierInvariants(mods)
}

// normalizeExtensions strips add-extensions subsumed by a Dominant degree:
// Dominant(9) subsumes Add9; Dominant(11) subsumes Add9/Add11;
// Dominant(13) subsumes Add9/Add11/Add13.
func normalizeExtensions(mods []Modifier, exts []Extension) []Extension {
	dom, ok := containsModifierKind(mods, ModDominant)
	if !ok {
		return exts
	}

	switch dom.Degree {
	case Nine:
		exts = withoutExtension(exts, Add9)
	case Eleven:
		exts = withoutExtension(exts, Add9)
		exts = withoutExtension(exts, Add11)
	case Thirteen:
		exts = withoutExtension(exts, Add9)
		exts = withoutExtension(exts, Add11)
		exts = withoutExtension(exts, Add13)
	}
	return exts
}
