package kord

import (
	"fmt"
	"sort"
)

var allDegrees = [4]Degree{Seven, Nine, Eleven, Thirteen}

// knownModifierSets enumerates the canonical modifier combinations that, by
// themselves, induce one of the known_chord classifications — one entry per
// reachable KnownChord variant (aside from the single-tone alterations,
// which are layered on separately by oneOffModifierSets).
func knownModifierSets() [][]Modifier {
	sets := [][]Modifier{
		nil,
		{Minor},
		{Major7},
		{Minor, Major7},
		{Augmented5},
		{Augmented5, Major7},
		{Diminished},
		{Sharp11},
	}
	for _, d := range allDegrees {
		dom := NewDominant(d)
		sets = append(sets,
			[]Modifier{dom},
			[]Modifier{Minor, dom},
			[]Modifier{Minor, dom, Flat5},
			[]Modifier{Minor, dom, Flat13},
			[]Modifier{Minor, dom, Flat13, Flat9},
			[]Modifier{Augmented5, dom},
			[]Modifier{Augmented5, dom, Flat9},
			[]Modifier{dom, Flat9},
			[]Modifier{dom, Sharp9},
			[]Modifier{dom, Sharp11},
		)
	}
	return sets
}

// oneOffModifierSets enumerates single-tone alterations that may stack on
// top of a knownModifierSets entry.
func oneOffModifierSets() [][]Modifier {
	return [][]Modifier{
		nil,
		{Flat5},
		{Augmented5},
		{Flat9},
		{Sharp9},
		{Sharp11},
		{Flat13},
	}
}

// likelyExtensionSets enumerates the extension combinations the guesser
// tries on every candidate.
func likelyExtensionSets() [][]Extension {
	return [][]Extension{
		nil,
		{Add9},
		{Add11},
		{Add13},
		{Add9, Add11},
		{Add9, Add13},
		{Add9, Add11, Add13},
		{Sus2},
		{Sus4},
		{Add6},
	}
}

// properRoots computes the candidate root and slash-candidate root for
// inversion inv, per the guesser procedure: at inversion 0 they are the two
// lowest notes; otherwise the note that would have been inverted up,
// brought back down an octave.
func properRoots(notes []Note, inv int) (root, slashRoot Note, ok bool) {
	if inv == 0 {
		if len(notes) < 2 {
			return Note{}, Note{}, false
		}
		return notes[0], notes[1], true
	}

	idx := len(notes) - inv
	if idx < 0 || idx >= len(notes) {
		return Note{}, Note{}, false
	}
	octave, err := notes[idx].Octave.Sub(1)
	if err != nil {
		return Note{}, Note{}, false
	}
	lowered := notes[idx].WithOctave(octave)
	return lowered, lowered, true
}

// matchesExactly reports whether c's realized notes have the same length
// as target and agree with it frequency-for-frequency in order.
func matchesExactly(c Chord, target []Note) bool {
	notes, err := c.Notes()
	if err != nil || len(notes) != len(target) {
		return false
	}
	for i := range notes {
		if notes[i].Frequency() != target[i].Frequency() {
			return false
		}
	}
	return true
}

// TryFromNotes guesses chords that exactly produce notes, per the §4.6
// enumerate-inversions × modifier-sets × extension-sets × crunchy
// procedure. Results are normalized, ordered, and deduplicated.
func TryFromNotes(notes []Note) ([]Chord, error) {
	if len(notes) < 3 {
		return nil, &NotEnoughNotesError{Count: len(notes)}
	}

	sorted := append([]Note(nil), notes...)
	sortNotes(sorted)

	mSets := knownModifierSets()
	oSets := oneOffModifierSets()
	eSets := likelyExtensionSets()

	var kept []Chord
	for inv := 0; inv < 3; inv++ {
		root, slashRoot, ok := properRoots(sorted, inv)
		if !ok {
			continue
		}
		slash := sorted[0]

		for _, m1 := range mSets {
			for _, m2 := range oSets {
				mods := append(append([]Modifier(nil), m1...), m2...)
				for _, exts := range eSets {
					for _, crunchy := range [2]bool{false, true} {
						a := Chord{Root: root, Modifiers: mods, Extensions: exts, Inversion: uint8(inv), Crunchy: crunchy}
						if matchesExactly(a, sorted) {
							kept = append(kept, a)
						}

						b := Chord{Root: slashRoot, Slash: &slash, Modifiers: mods, Extensions: exts, Inversion: uint8(inv), Crunchy: crunchy}
						if matchesExactly(b, sorted) {
							kept = append(kept, b)
						}
					}
				}
			}
		}
	}

	return finalizeCandidates(kept), nil
}

// TryFromPitches guesses chords from a set of pitch classes (no octaves):
// each pitch is placed at octave 4, then |P| rotations are tried, each
// raising a different number of the lowest pitches to octave 5, and the
// results are concatenated, sorted, and deduplicated by printed form.
func TryFromPitches(pitches []Pitch) ([]Chord, error) {
	if len(pitches) < 3 {
		return nil, &NotEnoughNotesError{Count: len(pitches)}
	}

	base := make([]Note, len(pitches))
	for i, p := range pitches {
		base[i] = Note{NamedPitch: namedPitchFromPitch(p), Octave: Octave4}
	}
	sortNotes(base)

	var all []Chord
	for k := 0; k < len(pitches); k++ {
		rotation := append([]Note(nil), base...)
		for i := 0; i < k; i++ {
			rotation[i] = rotation[i].WithOctave(Octave5)
		}
		chords, err := TryFromNotes(rotation)
		if err != nil {
			continue
		}
		all = append(all, chords...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })

	seen := make(map[string]bool, len(all))
	out := make([]Chord, 0, len(all))
	for _, c := range all {
		s := c.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, c)
	}
	return out, nil
}

// finalizeCandidates applies the §3 subsumption normalization to every kept
// candidate, sorts by the §4.5 ordering, and dedupes by (modifiers,
// extensions, slash, inversion), treating crunchy/non-crunchy as equal.
func finalizeCandidates(kept []Chord) []Chord {
	normalized := make([]Chord, len(kept))
	for i, c := range kept {
		c.Modifiers = normalizeModifiers(c.Modifiers)
		c.Extensions = normalizeExtensions(c.Modifiers, c.Extensions)
		normalized[i] = c
	}

	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Less(normalized[j]) })

	seen := make(map[string]bool, len(normalized))
	out := make([]Chord, 0, len(normalized))
	for _, c := range normalized {
		key := dedupeKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func dedupeKey(c Chord) string {
	slash := ""
	if c.Slash != nil {
		slash = c.Slash.String()
	}
	return fmt.Sprintf("%v|%v|%s|%d", sortModifiers(c.Modifiers), sortExtensions(c.Extensions), slash, c.Inversion)
}
