package kord

import (
	"fmt"
	"math"
	"sort"
)

// Note is a NamedPitch sounding in a particular Octave.
type Note struct {
	NamedPitch NamedPitch
	Octave     Octave
}

// NewNote constructs a Note from a NamedPitch and Octave.
func NewNote(pitch NamedPitch, octave Octave) Note {
	return Note{NamedPitch: pitch, Octave: octave}
}

// DefaultNote constructs a Note from pitch at DefaultOctave, mirroring the
// bare note names (C, CSharp, DFlat, ...) a symbol parser assumes when no
// octave is given.
func DefaultNote(pitch NamedPitch) Note {
	return Note{NamedPitch: pitch, Octave: DefaultOctave}
}

// String implements the Stringer interface, e.g. "C♯4".
func (n Note) String() string {
	return fmt.Sprintf("%s%s", n.NamedPitch, n.Octave)
}

// Name returns n's spelling, e.g. "C♯4". Equivalent to String.
func (n Note) Name() string {
	return n.String()
}

// Pitch returns the 12-class pitch of n, ignoring its enharmonic spelling.
func (n Note) Pitch() Pitch {
	return n.NamedPitch.Pitch()
}

// WithNamedPitch returns a copy of n respelled to the given NamedPitch,
// keeping its octave.
func (n Note) WithNamedPitch(pitch NamedPitch) Note {
	return Note{NamedPitch: pitch, Octave: n.Octave}
}

// WithOctave returns a copy of n in the given octave, keeping its spelling.
func (n Note) WithOctave(octave Octave) Note {
	return Note{NamedPitch: n.NamedPitch, Octave: octave}
}

// ToUniversal respells n to its canonical flat-preferred NamedPitch, losing
// any unusual enharmonic spelling (e.g. B♯4 becomes C5's spelling, but
// keeps n's own octave rather than re-deriving the octave shift).
func (n Note) ToUniversal() Note {
	return n.WithNamedPitch(namedPitchFromPitch(n.Pitch()))
}

// octaveEffective is the octave frequency() actually uses: one higher for
// the B♯ family, one lower for the C♭ family, since those spellings don't
// land on their "own" letter's octave boundary.
func (n Note) octaveEffective() int {
	o := int(n.Octave)
	switch {
	case n.NamedPitch.isSharpFamilyOctaveShift():
		o++
	case n.NamedPitch.isFlatFamilyOctaveShift():
		o--
	}
	return o
}

// Frequency returns n's frequency in Hz.
func (n Note) Frequency() float64 {
	return n.Pitch().BaseFrequency() * math.Pow(2, float64(n.octaveEffective()))
}

// IDIndex returns n's position in the 132-slot (11 octaves x 12 pitch
// classes) chromatic keyboard, used as a spelling-independent identity.
// It uses the written octave, so the B♯ and C♭ spelling families index one
// octave away from the note they sound as (B♯3 gets C3's index).
func (n Note) IDIndex() int {
	return 12*int(n.Octave) + int(n.Pitch())
}

// NoteID is a 132-bit mask (wide enough for the full IDIndex range, 0..131)
// split across two uint64 words: word 0 holds bits 0-63, word 1 holds bits
// 64-131. ML interop only (see spec); not consulted elsewhere in this
// package.
type NoteID [2]uint64

// ID returns a NoteID with a single bit set at n.IDIndex(), suitable for
// combining multiple notes (via IDMask) into a single comparable value.
func (n Note) ID() NoteID {
	idx := n.IDIndex()
	var id NoteID
	id[idx/64] |= uint64(1) << uint(idx%64)
	return id
}

// IDMask ORs together the IDs of notes. Notes with the same pitch class
// and octave share one bit; the same pitch class in different octaves sets
// different bits.
func IDMask(notes []Note) NoteID {
	var mask NoteID
	for _, n := range notes {
		id := n.ID()
		mask[0] |= id[0]
		mask[1] |= id[1]
	}
	return mask
}

// Add transposes n up by interval, per the fifths-ring shift of
// interval.EnharmonicDistance(). Octave tracking mirrors the musical rule
// that a respelling can cross a letter boundary without crossing a pitch
// boundary (and vice versa): an octave is added when the new spelling's
// pitch class is lower than n's (we "wrapped around"), with an extra
// correction when the new spelling lands on Cb/Cbb/Cbbb/Dbbb (which read
// as one octave below their letter) or Bs/Bss/Bsss/Asss (one octave above).
func (n Note) Add(iv Interval) (Note, error) {
	newPitch, err := n.NamedPitch.Shift(iv.EnharmonicDistance())
	if err != nil {
		return Note{}, err
	}

	wrappingOctave := 0
	if newPitch.Pitch() < n.Pitch() {
		wrappingOctave = 1
	}

	specialOctave := 0
	if n.NamedPitch != newPitch {
		switch {
		case newPitch.isFlatFamilyOctaveShift():
			specialOctave = 1
		case newPitch.isSharpFamilyOctaveShift():
			specialOctave = -1
		}
	}

	octave, err := n.Octave.Add(wrappingOctave + specialOctave + iv.OctaveContribution())
	if err != nil {
		return Note{}, err
	}

	return Note{NamedPitch: newPitch, Octave: octave}, nil
}

// Sub transposes n down by interval. See Add for the wrapping-octave rule;
// subtraction wraps (and special-cases Cb/Bs families) in the opposite
// direction from addition.
func (n Note) Sub(iv Interval) (Note, error) {
	newPitch, err := n.NamedPitch.Shift(-iv.EnharmonicDistance())
	if err != nil {
		return Note{}, err
	}

	wrappingOctave := 0
	if newPitch.Pitch() > n.Pitch() {
		wrappingOctave = 1
	}

	specialOctave := 0
	if n.NamedPitch != newPitch {
		switch {
		case newPitch.isFlatFamilyOctaveShift():
			specialOctave = -1
		case newPitch.isSharpFamilyOctaveShift():
			specialOctave = 1
		}
	}

	octave, err := n.Octave.Sub(wrappingOctave + specialOctave + iv.OctaveContribution())
	if err != nil {
		return Note{}, err
	}

	return Note{NamedPitch: newPitch, Octave: octave}, nil
}

// IntervalTo returns the Interval from n up to other. n and other are
// ordered by frequency first, so IntervalTo always returns the positive
// (ascending) interval between the pair; the lower note plus that interval
// exactly reproduces the higher note.
func (n Note) IntervalTo(other Note) (Interval, error) {
	low, high := n, other
	if high.Less(low) {
		low, high = high, low
	}

	for _, iv := range AllIntervals {
		if candidate, err := low.Add(iv); err == nil && candidate == high {
			return iv, nil
		}
	}

	return 0, &ParseError{Input: fmt.Sprintf("%s to %s", n, other), Token: "interval"}
}

// Less reports whether n sounds lower than other.
func (n Note) Less(other Note) bool {
	return n.Frequency() < other.Frequency()
}

// Compare returns -1, 0, or 1 as n sounds lower than, the same as, or
// higher than other, ordering by frequency.
func (n Note) Compare(other Note) int {
	switch {
	case n.Frequency() < other.Frequency():
		return -1
	case n.Frequency() > other.Frequency():
		return 1
	default:
		return 0
	}
}

// PrimaryHarmonicSeries returns the notes sounding at n's 13 primary
// overtones (see PrimaryHarmonicSeries interval table).
func (n Note) PrimaryHarmonicSeries() []Note {
	series := make([]Note, 0, len(PrimaryHarmonicSeries))
	for _, iv := range PrimaryHarmonicSeries {
		if note, err := n.Add(iv); err == nil {
			series = append(series, note)
		}
	}
	return series
}

// TransposeNote returns root transposed up by each of intervals, in order.
func TransposeNote(root Note, intervals ...Interval) ([]Note, error) {
	out := make([]Note, len(intervals))
	for i, iv := range intervals {
		n, err := root.Add(iv)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// TransposeNotes returns notes each transposed up by interval.
func TransposeNotes(notes []Note, interval Interval) ([]Note, error) {
	out := make([]Note, len(notes))
	for i, n := range notes {
		t, err := n.Add(interval)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// MeasureIntervals returns the Interval from root to each of notes.
func MeasureIntervals(root Note, notes ...Note) ([]Interval, error) {
	out := make([]Interval, len(notes))
	for i, n := range notes {
		iv, err := root.IntervalTo(n)
		if err != nil {
			return nil, err
		}
		out[i] = iv
	}
	return out, nil
}

// singleOctaveIntervals is the subset of AllIntervals spanning at most one
// octave (PerfectUnison through PerfectOctave): the only candidates needed
// to reconstruct a pitch-class distance for Negate.
var singleOctaveIntervals = AllIntervals[:PerfectOctave+1]

// semitonesOf returns the chromatic half-step distance iv spans, derived by
// applying iv to a fixed reference note and reading off the resulting
// chromatic keyboard distance.
func semitonesOf(iv Interval) int {
	ref := Note{NamedPitch: NPC, Octave: Octave5}
	if n, err := ref.Add(iv); err == nil {
		return n.IDIndex() - ref.IDIndex()
	}
	return 12*iv.OctaveContribution() + int(math.Round(float64(iv.EnharmonicDistance())*7.0/12.0))
}

// Negate reflects each of notes around root, producing the "negative
// harmony" mirror image: a note N semitones above root becomes the note N
// semitones below it (mod an octave), and vice versa.
func Negate(root Note, notes ...Note) []Note {
	neg := make([]Note, len(notes))
	for i, n := range notes {
		rootPC := int(root.Pitch())
		notePC := int(n.Pitch())
		pcDist := ((notePC-rootPC)%12 + 12) % 12

		if pcDist == 0 {
			neg[i] = n
			continue
		}

		negDist := (12 - pcDist) % 12

		var best Interval
		bestAbs := math.MaxInt32
		found := false
		for _, iv := range singleOctaveIntervals {
			if semitonesOf(iv) != negDist {
				continue
			}
			abs := int(iv.EnharmonicDistance())
			if abs < 0 {
				abs = -abs
			}
			if !found || abs < bestAbs {
				best, bestAbs, found = iv, abs, true
			}
		}

		if !found {
			neg[i] = n
			continue
		}

		if result, err := root.Add(best); err == nil {
			neg[i] = result
		} else {
			neg[i] = n
		}
	}
	return neg
}

// notesByFrequency is every (Pitch class, Octave) combination, sorted by
// frequency, used by ClosestNote to map a measured frequency back to the
// nearest note on the keyboard.
var notesByFrequency = func() []Note {
	all := make([]Note, 0, int(Octave10-Octave0+1)*len(AllPitches))
	for o := Octave0; o <= Octave10; o++ {
		for _, p := range AllPitches {
			all = append(all, Note{NamedPitch: namedPitchFromPitch(p), Octave: o})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })
	return all
}()

// ClosestNote returns the note on the 11-octave keyboard whose frequency is
// nearest freq, found by binary search over notesByFrequency.
func ClosestNote(freq float64) Note {
	lo, hi := 0, len(notesByFrequency)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if notesByFrequency[mid].Frequency() < freq {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo > 0 {
		if math.Abs(notesByFrequency[lo-1].Frequency()-freq) <= math.Abs(notesByFrequency[lo].Frequency()-freq) {
			return notesByFrequency[lo-1]
		}
	}
	return notesByFrequency[lo]
}

// namedPitchFromPitch returns pitch's canonical (always-natural-or-flat)
// NamedPitch spelling.
func namedPitchFromPitch(p Pitch) NamedPitch {
	return canonicalNamedPitch[p]
}

var canonicalNamedPitch = [...]NamedPitch{
	NPC, NPDFlat, NPD, NPEFlat, NPE, NPF, NPGFlat, NPG, NPAFlat, NPA, NPBFlat, NPB,
}
