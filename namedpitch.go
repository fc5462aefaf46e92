package kord

import "fmt"

// NamedPitch is one of the 49 enharmonic spellings spanning triple-flat to
// triple-sharp across the seven letter names. Its underlying value is its
// position on the circle-of-fifths ring: shifting by a signed fifths
// distance is array-index arithmetic (see Shift). Declaration order runs
// triple-flat through triple-sharp, and within each accidental tier the
// letters are ordered F, C, G, D, A, E, B — the order in which each letter
// is reached by stacking fifths.
type NamedPitch int8

const (
	NPFTripleFlat NamedPitch = iota
	NPCTripleFlat
	NPGTripleFlat
	NPDTripleFlat
	NPATripleFlat
	NPETripleFlat
	NPBTripleFlat

	NPFDoubleFlat
	NPCDoubleFlat
	NPGDoubleFlat
	NPDDoubleFlat
	NPADoubleFlat
	NPEDoubleFlat
	NPBDoubleFlat

	NPFFlat
	NPCFlat
	NPGFlat
	NPDFlat
	NPAFlat
	NPEFlat
	NPBFlat

	NPF
	NPC
	NPG
	NPD
	NPA
	NPE
	NPB

	NPFSharp
	NPCSharp
	NPGSharp
	NPDSharp
	NPASharp
	NPESharp
	NPBSharp

	NPFDoubleSharp
	NPCDoubleSharp
	NPGDoubleSharp
	NPDDoubleSharp
	NPADoubleSharp
	NPEDoubleSharp
	NPBDoubleSharp

	NPFTripleSharp
	NPCTripleSharp
	NPGTripleSharp
	NPDTripleSharp
	NPATripleSharp
	NPETripleSharp
	NPBTripleSharp
)

// namedPitchCount is the size of the fifths ring.
const namedPitchCount = 49

var namedPitchNames = [namedPitchCount]string{
	"F♭𝄫", "C♭𝄫", "G♭𝄫", "D♭𝄫", "A♭𝄫", "E♭𝄫", "B♭𝄫",
	"F𝄫", "C𝄫", "G𝄫", "D𝄫", "A𝄫", "E𝄫", "B𝄫",
	"F♭", "C♭", "G♭", "D♭", "A♭", "E♭", "B♭",
	"F", "C", "G", "D", "A", "E", "B",
	"F♯", "C♯", "G♯", "D♯", "A♯", "E♯", "B♯",
	"F𝄪", "C𝄪", "G𝄪", "D𝄪", "A𝄪", "E𝄪", "B𝄪",
	"F♯𝄪", "C♯𝄪", "G♯𝄪", "D♯𝄪", "A♯𝄪", "E♯𝄪", "B♯𝄪",
}

var namedPitchLetters = [namedPitchCount]byte{
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
	'F', 'C', 'G', 'D', 'A', 'E', 'B',
}

// namedPitchToPitch is the projection table from each of the 49 enharmonic
// spellings down to its 12-element Pitch class.
var namedPitchToPitch = [namedPitchCount]Pitch{
	D, A, E, B, GFlat, DFlat, AFlat, // triple flat
	EFlat, BFlat, F, C, G, D, A, // double flat
	E, B, GFlat, DFlat, AFlat, EFlat, BFlat, // flat
	F, C, G, D, A, E, B, // natural
	GFlat, DFlat, AFlat, EFlat, BFlat, F, C, // sharp
	G, D, A, E, B, GFlat, DFlat, // double sharp
	AFlat, EFlat, BFlat, F, C, G, D, // triple sharp
}

// String implements the Stringer interface, using Unicode accidentals.
func (np NamedPitch) String() string {
	if !np.IsValid() {
		return fmt.Sprintf("?(%d)", int8(np))
	}
	return namedPitchNames[np]
}

// IsValid returns true if np is within the 49-slot fifths ring.
func (np NamedPitch) IsValid() bool {
	return np >= 0 && np < namedPitchCount
}

// Letter returns the letter name (A-G) of np, ignoring accidental.
func (np NamedPitch) Letter() byte {
	return namedPitchLetters[np]
}

// Pitch returns the 12-class Pitch that np projects to.
func (np NamedPitch) Pitch() Pitch {
	return namedPitchToPitch[np]
}

// Shift moves np by k positions on the fifths ring (k=+1 is up a perfect
// fifth in enharmonic-distance terms, e.g. C -> G; k=-5 is C -> Db). It
// returns OutOfRangeError if the shift falls outside the 49-slot ring.
func (np NamedPitch) Shift(k int) (NamedPitch, error) {
	idx := int(np) + k
	if idx < 0 || idx >= namedPitchCount {
		return 0, &OutOfRangeError{Start: np, Shift: k}
	}
	return NamedPitch(idx), nil
}

// isFlatFamilyOctaveShift reports whether np is one of the "behaves as one
// octave lower" spellings: C♭, C♭♭, C♭♭♭, D♭♭♭.
func (np NamedPitch) isFlatFamilyOctaveShift() bool {
	switch np {
	case NPCFlat, NPCDoubleFlat, NPCTripleFlat, NPDTripleFlat:
		return true
	default:
		return false
	}
}

// isSharpFamilyOctaveShift reports whether np is one of the "behaves as one
// octave higher" spellings: B♯, B♯♯, B♯♯♯, A♯♯♯.
func (np NamedPitch) isSharpFamilyOctaveShift() bool {
	switch np {
	case NPBSharp, NPBDoubleSharp, NPBTripleSharp, NPATripleSharp:
		return true
	default:
		return false
	}
}

// AllNamedPitches is every NamedPitch in fifths-ring (declaration) order.
var AllNamedPitches = func() [namedPitchCount]NamedPitch {
	var all [namedPitchCount]NamedPitch
	for i := range all {
		all[i] = NamedPitch(i)
	}
	return all
}()
