package kord

import "fmt"

// Pitch is one of the 12 equal-tempered pitch classes. There is no
// enharmonic spelling here (see NamedPitch for that) — black keys are
// always given their flat-preferred canonical name.
type Pitch byte

const (
	C Pitch = iota
	DFlat
	D
	EFlat
	E
	F
	GFlat
	G
	AFlat
	A
	BFlat
	B
)

var pitchNames = [...]string{
	"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B",
}

// baseFrequencies holds each pitch's frequency, in Hz, at octave zero.
var baseFrequencies = [...]float64{
	16.35, 17.32, 18.35, 19.45, 20.60, 21.83,
	23.12, 24.50, 25.96, 27.50, 29.14, 30.87,
}

// String implements the Stringer interface.
func (p Pitch) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("?(%d)", byte(p))
	}
	return pitchNames[p]
}

// IsValid returns true if p is one of the 12 canonical pitch classes.
func (p Pitch) IsValid() bool {
	return p <= B
}

// BaseFrequency returns the frequency, in Hz, of this pitch at octave zero.
func (p Pitch) BaseFrequency() float64 {
	return baseFrequencies[p]
}

// PitchFromInt returns the canonical Pitch for n, which must be in [0,12).
// It returns InvalidPitchError otherwise.
func PitchFromInt(n int) (Pitch, error) {
	if n < 0 || n > int(B) {
		return 0, &InvalidPitchError{Value: n}
	}
	return Pitch(n), nil
}

// AllPitches is every Pitch, in canonical chromatic order.
var AllPitches = [...]Pitch{C, DFlat, D, EFlat, E, F, GFlat, G, AFlat, A, BFlat, B}
