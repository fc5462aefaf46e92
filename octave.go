package kord

import "fmt"

// Octave is an integer octave number in [0,10]. Arithmetic on Octave is
// checked: going outside the valid range is an error, never saturating.
type Octave int8

const (
	Octave0 Octave = iota
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
	Octave6
	Octave7
	Octave8
	Octave9
	Octave10
)

// DefaultOctave is the octave assumed when a chord or note symbol does not
// name one explicitly.
const DefaultOctave = Octave4

// String implements the Stringer interface.
func (o Octave) String() string {
	return fmt.Sprintf("%d", int8(o))
}

// IsValid returns true if o is within [0,10].
func (o Octave) IsValid() bool {
	return o >= Octave0 && o <= Octave10
}

// Add returns o+delta, checked against the [0,10] range.
func (o Octave) Add(delta int) (Octave, error) {
	n := int(o) + delta
	if n < int(Octave0) || n > int(Octave10) {
		return 0, &OctaveBoundsError{Start: o, Delta: delta}
	}
	return Octave(n), nil
}

// Sub returns o-delta, checked against the [0,10] range.
func (o Octave) Sub(delta int) (Octave, error) {
	return o.Add(-delta)
}
