package kord

import "fmt"

// ParseError indicates a symbol string did not match the expected grammar.
// Token holds the offending fragment.
type ParseError struct {
	Input string
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: unexpected %q", e.Input, e.Token)
}

// OutOfRangeError indicates a fifths-ring shift (NamedPitch + k) fell
// outside the 49-slot ring.
type OutOfRangeError struct {
	Start NamedPitch
	Shift int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("shifting %v by %d fifths is out of range", e.Start, e.Shift)
}

// OctaveBoundsError indicates an Octave arithmetic operation over/underflowed
// the valid [0,10] range.
type OctaveBoundsError struct {
	Start Octave
	Delta int
}

func (e *OctaveBoundsError) Error() string {
	return fmt.Sprintf("octave %d %+d is out of bounds [0,10]", e.Start, e.Delta)
}

// NotEnoughNotesError indicates fewer than 3 notes were given to the
// ChordGuesser.
type NotEnoughNotesError struct {
	Count int
}

func (e *NotEnoughNotesError) Error() string {
	return fmt.Sprintf("need at least 3 notes to guess a chord, got %d", e.Count)
}

// InvalidAudioError indicates malformed PCM input to AudioAnalyzer.
type InvalidAudioError struct {
	Reason string
}

func (e *InvalidAudioError) Error() string {
	return fmt.Sprintf("invalid audio input: %s", e.Reason)
}

// InvalidPitchError indicates an integer outside [0,12) was used as a Pitch.
type InvalidPitchError struct {
	Value int
}

func (e *InvalidPitchError) Error() string {
	return fmt.Sprintf("%d is not a valid pitch class (want 0..11)", e.Value)
}
