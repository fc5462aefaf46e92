// Command chordreader is a command-line program that spells chords. The
// chord names are given as command-line args. The program fails if an
// invalid chord name is given.
//
// The program parses each chord symbol, prints its known-chord
// classification (if any) and constituent notes, and its top scale
// candidate.
//
// Valid chord symbols must first indicate their root as 'A'-'G' (must be
// capital) followed by zero or more same-direction accidentals ('#', '♯',
// 'b', or '♭'). The root may be followed by a triad indicator (major if
// omitted): 'min' or 'm' for minor; 'aug' or '+' for augmented; 'dim' for
// diminished; 'ø' for half-diminished.
//
// For four+ part chords, the next token is usually a '7' with an optional
// 'maj' modifier for a major 7th. This may be followed by additional tones
// ('9', '11', '13', 'add9', 'add11', 'add13', 'sus2', 'sus4', ...) and
// alterations ('b5', '#5', 'b9', '#9', '#11', 'b13'), each either bare or
// grouped in parentheses, e.g. "C7(b9)".
//
// A chord symbol can end with a bass tone (a '/' followed by a root
// spelling), an octave ('@' followed by a digit), an inversion ('^' followed
// by a digit), and a crunchy-voicing flag ('!'), in that order.
package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jhump/kord"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("Usage:")
		fmt.Printf("  %s chord...\n", path.Base(os.Args[0]))
		fmt.Println(`
Each argument is a chord symbol. Each chord will be spelled out, classified,
and printed with its top scale suggestion.

Valid chords must first indicate their root as 'A'-'G' (must be capital)
followed by zero or more same-direction accidentals ('#', '♯', 'b', or '♭').
The root may be followed by a triad indicator (major if omitted): 'min' or
'm' for minor; 'aug' or '+' for augmented; 'dim' for diminished; 'ø' for
half-diminished.

For four+ part chords, the next token is usually a '7' with an optional
'maj' modifier for a major 7th. This may be followed by additional tones
('9', '11', '13', 'add9', 'add11', 'add13', 'sus2', 'sus4', ...) and
alterations ('b5', '#5', 'b9', '#9', '#11', 'b13'), bare or parenthesized.

A chord can end with a bass tone ('/' followed by a root spelling), an
octave ('@' followed by a digit), an inversion ('^' followed by a digit),
and a crunchy-voicing flag ('!'), in that order.`)
		return
	}

	for _, s := range args {
		ch, err := kord.ParseChord(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %q as a chord: %v\n", s, err)
			os.Exit(1)
		}

		notes, err := ch.Notes()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to spell %q: %v\n", s, err)
			os.Exit(1)
		}

		known := kord.KnownChordOf(ch)
		fmt.Printf("%s => %s: %v\n", s, ch, notes)
		if known.Kind != kord.KCUnknown {
			fmt.Printf("  known chord: %s\n", known.Description())
		}

		candidates := ch.ScaleCandidates()
		if len(candidates) > 0 {
			fmt.Printf("  suggested scale: %s (%s)\n", candidates[0].Name(), candidates[0].Reason)
		}
	}
}
