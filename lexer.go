package kord

import (
	"strings"
	"unicode/utf8"
)

// rootLetterIndex maps a root letter to its position within a fifths-ring
// accidental tier (see NamedPitch's declaration order: F,C,G,D,A,E,B).
var rootLetterIndex = map[byte]int{
	'F': 0, 'C': 1, 'G': 2, 'D': 3, 'A': 4, 'E': 5, 'B': 6,
}

// decodeAccidental reads one leading accidental rune from s (ASCII or
// Unicode flat/sharp), returning its signed delta and byte width.
func decodeAccidental(s string) (delta int, width int, ok bool) {
	r, w := utf8.DecodeRuneInString(s)
	switch r {
	case '#', '♯':
		return 1, w, true
	case 'b', '♭':
		return -1, w, true
	default:
		return 0, 0, false
	}
}

// parseRootPitch parses a letter followed by zero or more same-direction
// accidentals (up to triple-flat/triple-sharp) from the start of s,
// returning the resulting NamedPitch and the number of bytes consumed.
func parseRootPitch(s string) (NamedPitch, int, error) {
	if len(s) == 0 {
		return 0, 0, &ParseError{Input: s, Token: ""}
	}

	idx, ok := rootLetterIndex[s[0]]
	if !ok {
		return 0, 0, &ParseError{Input: s, Token: s[:1]}
	}

	pos := 1
	delta := 0
	sign := 0
	for pos < len(s) {
		d, w, ok := decodeAccidental(s[pos:])
		if !ok || (sign != 0 && d != sign) {
			break
		}
		sign = d
		delta += d
		pos += w
		if delta > 3 || delta < -3 {
			return 0, 0, &ParseError{Input: s, Token: s[:pos]}
		}
	}

	tier := delta + 3
	return NamedPitch(tier*7 + idx), pos, nil
}

// chordAction mutates a Chord being built by the parser.
type chordAction func(Chord) Chord

// chordToken is one lexical element of the chord grammar: a literal
// spelling plus the action it applies when matched.
type chordToken struct {
	literal string
	action  chordAction
}

// chordTokens is the chord grammar's token table, in match priority order:
// tokens that are a prefix of another (e.g. "m" of "maj7"/"min") are listed
// after their longer, more specific relatives.
var chordTokens = []chordToken{
	{"maj7", func(c Chord) Chord { return c.Major7() }},
	{"min", func(c Chord) Chord { return c.Minor() }},
	{"dim", func(c Chord) Chord { return c.Diminished() }},
	{"aug", func(c Chord) Chord { return c.Augmented() }},
	{"ø", func(c Chord) Chord { return c.Minor().Dominant(Seven).WithModifier(Flat5) }},
	{"sus2", func(c Chord) Chord { return c.WithExtension(Sus2) }},
	{"sus4", func(c Chord) Chord { return c.WithExtension(Sus4) }},
	{"add11", func(c Chord) Chord { return c.WithExtension(Add11) }},
	{"add13", func(c Chord) Chord { return c.WithExtension(Add13) }},
	{"add2", func(c Chord) Chord { return c.WithExtension(Add2) }},
	{"add4", func(c Chord) Chord { return c.WithExtension(Add4) }},
	{"add6", func(c Chord) Chord { return c.WithExtension(Add6) }},
	{"add9", func(c Chord) Chord { return c.WithExtension(Add9) }},
	{"♯11", func(c Chord) Chord { return c.WithModifier(Sharp11) }},
	{"#11", func(c Chord) Chord { return c.WithModifier(Sharp11) }},
	{"♭13", func(c Chord) Chord { return c.WithModifier(Flat13) }},
	{"b13", func(c Chord) Chord { return c.WithModifier(Flat13) }},
	{"♯13", func(c Chord) Chord { return c.WithExtension(Sharp13) }},
	{"#13", func(c Chord) Chord { return c.WithExtension(Sharp13) }},
	{"♭11", func(c Chord) Chord { return c.WithExtension(Flat11) }},
	{"b11", func(c Chord) Chord { return c.WithExtension(Flat11) }},
	{"♭9", func(c Chord) Chord { return c.WithModifier(Flat9) }},
	{"b9", func(c Chord) Chord { return c.WithModifier(Flat9) }},
	{"♯9", func(c Chord) Chord { return c.WithModifier(Sharp9) }},
	{"#9", func(c Chord) Chord { return c.WithModifier(Sharp9) }},
	{"♭5", func(c Chord) Chord { return c.WithModifier(Flat5) }},
	{"b5", func(c Chord) Chord { return c.WithModifier(Flat5) }},
	{"♯5", func(c Chord) Chord { return c.Augmented() }},
	{"#5", func(c Chord) Chord { return c.Augmented() }},
	{"13", func(c Chord) Chord { return c.Dominant(Thirteen) }},
	{"11", func(c Chord) Chord { return c.Dominant(Eleven) }},
	{"9", func(c Chord) Chord { return c.Dominant(Nine) }},
	{"7", func(c Chord) Chord { return c.Dominant(Seven) }},
	{"6", func(c Chord) Chord { return c.WithExtension(Add6) }},
	{"+", func(c Chord) Chord { return c.Augmented() }},
	{"m", func(c Chord) Chord { return c.Minor() }},
}

// matchToken returns the first chordTokens entry whose literal is a prefix
// of s, along with the number of bytes it consumes.
func matchToken(s string) (chordAction, int, bool) {
	for _, tok := range chordTokens {
		if strings.HasPrefix(s, tok.literal) {
			return tok.action, len(tok.literal), true
		}
	}
	return nil, 0, false
}

// normalizeScaleName lowercases s, strips spaces, and folds Unicode
// accidentals to their ASCII equivalents, so scale/mode name matching is
// case-, spacing-, and symbol-insensitive.
func normalizeScaleName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "♭", "b")
	s = strings.ReplaceAll(s, "♯", "#")
	return s
}

var scaleKindByName = func() map[string]ScaleKind {
	m := make(map[string]ScaleKind, scaleKindCount)
	for _, k := range AllScaleKinds {
		m[normalizeScaleName(k.String())] = k
	}
	return m
}()

var modeKindByName = func() map[string]ModeKind {
	m := make(map[string]ModeKind, modeKindCount)
	for _, k := range AllModeKinds {
		m[normalizeScaleName(k.String())] = k
	}
	return m
}()
