package kord

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParsedKind identifies which of the three overlapping grammars a Parsed
// value was recognized under.
type ParsedKind byte

const (
	ParsedScale ParsedKind = iota
	ParsedMode
	ParsedChord
)

// Parsed is the result of Parse: exactly one of Scale, Mode, or Chord is
// meaningful, selected by Kind.
type Parsed struct {
	Kind  ParsedKind
	Scale Scale
	Mode  Mode
	Chord Chord
}

// splitRootAndRest splits s into a leading root-pitch field and the
// remaining whitespace-joined text, failing if s has fewer than two fields
// or its first field isn't a complete root spelling.
func splitRootAndRest(s string) (NamedPitch, string, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, "", &ParseError{Input: s, Token: s}
	}

	pitch, consumed, err := parseRootPitch(fields[0])
	if err != nil {
		return 0, "", err
	}
	if consumed != len(fields[0]) {
		return 0, "", &ParseError{Input: s, Token: fields[0]}
	}

	return pitch, strings.Join(fields[1:], " "), nil
}

// ParseNote parses a note spelling: a root pitch followed by an optional
// decimal octave (DefaultOctave assumed when absent), e.g. "C#4" or "Bb".
func ParseNote(s string) (Note, error) {
	pitch, pos, err := parseRootPitch(s)
	if err != nil {
		return Note{}, err
	}

	if pos == len(s) {
		return DefaultNote(pitch), nil
	}

	n, consumed, err := parseDigits(s[pos:])
	if err != nil {
		return Note{}, &ParseError{Input: s, Token: s[pos:]}
	}
	octave, err := Octave0.Add(n)
	if err != nil {
		return Note{}, err
	}
	pos += consumed

	if pos != len(s) {
		return Note{}, &ParseError{Input: s, Token: s[pos:]}
	}
	return NewNote(pitch, octave), nil
}

// ParseScale parses "<root> <scale-name>", e.g. "Db major".
func ParseScale(s string) (Scale, error) {
	root, rest, err := splitRootAndRest(s)
	if err != nil {
		return Scale{}, err
	}
	kind, ok := scaleKindByName[normalizeScaleName(rest)]
	if !ok {
		return Scale{}, &ParseError{Input: s, Token: rest}
	}
	return NewScale(DefaultNote(root), kind), nil
}

// ParseMode parses "<root> <mode-name>", e.g. "D dorian".
func ParseMode(s string) (Mode, error) {
	root, rest, err := splitRootAndRest(s)
	if err != nil {
		return Mode{}, err
	}
	kind, ok := modeKindByName[normalizeScaleName(rest)]
	if !ok {
		return Mode{}, &ParseError{Input: s, Token: rest}
	}
	return NewMode(DefaultNote(root), kind), nil
}

// ParseChord parses a chord symbol: root, then modifier/extension tokens
// (bare or parenthesized), then optional /slash, @octave, ^inversion, and
// trailing ! crunchy-flag suffixes, in that order.
func ParseChord(s string) (Chord, error) {
	pitch, pos, err := parseRootPitch(s)
	if err != nil {
		return Chord{}, err
	}
	chord := NewChord(DefaultNote(pitch))

	for pos < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos:])
		if r == '/' || r == '@' || r == '^' || r == '!' {
			break
		}

		if r == '(' {
			end := strings.IndexByte(s[pos:], ')')
			if end < 0 {
				return Chord{}, &ParseError{Input: s, Token: s[pos:]}
			}
			inner := s[pos+1 : pos+end]
			action, consumed, ok := matchToken(inner)
			if !ok || consumed != len(inner) {
				return Chord{}, &ParseError{Input: s, Token: inner}
			}
			chord = action(chord)
			pos += end + 1
			continue
		}

		action, consumed, ok := matchToken(s[pos:])
		if !ok {
			return Chord{}, &ParseError{Input: s, Token: s[pos:]}
		}
		chord = action(chord)
		pos += consumed
	}

	if pos < len(s) && s[pos] == '/' {
		pos++
		slashPitch, consumed, err := parseRootPitch(s[pos:])
		if err != nil {
			return Chord{}, err
		}
		pos += consumed
		chord = chord.WithSlash(DefaultNote(slashPitch))
	}

	if pos < len(s) && s[pos] == '@' {
		pos++
		n, consumed, err := parseDigits(s[pos:])
		if err != nil {
			return Chord{}, &ParseError{Input: s, Token: s[pos:]}
		}
		pos += consumed
		octave, err := Octave0.Add(n)
		if err != nil {
			return Chord{}, err
		}
		chord.Root = chord.Root.WithOctave(octave)
	}

	if pos < len(s) && s[pos] == '^' {
		pos++
		n, consumed, err := parseDigits(s[pos:])
		if err != nil {
			return Chord{}, &ParseError{Input: s, Token: s[pos:]}
		}
		pos += consumed
		chord = chord.WithInversion(uint8(n))
	}

	if pos < len(s) && s[pos] == '!' {
		pos++
		chord = chord.WithCrunchy(true)
	}

	if pos != len(s) {
		return Chord{}, &ParseError{Input: s, Token: s[pos:]}
	}

	return chord, nil
}

func parseDigits(s string) (int, int, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, 0, &ParseError{Input: s, Token: s}
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, 0, &ParseError{Input: s, Token: s[:end]}
	}
	return n, end, nil
}

// Parse tries Scale, then Mode, then Chord, returning the first grammar s
// matches in full.
func Parse(s string) (Parsed, error) {
	if sc, err := ParseScale(s); err == nil {
		return Parsed{Kind: ParsedScale, Scale: sc}, nil
	}
	if md, err := ParseMode(s); err == nil {
		return Parsed{Kind: ParsedMode, Mode: md}, nil
	}
	ch, err := ParseChord(s)
	if err != nil {
		return Parsed{}, &ParseError{Input: s, Token: s}
	}
	return Parsed{Kind: ParsedChord, Chord: ch}, nil
}

// ParseWithType forces parsing under exactly one of the three grammars.
func ParseWithType(s string, kind ParsedKind) (Parsed, error) {
	switch kind {
	case ParsedScale:
		sc, err := ParseScale(s)
		return Parsed{Kind: ParsedScale, Scale: sc}, err
	case ParsedMode:
		md, err := ParseMode(s)
		return Parsed{Kind: ParsedMode, Mode: md}, err
	case ParsedChord:
		ch, err := ParseChord(s)
		return Parsed{Kind: ParsedChord, Chord: ch}, err
	default:
		return Parsed{}, &ParseError{Input: s, Token: "kind"}
	}
}
