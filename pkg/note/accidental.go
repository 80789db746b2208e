package note

import "fmt"

// Accidental raises or lowers a letter by one semitone
type Accidental uint8

const (
	Sharp Accidental = iota + 1
	Flat
)

// Rune returns '#' for Sharp and 'b' for Flat
func (a Accidental) Rune() rune {
	switch a {
	case Sharp:
		return '#'
	case Flat:
		return 'b'
	}
	panic(fmt.Sprintf("note: unknown accidental %d", uint8(a)))
}

func (a Accidental) String() string {
	return string(a.Rune())
}

// Offset returns the semitone shift: +1 sharp, -1 flat
func (a Accidental) Offset() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	}
	panic(fmt.Sprintf("note: unknown accidental %d", uint8(a)))
}

// AccidentalFromRune maps '#' and 'b' back to an Accidental. Any other rune
// fails with kind InvalidAccidental.
func AccidentalFromRune(r rune) (Accidental, error) {
	switch r {
	case '#':
		return Sharp, nil
	case 'b':
		return Flat, nil
	}
	return 0, invalidAccidental(r)
}

// mustAccidental is only fed runes the note grammar has already matched.
func mustAccidental(r rune) Accidental {
	a, err := AccidentalFromRune(r)
	if err != nil {
		panic(err)
	}
	return a
}
