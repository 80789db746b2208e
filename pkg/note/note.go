// Package note parses and formats note names such as "A#4", "Bb-1" or "G".
//
// A Note keeps the spelling it was written with. Enharmonic collapsing
// (E# to F, Cb to B and so on) happens only when the note is formatted.
package note

import (
	"regexp"
	"strconv"
	"strings"
)

// Note is a letter with an optional accidental and an optional register.
// The zero value is a bare A.
type Note struct {
	letter      Letter
	accidental  Accidental
	hasAcc      bool
	register    int
	hasRegister bool
}

// New creates a note with no accidental and no register
func New(l Letter) Note {
	return Note{letter: l}
}

// WithAccidental returns a copy of n carrying a
func (n Note) WithAccidental(a Accidental) Note {
	n.accidental = a
	n.hasAcc = true
	return n
}

// WithoutAccidental returns a copy of n with the accidental removed
func (n Note) WithoutAccidental() Note {
	n.accidental = 0
	n.hasAcc = false
	return n
}

// WithRegister returns a copy of n in register r
func (n Note) WithRegister(r int) Note {
	n.register = r
	n.hasRegister = true
	return n
}

// WithoutRegister returns a copy of n with the register removed
func (n Note) WithoutRegister() Note {
	n.register = 0
	n.hasRegister = false
	return n
}

// Letter returns the note letter
func (n Note) Letter() Letter {
	return n.letter
}

// Accidental returns the accidental, if any
func (n Note) Accidental() (Accidental, bool) {
	return n.accidental, n.hasAcc
}

// Register returns the register, if any
func (n Note) Register() (int, bool) {
	return n.register, n.hasRegister
}

var noteRE = regexp.MustCompile(`^([A-G])([#b]?)(-?\d{0,2})$`)

// Parse reads a note name. The letter, accidental and register are kept
// exactly as written. Anything outside the grammar
//
//	note := [A-G] [#b]? -?[0-9]{0,2}
//
// fails with kind InvalidNote.
func Parse(s string) (Note, error) {
	m := noteRE.FindStringSubmatch(s)
	if m == nil {
		return Note{}, invalidNote(s)
	}

	l, ok := letterFromByte(m[1][0])
	if !ok {
		return Note{}, invalidNote(s)
	}
	n := New(l)

	if m[2] != "" {
		n = n.WithAccidental(mustAccidental(rune(m[2][0])))
	}

	if m[3] != "" {
		// "-" alone matches the pattern but names no register
		r, err := strconv.Atoi(m[3])
		if err != nil {
			return Note{}, invalidNote(s)
		}
		n = n.WithRegister(r)
	}

	return n, nil
}

// MustParse is like Parse but panics on error
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize collapses B#, Cb, E# and Fb to the natural letter a semitone
// away. Every other spelling is returned unchanged, register included.
func (n Note) Normalize() Note {
	if !n.hasAcc {
		return n
	}
	switch {
	case n.letter == B && n.accidental == Sharp:
		return n.withNatural(C)
	case n.letter == C && n.accidental == Flat:
		return n.withNatural(B)
	case n.letter == E && n.accidental == Sharp:
		return n.withNatural(F)
	case n.letter == F && n.accidental == Flat:
		return n.withNatural(E)
	}
	return n
}

func (n Note) withNatural(l Letter) Note {
	n.letter = l
	return n.WithoutAccidental()
}

// Format renders n after normalization, e.g. "F#3", "Bb", "C-1"
func Format(n Note) string {
	n = n.Normalize()

	var b strings.Builder
	b.WriteByte(n.letter.Byte())
	if n.hasAcc {
		b.WriteRune(n.accidental.Rune())
	}
	if n.hasRegister {
		b.WriteString(strconv.Itoa(n.register))
	}
	return b.String()
}

// String implements fmt.Stringer using Format
func (n Note) String() string {
	return Format(n)
}
