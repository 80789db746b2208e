package note

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Error kinds attached to failures from this package. Use ftag.Get to read
// them off a returned error.
const (
	InvalidNote       ftag.Kind = "INVALID_NOTE"
	InvalidAccidental ftag.Kind = "INVALID_ACCIDENTAL"
)

// ParseError reports text that is not a note name.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid note %q", e.Input)
}

// AccidentalError reports a rune that is neither '#' nor 'b'.
type AccidentalError struct {
	Rune rune
}

func (e *AccidentalError) Error() string {
	return fmt.Sprintf("invalid accidental %q", e.Rune)
}

func invalidNote(input string) error {
	return fault.Wrap(&ParseError{Input: input},
		fmsg.WithDesc("parse note",
			fmt.Sprintf("%q is not a note name (expected a letter A-G, an optional # or b, and an optional register such as 4 or -1)", input)),
		ftag.With(InvalidNote),
	)
}

func invalidAccidental(r rune) error {
	return fault.Wrap(&AccidentalError{Rune: r},
		fmsg.With("decode accidental"),
		ftag.With(InvalidAccidental),
	)
}
