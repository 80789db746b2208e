// Package theory builds scales and diatonic chords from notes
package theory

import (
	"fmt"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/oisee/scalecli/pkg/note"
)

// UnknownMode tags errors from ModeByName
const UnknownMode ftag.Kind = "UNKNOWN_MODE"

// Mode is a seven-note interval pattern
type Mode struct {
	Name    string
	Aliases []string
	Steps   [7]int // Semitones above the root
}

// Standard modes
var (
	Major         = Mode{Name: "major", Aliases: []string{"ionian"}, Steps: [7]int{0, 2, 4, 5, 7, 9, 11}}
	Dorian        = Mode{Name: "dorian", Steps: [7]int{0, 2, 3, 5, 7, 9, 10}}
	Phrygian      = Mode{Name: "phrygian", Steps: [7]int{0, 1, 3, 5, 7, 8, 10}}
	Lydian        = Mode{Name: "lydian", Steps: [7]int{0, 2, 4, 6, 7, 9, 11}}
	Mixolydian    = Mode{Name: "mixolydian", Steps: [7]int{0, 2, 4, 5, 7, 9, 10}}
	NaturalMinor  = Mode{Name: "minor", Aliases: []string{"aeolian", "natural-minor"}, Steps: [7]int{0, 2, 3, 5, 7, 8, 10}}
	Locrian       = Mode{Name: "locrian", Steps: [7]int{0, 1, 3, 5, 6, 8, 10}}
	HarmonicMinor = Mode{Name: "harmonic-minor", Steps: [7]int{0, 2, 3, 5, 7, 8, 11}}
	MelodicMinor  = Mode{Name: "melodic-minor", Steps: [7]int{0, 2, 3, 5, 7, 9, 11}}
)

// Modes lists every known mode, church modes first
func Modes() []Mode {
	return []Mode{Major, Dorian, Phrygian, Lydian, Mixolydian, NaturalMinor, Locrian, HarmonicMinor, MelodicMinor}
}

func (m Mode) String() string {
	return m.Name
}

// ModeByName looks a mode up by name or alias, ignoring case
func ModeByName(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes() {
		if m.Name == name {
			return m, nil
		}
		for _, a := range m.Aliases {
			if a == name {
				return m, nil
			}
		}
	}

	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, m.Name)
	}
	return Mode{}, fault.Wrap(fmt.Errorf("unknown mode %q", name),
		fmsg.WithDesc("lookup mode", fmt.Sprintf("unknown mode %q (known: %s)", name, strings.Join(names, ", "))),
		ftag.With(UnknownMode),
	)
}

// DetectMode finds the mode whose steps match the intervals of a
// seven-note scale measured from its first note.
func DetectMode(scale []note.Note) (Mode, bool) {
	if len(scale) != 7 {
		return Mode{}, false
	}
	var steps [7]int
	for i, n := range scale {
		steps[i] = Interval(scale[0], n)
	}
	for _, m := range Modes() {
		if m.Steps == steps {
			return m, true
		}
	}
	return Mode{}, false
}
