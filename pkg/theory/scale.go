package theory

import (
	"github.com/oisee/scalecli/pkg/note"
)

func mod12(v int) int {
	return (v%12 + 12) % 12
}

// Interval returns the upward distance from one pitch class to another, 0-11
func Interval(from, to note.Note) int {
	return mod12(to.PitchClass() - from.PitchClass())
}

// Transpose moves n by a number of semitones. The result is spelled from
// sp; a register, when present, follows the pitch across octaves.
func Transpose(n note.Note, semitones int, sp note.Spelling) note.Note {
	if p, ok := n.Pitch(); ok {
		return note.FromPitch(p+semitones, sp)
	}
	return note.FromPitchClass(n.PitchClass()+semitones, sp)
}

// Scale spells the seven degrees of mode starting at root. Each degree takes
// the next letter; a degree that would need a double accidental is
// respelled with the root's spelling instead.
func Scale(root note.Note, mode Mode) []note.Note {
	sp := note.SpellingOf(root)
	rootPitch, hasRegister := root.Pitch()

	out := make([]note.Note, 0, len(mode.Steps))
	out = append(out, root)
	for i := 1; i < len(mode.Steps); i++ {
		target := root.PitchClass() + mode.Steps[i]
		n := spellDegree(root.Letter().Add(i), target, sp)
		if hasRegister {
			n = placeAt(n, rootPitch+mode.Steps[i])
		}
		out = append(out, n)
	}
	return out
}

func spellDegree(l note.Letter, pc int, sp note.Spelling) note.Note {
	n := note.New(l)
	switch mod12(pc - l.Semitone()) {
	case 0:
		return n
	case 1:
		return n.WithAccidental(note.Sharp)
	case 11:
		return n.WithAccidental(note.Flat)
	}
	return note.FromPitchClass(pc, sp)
}

// placeAt picks the register that makes n sound at pitch. n's pitch class
// must already match.
func placeAt(n note.Note, pitch int) note.Note {
	base, _ := n.WithRegister(0).Pitch()
	return n.WithRegister((pitch - base) / 12)
}

// Convert moves a scale so that it starts on key. Scales in a known mode
// are rebuilt from key so the letters stay in order; anything else is
// transposed note by note.
func Convert(scale []note.Note, key note.Note) []note.Note {
	if len(scale) == 0 {
		return nil
	}
	if m, ok := DetectMode(scale); ok {
		return Scale(key, m)
	}

	shift := Interval(scale[0], key)
	sp := note.SpellingOf(key)
	out := make([]note.Note, len(scale))
	for i, n := range scale {
		out[i] = Transpose(n, shift, sp)
	}
	return out
}
