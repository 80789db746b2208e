package note

// Spelling selects the accidental used when a pitch class falls between
// two natural letters.
type Spelling uint8

const (
	Sharps Spelling = iota
	Flats
)

var sharpNames = [12]Note{
	New(C), New(C).WithAccidental(Sharp), New(D), New(D).WithAccidental(Sharp),
	New(E), New(F), New(F).WithAccidental(Sharp), New(G),
	New(G).WithAccidental(Sharp), New(A), New(A).WithAccidental(Sharp), New(B),
}

var flatNames = [12]Note{
	New(C), New(D).WithAccidental(Flat), New(D), New(E).WithAccidental(Flat),
	New(E), New(F), New(G).WithAccidental(Flat), New(G),
	New(A).WithAccidental(Flat), New(A), New(B).WithAccidental(Flat), New(B),
}

func mod12(v int) int {
	return (v%12 + 12) % 12
}

// semitone is the unwrapped offset from C in the note's own register, so
// Cb is -1 and B# is 12.
func (n Note) semitone() int {
	s := n.letter.Semitone()
	if n.hasAcc {
		s += n.accidental.Offset()
	}
	return s
}

// PitchClass returns the pitch class 0-11, C = 0
func (n Note) PitchClass() int {
	return mod12(n.semitone())
}

// Pitch returns register*12 + semitone offset from C. It reports false when
// n carries no register. Cb4 sits one semitone below C4.
func (n Note) Pitch() (int, bool) {
	if !n.hasRegister {
		return 0, false
	}
	return n.register*12 + n.semitone(), true
}

// FromPitchClass returns the note for a pitch class with no register
func FromPitchClass(pc int, sp Spelling) Note {
	if sp == Flats {
		return flatNames[mod12(pc)]
	}
	return sharpNames[mod12(pc)]
}

// FromPitch is the inverse of Pitch for notes spelled from the tables
func FromPitch(pitch int, sp Spelling) Note {
	octave := pitch / 12
	if pitch < 0 && pitch%12 != 0 {
		octave--
	}
	return FromPitchClass(pitch, sp).WithRegister(octave)
}

// Enharmonic reports whether a and b sound the same. Registers are compared
// only when both notes carry one.
func Enharmonic(a, b Note) bool {
	pa, okA := a.Pitch()
	pb, okB := b.Pitch()
	if okA && okB {
		return pa == pb
	}
	return a.PitchClass() == b.PitchClass()
}

// SpellingOf guesses the spelling a note was written in: flats for flatted
// notes and F, sharps otherwise.
func SpellingOf(n Note) Spelling {
	if a, ok := n.Accidental(); ok {
		if a == Flat {
			return Flats
		}
		return Sharps
	}
	if n.letter == F {
		return Flats
	}
	return Sharps
}
