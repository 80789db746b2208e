package theory

import (
	"strings"

	"github.com/oisee/scalecli/pkg/note"
)

// Quality is a chord type defined by its intervals above the root
type Quality struct {
	Name      string
	Suffix    string // Appended to the root in chord symbols
	Mark      string // Appended to the roman numeral
	Intervals []int
}

// Chord qualities
var (
	MajorTriad      = Quality{Name: "major", Suffix: "", Mark: "", Intervals: []int{0, 4, 7}}
	MinorTriad      = Quality{Name: "minor", Suffix: "m", Mark: "", Intervals: []int{0, 3, 7}}
	DiminishedTriad = Quality{Name: "diminished", Suffix: "dim", Mark: "o", Intervals: []int{0, 3, 6}}
	AugmentedTriad  = Quality{Name: "augmented", Suffix: "aug", Mark: "+", Intervals: []int{0, 4, 8}}

	Dominant7       = Quality{Name: "dominant seventh", Suffix: "7", Mark: "7", Intervals: []int{0, 4, 7, 10}}
	Major7          = Quality{Name: "major seventh", Suffix: "maj7", Mark: "maj7", Intervals: []int{0, 4, 7, 11}}
	Minor7          = Quality{Name: "minor seventh", Suffix: "m7", Mark: "7", Intervals: []int{0, 3, 7, 10}}
	HalfDiminished7 = Quality{Name: "half-diminished seventh", Suffix: "m7b5", Mark: "m7b5", Intervals: []int{0, 3, 6, 10}}
	Diminished7     = Quality{Name: "diminished seventh", Suffix: "dim7", Mark: "o7", Intervals: []int{0, 3, 6, 9}}
	MinorMajor7     = Quality{Name: "minor-major seventh", Suffix: "mMaj7", Mark: "maj7", Intervals: []int{0, 3, 7, 11}}
	AugmentedMajor7 = Quality{Name: "augmented major seventh", Suffix: "maj7#5", Mark: "+maj7", Intervals: []int{0, 4, 8, 11}}
)

// Qualities lists every known chord quality, triads first
func Qualities() []Quality {
	return []Quality{
		MajorTriad, MinorTriad, DiminishedTriad, AugmentedTriad,
		Dominant7, Major7, Minor7, HalfDiminished7, Diminished7, MinorMajor7, AugmentedMajor7,
	}
}

// Minor reports whether the third is minor
func (q Quality) Minor() bool {
	return len(q.Intervals) > 1 && q.Intervals[1] == 3
}

func (q Quality) matches(intervals []int) bool {
	if len(q.Intervals) != len(intervals) {
		return false
	}
	for i := range intervals {
		if q.Intervals[i] != intervals[i] {
			return false
		}
	}
	return true
}

// QualityOf names the intervals, or reports false when no quality fits
func QualityOf(intervals []int) (Quality, bool) {
	for _, q := range Qualities() {
		if q.matches(intervals) {
			return q, true
		}
	}
	return Quality{}, false
}

// Chord is a root, its quality and the spelled chord tones
type Chord struct {
	Root    note.Note
	Quality Quality
	Notes   []note.Note
	Degree  int // 1-based scale degree, 0 when built outside a scale
}

// String returns the chord symbol, e.g. "C", "Dm", "Bdim", "G7"
func (c Chord) String() string {
	return c.Root.WithoutRegister().String() + c.Quality.Suffix
}

// Numeral returns the roman numeral for the chord's degree, lower case for
// minor-third chords, e.g. "IV", "ii", "viio", "V7".
func (c Chord) Numeral() string {
	if c.Degree < 1 || c.Degree > len(numerals) {
		return ""
	}
	r := numerals[c.Degree-1]
	if c.Quality.Minor() {
		r = strings.ToLower(r)
	}
	return r + c.Quality.Mark
}

var numerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Build stacks a quality on root, spelling the tones with sp
func Build(root note.Note, q Quality, sp note.Spelling) Chord {
	c := Chord{Root: root, Quality: q, Notes: make([]note.Note, len(q.Intervals))}
	for i, iv := range q.Intervals {
		if i == 0 {
			c.Notes[i] = root
			continue
		}
		c.Notes[i] = Transpose(root, iv, sp)
	}
	return c
}

// Triads stacks thirds on every degree of a seven-note scale
func Triads(scale []note.Note) []Chord {
	return stack(scale, 3)
}

// Sevenths stacks four-note seventh chords on every degree
func Sevenths(scale []note.Note) []Chord {
	return stack(scale, 4)
}

func stack(scale []note.Note, size int) []Chord {
	chords := make([]Chord, 0, len(scale))
	for i := range scale {
		tones := make([]note.Note, size)
		intervals := make([]int, size)
		for j := 0; j < size; j++ {
			idx := i + 2*j
			n := scale[idx%len(scale)]
			if r, ok := n.Register(); ok {
				n = n.WithRegister(r + idx/len(scale))
			}
			tones[j] = n
			intervals[j] = Interval(tones[0], n)
		}

		q, ok := QualityOf(intervals)
		if !ok {
			q = Quality{Name: "unnamed", Suffix: "?", Mark: "?", Intervals: intervals}
		}
		chords = append(chords, Chord{Root: tones[0], Quality: q, Notes: tones, Degree: i + 1})
	}
	return chords
}
