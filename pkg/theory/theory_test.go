package theory

import (
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"pgregory.net/rapid"

	"github.com/oisee/scalecli/pkg/note"
)

func names(notes []note.Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func chordNames(chords []Chord) string {
	parts := make([]string, len(chords))
	for i, c := range chords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func TestScale(t *testing.T) {
	tests := []struct {
		root string
		mode Mode
		want string
	}{
		{"C", Major, "C D E F G A B"},
		{"F", Major, "F G A Bb C D E"},
		{"G", Major, "G A B C D E F#"},
		{"Eb", Major, "Eb F G Ab Bb C D"},
		{"A", NaturalMinor, "A B C D E F G"},
		{"A", HarmonicMinor, "A B C D E F G#"},
		{"D", Dorian, "D E F G A B C"},
		{"C#", Major, "C# D# F F# G# A# C"},
		{"C4", Major, "C4 D4 E4 F4 G4 A4 B4"},
		{"A3", NaturalMinor, "A3 B3 C4 D4 E4 F4 G4"},
		{"B-1", Major, "B-1 C#0 D#0 E0 F#0 G#0 A#0"},
	}
	for _, tt := range tests {
		got := names(Scale(note.MustParse(tt.root), tt.mode))
		if got != tt.want {
			t.Errorf("Scale(%s, %s) = %q, want %q", tt.root, tt.mode, got, tt.want)
		}
	}
}

func TestScaleKeepsLetterOrder(t *testing.T) {
	s := Scale(note.MustParse("Gb"), Major)
	for i, n := range s {
		if want := note.G.Add(i); n.Letter() != want {
			t.Errorf("degree %d letter = %v, want %v", i+1, n.Letter(), want)
		}
	}
	// Cb collapses to B when rendered
	if got := names(s); got != "Gb Ab Bb B Db Eb F" {
		t.Errorf("Gb major = %q", got)
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		in    string
		semis int
		sp    note.Spelling
		want  string
	}{
		{"C", 2, note.Sharps, "D"},
		{"C", 1, note.Flats, "Db"},
		{"B3", 1, note.Sharps, "C4"},
		{"C4", -1, note.Sharps, "B3"},
		{"A", -14, note.Sharps, "G"},
		{"E#2", 0, note.Sharps, "F2"},
	}
	for _, tt := range tests {
		got := Transpose(note.MustParse(tt.in), tt.semis, tt.sp).String()
		if got != tt.want {
			t.Errorf("Transpose(%s, %d) = %s, want %s", tt.in, tt.semis, got, tt.want)
		}
	}
}

func TestTransposeOctave(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pitch := rapid.IntRange(-600, 600).Draw(t, "pitch")
		octaves := rapid.IntRange(-4, 4).Draw(t, "octaves")
		n := note.FromPitch(pitch, note.Sharps)

		got := Transpose(n, 12*octaves, note.Sharps)
		if got.PitchClass() != n.PitchClass() {
			t.Fatalf("pitch class changed: %s -> %s", n, got)
		}
		r0, _ := n.Register()
		r1, _ := got.Register()
		if r1-r0 != octaves {
			t.Fatalf("register moved %d, want %d", r1-r0, octaves)
		}
	})
}

func TestInterval(t *testing.T) {
	if got := Interval(note.MustParse("G"), note.MustParse("C")); got != 5 {
		t.Errorf("Interval(G, C) = %d", got)
	}
	if got := Interval(note.MustParse("C#"), note.MustParse("Db")); got != 0 {
		t.Errorf("Interval(C#, Db) = %d", got)
	}
}

func TestConvert(t *testing.T) {
	c := Scale(note.MustParse("C"), Major)
	if got := names(Convert(c, note.MustParse("D"))); got != "D E F# G A B C#" {
		t.Errorf("Convert(C major, D) = %q", got)
	}
	if got := names(Convert(c, note.MustParse("Bb"))); got != "Bb C D Eb F G A" {
		t.Errorf("Convert(C major, Bb) = %q", got)
	}

	odd := []note.Note{note.MustParse("C"), note.MustParse("E"), note.MustParse("G")}
	if got := names(Convert(odd, note.MustParse("Eb"))); got != "Eb G Bb" {
		t.Errorf("Convert(C E G, Eb) = %q", got)
	}
	if Convert(nil, note.MustParse("C")) != nil {
		t.Error("Convert(nil) returned notes")
	}
}

func TestDetectMode(t *testing.T) {
	for _, m := range Modes() {
		got, ok := DetectMode(Scale(note.MustParse("E"), m))
		if !ok || got.Name != m.Name {
			t.Errorf("DetectMode(E %s) = %v, %v", m, got, ok)
		}
	}
	if _, ok := DetectMode([]note.Note{note.New(note.C)}); ok {
		t.Error("DetectMode accepted a one-note scale")
	}
}

func TestModeByName(t *testing.T) {
	for in, want := range map[string]Mode{
		"major": Major, "Ionian": Major, "MINOR": NaturalMinor, "aeolian": NaturalMinor,
		" dorian ": Dorian, "harmonic-minor": HarmonicMinor,
	} {
		got, err := ModeByName(in)
		if err != nil || got.Name != want.Name {
			t.Errorf("ModeByName(%q) = %v, %v", in, got, err)
		}
	}

	_, err := ModeByName("bebop")
	if ftag.Get(err) != UnknownMode {
		t.Errorf("ModeByName(bebop) err = %v", err)
	}
}

func TestTriads(t *testing.T) {
	tests := []struct {
		root string
		mode Mode
		want string
	}{
		{"C", Major, "C Dm Em F G Am Bdim"},
		{"A", NaturalMinor, "Am Bdim C Dm Em F G"},
		{"A", HarmonicMinor, "Am Bdim Caug Dm E F G#dim"},
		{"D", Major, "D Em F#m G A Bm C#dim"},
	}
	for _, tt := range tests {
		got := chordNames(Triads(Scale(note.MustParse(tt.root), tt.mode)))
		if got != tt.want {
			t.Errorf("Triads(%s %s) = %q, want %q", tt.root, tt.mode, got, tt.want)
		}
	}
}

func TestSevenths(t *testing.T) {
	got := chordNames(Sevenths(Scale(note.MustParse("C"), Major)))
	if want := "Cmaj7 Dm7 Em7 Fmaj7 G7 Am7 Bm7b5"; got != want {
		t.Errorf("Sevenths(C major) = %q, want %q", got, want)
	}
}

func TestNumerals(t *testing.T) {
	var got []string
	for _, c := range Triads(Scale(note.MustParse("C"), Major)) {
		got = append(got, c.Numeral())
	}
	if s := strings.Join(got, " "); s != "I ii iii IV V vi viio" {
		t.Errorf("numerals = %q", s)
	}
	if n := (Chord{}).Numeral(); n != "" {
		t.Errorf("Numeral() outside a scale = %q", n)
	}
}

func TestTriadRegisters(t *testing.T) {
	chords := Triads(Scale(note.MustParse("C4"), Major))
	if got := names(chords[5].Notes); got != "A4 C5 E5" {
		t.Errorf("vi chord tones = %q", got)
	}
	if got := chords[5].String(); got != "Am" {
		t.Errorf("vi chord symbol = %q", got)
	}
}

func TestBuild(t *testing.T) {
	c := Build(note.MustParse("G"), Dominant7, note.Sharps)
	if got := names(c.Notes); got != "G B D F" {
		t.Errorf("G7 tones = %q", got)
	}
	if c.String() != "G7" {
		t.Errorf("symbol = %q", c.String())
	}
}
