package note

import (
	"testing"

	"pgregory.net/rapid"
)

func TestPitchClass(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"C", 0}, {"C#", 1}, {"Db", 1}, {"E", 4}, {"E#", 5}, {"Fb", 4},
		{"B", 11}, {"B#", 0}, {"Cb", 11}, {"A4", 9}, {"Bb-1", 10},
	}
	for _, tt := range tests {
		if got := MustParse(tt.in).PitchClass(); got != tt.want {
			t.Errorf("PitchClass(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPitch(t *testing.T) {
	if _, ok := MustParse("C").Pitch(); ok {
		t.Error("Pitch() reported a value for a note with no register")
	}

	tests := []struct {
		in   string
		want int
	}{
		{"C0", 0}, {"C4", 48}, {"A4", 57}, {"Cb4", 47}, {"B#3", 48}, {"C-1", -12}, {"B-1", -1},
	}
	for _, tt := range tests {
		got, ok := MustParse(tt.in).Pitch()
		if !ok || got != tt.want {
			t.Errorf("Pitch(%s) = %d,%v want %d", tt.in, got, ok, tt.want)
		}
	}
}

func TestFromPitch(t *testing.T) {
	tests := []struct {
		pitch int
		sp    Spelling
		want  string
	}{
		{0, Sharps, "C0"},
		{49, Sharps, "C#4"},
		{49, Flats, "Db4"},
		{-1, Sharps, "B-1"},
		{-12, Flats, "C-1"},
		{-13, Flats, "B-2"},
	}
	for _, tt := range tests {
		if got := FromPitch(tt.pitch, tt.sp).String(); got != tt.want {
			t.Errorf("FromPitch(%d) = %s, want %s", tt.pitch, got, tt.want)
		}
	}
}

func TestFromPitchInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.IntRange(-1188, 1199).Draw(t, "pitch")
		sp := rapid.SampledFrom([]Spelling{Sharps, Flats}).Draw(t, "spelling")
		got, ok := FromPitch(p, sp).Pitch()
		if !ok || got != p {
			t.Fatalf("Pitch(FromPitch(%d)) = %d", p, got)
		}
	})
}

func TestEnharmonic(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"C#", "Db", true},
		{"E#", "F", true},
		{"Cb4", "B3", true},
		{"Cb4", "B4", false},
		{"C4", "C", true},
		{"C", "D", false},
	}
	for _, tt := range tests {
		if got := Enharmonic(MustParse(tt.a), MustParse(tt.b)); got != tt.want {
			t.Errorf("Enharmonic(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSpellingOf(t *testing.T) {
	for in, want := range map[string]Spelling{"C": Sharps, "F": Flats, "Bb": Flats, "F#": Sharps, "G": Sharps} {
		if got := SpellingOf(MustParse(in)); got != want {
			t.Errorf("SpellingOf(%s) = %v, want %v", in, got, want)
		}
	}
}

func TestLetterAdd(t *testing.T) {
	if got := G.Next(); got != A {
		t.Errorf("G.Next() = %v", got)
	}
	if got := C.Add(-3); got != G {
		t.Errorf("C.Add(-3) = %v", got)
	}
	if got := A.Add(9); got != C {
		t.Errorf("A.Add(9) = %v", got)
	}
}
