package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oisee/scalecli/pkg/note"
	"github.com/oisee/scalecli/pkg/theory"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(8)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Width(6)
	rootStyle    = noteStyle.Bold(true).Foreground(lipgloss.Color("11"))
	chordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Width(8)
	numeralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Width(8)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View is one scale with its diatonic chords
type View struct {
	Title  string
	Scale  []note.Note
	Chords []theory.Chord
}

// NewView builds the scale and chords for root in mode
func NewView(root note.Note, mode theory.Mode, sevenths bool) View {
	scale := theory.Scale(root, mode)
	return viewOf(fmt.Sprintf("%s %s", root, mode), scale, sevenths)
}

// ConvertedView converts scale to key and builds its chords
func ConvertedView(scale []note.Note, key note.Note, sevenths bool) View {
	out := theory.Convert(scale, key)
	title := key.String()
	if m, ok := theory.DetectMode(out); ok {
		title += " " + m.Name
	}
	return viewOf(title, out, sevenths)
}

func viewOf(title string, scale []note.Note, sevenths bool) View {
	chords := theory.Triads(scale)
	if sevenths {
		chords = theory.Sevenths(scale)
	}
	return View{Title: title, Scale: scale, Chords: chords}
}

// Render draws a view as a styled block of rows
func Render(v View) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("notes"))
	for i, n := range v.Scale {
		style := noteStyle
		if i == 0 {
			style = rootStyle
		}
		b.WriteString(style.Render(n.String()))
	}
	b.WriteString("\n")

	if len(v.Chords) > 0 {
		b.WriteString(labelStyle.Render("chords"))
		for _, c := range v.Chords {
			b.WriteString(chordStyle.Render(c.String()))
		}
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("degree"))
		for _, c := range v.Chords {
			b.WriteString(numeralStyle.Render(c.Numeral()))
		}
		b.WriteString("\n")
	}

	return b.String()
}
