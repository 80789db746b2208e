package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Southclaws/fault/fmsg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oisee/scalecli/pkg/note"
	"github.com/oisee/scalecli/pkg/theory"
	"github.com/oisee/scalecli/pkg/tui"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	scale    string
	key      string
	mode     string
	sevenths bool
	browse   bool
	debug    bool
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("scalecli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.scale, "scale", "", "The original scale to convert (e.g. C, F#, Bb3)")
	fs.StringVar(&o.scale, "s", "", "Shorthand for --scale")
	fs.StringVar(&o.key, "key", "", "Transpose the scale to this key")
	fs.StringVar(&o.key, "k", "", "Shorthand for --key")
	fs.StringVar(&o.mode, "mode", theory.Major.Name, "Scale mode (major, minor, dorian, ...)")
	fs.StringVar(&o.mode, "m", theory.Major.Name, "Shorthand for --mode")
	fs.BoolVar(&o.sevenths, "sevenths", false, "Generate seventh chords instead of triads")
	fs.BoolVar(&o.browse, "tui", false, "Open the interactive scale browser")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if o.scale == "" {
		return o, errors.New("--scale is required")
	}
	return o, nil
}

// userMessage prefers the description written for end users
func userMessage(err error) string {
	if issue := fmsg.GetIssue(err); issue != "" {
		return issue
	}
	return err.Error()
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	log := newLogger(stderr, o.debug)
	slog.SetDefault(log)

	root, err := note.Parse(o.scale)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", userMessage(err))
		return exitUsage
	}
	mode, err := theory.ModeByName(o.mode)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", userMessage(err))
		return exitUsage
	}
	log.Debug("scale parsed", "input", o.scale, "note", root, "mode", mode.Name)

	view := tui.NewView(root, mode, o.sevenths)

	var converted *tui.View
	if o.key != "" {
		key, err := note.Parse(o.key)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", userMessage(err))
			return exitUsage
		}
		v := tui.ConvertedView(view.Scale, key, o.sevenths)
		converted = &v
		log.Debug("scale converted", "from", root, "to", key, "interval", theory.Interval(root, key))
	}

	if o.browse {
		start := root
		if converted != nil {
			start = converted.Scale[0]
		}
		p := tea.NewProgram(tui.NewModel(start, mode, o.sevenths, log))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	fmt.Fprint(stdout, tui.Render(view))
	if converted != nil {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, tui.Render(*converted))
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
