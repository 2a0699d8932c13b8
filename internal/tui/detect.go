package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how much terminal capability the CLI may use.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the richest mode the environment allows.
// NO_COLOR forces plain output; CI environments never get interactive mode.
func DetectOutputMode(forcePlain, noColor, ciMode bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, ciMode, IsTTY(), os.LookupEnv)
}

func detectOutputMode(
	forcePlain, noColor, ciMode, tty bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if _, ok := lookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	if _, ok := lookupEnv("CI"); ok {
		ciMode = true
	}

	switch {
	case forcePlain, noColor, !tty:
		return OutputModePlain
	case ciMode:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}
