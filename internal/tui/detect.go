package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode decides how text reports are rendered.
type Mode int

const (
	// ModePlain emits unstyled text for pipes, files, CI logs and scripts.
	ModePlain Mode = iota
	// ModeStyled emits colored output for a human at a terminal.
	ModeStyled
)

// DetectMode determines whether text output written to f should be styled.
//
// Returns ModePlain if:
//   - DIRTALLY_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (https://no-color.org)
//   - f is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(f *os.File) Mode {
	if os.Getenv("DIRTALLY_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that reports whether stdout gets styled output.
func IsStyled() bool {
	return DetectMode(os.Stdout) == ModeStyled
}
