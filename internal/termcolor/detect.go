// Package termcolor decides when and how diagnostics are colored. Mode
// resolution honours the usual environment conventions (NO_COLOR,
// CLICOLOR, CLICOLOR_FORCE, FORCE_COLOR, TERM=dumb) before falling back
// to a TTY check.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// EnvMap converts os.Environ-style "KEY=VALUE" entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		if idx := strings.Index(entry, "="); idx >= 0 {
			env[entry[:idx]] = entry[idx+1:]
		} else {
			env[entry] = ""
		}
	}
	return env
}

// DetectMode resolves the auto mode against the environment. Suppression
// (TERM=dumb, NO_COLOR, CLICOLOR=0) wins over forcing (CLICOLOR_FORCE,
// FORCE_COLOR); with neither present, colors require stdout to be a TTY.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	if env != nil {
		switch {
		case strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb"):
			return ModeNever
		case strings.TrimSpace(env["NO_COLOR"]) != "":
			return ModeNever
		case strings.TrimSpace(env["CLICOLOR"]) == "0":
			return ModeNever
		case isForced(env["CLICOLOR_FORCE"]) || isForced(env["FORCE_COLOR"]):
			return ModeAlways
		}
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether colors should be emitted for the given mode.
// ModeAuto delegates to the TTY check on stdout.
func Enabled(mode ColorMode, stdout *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal(stdout)
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func isForced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
