package termcolor

import (
	"strings"

	"github.com/phyten/brackx/internal/model"
)

// Profile selects how rich the palette may be. Detection looks at
// COLORTERM first, then TERM; anything unrecognized gets the basic
// 8-color set.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func DetectProfile(env map[string]string) Profile {
	if env == nil {
		return ProfileBasic8
	}
	if v := strings.ToLower(strings.TrimSpace(env["COLORTERM"])); v != "" {
		if strings.Contains(v, "truecolor") || strings.Contains(v, "24bit") || strings.Contains(v, "24-bit") {
			return ProfileTrueColor
		}
	}
	if v := strings.ToLower(strings.TrimSpace(env["TERM"])); strings.Contains(v, "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// StatusStyle maps a scan status to its color: balanced green, unclosed
// yellow, mismatched red, extra closers bold red. Richer profiles pick
// brighter variants of the same hues.
func StatusStyle(kind model.Kind, profile Profile) Style {
	switch kind {
	case model.KindBalanced:
		return fg(2, 40, profile, false)
	case model.KindUnclosed:
		return fg(3, 214, profile, false)
	case model.KindMismatched:
		return fg(1, 196, profile, false)
	case model.KindExtraClosing:
		return fg(1, 196, profile, true)
	default:
		return Style{}
	}
}

func fg(basic, ansi256 int, profile Profile, bold bool) Style {
	if profile >= ProfileANSI256 {
		return Style{FG256: &ansi256, Bold: bold}
	}
	return Style{FGBasic: &basic, Bold: bold}
}
