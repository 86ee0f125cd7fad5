package config

import (
	"strings"

	"github.com/phyten/brackx/internal/engine"
)

type EngineConfig struct {
	Paths          *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	PathRegex      *[]string `yaml:"path_regex" toml:"path_regex" json:"path_regex"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Root           *string   `yaml:"root" toml:"root" json:"root"`
	Output         *string   `yaml:"output" toml:"output" json:"output"`
	Color          *string   `yaml:"color" toml:"color" json:"color"`
}

type UIConfig struct {
	Sort   *string `yaml:"sort" toml:"sort" json:"sort"`
	Fields *string `yaml:"fields" toml:"fields" json:"fields"`
	Quiet  *bool   `yaml:"quiet" toml:"quiet" json:"quiet"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type EngineSettings struct {
	Paths          []string
	Excludes       []string
	PathRegex      []string
	ExcludeTypical bool
	MaxFileBytes   int
	Jobs           int
	Root           string
	Output         string
	Color          string
}

type UISettings struct {
	Sort   string
	Fields string
	Quiet  bool
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Paths:          cloneStrings(opts.Paths),
		Excludes:       cloneStrings(opts.Excludes),
		PathRegex:      cloneStrings(opts.PathRegex),
		ExcludeTypical: opts.ExcludeTypical,
		MaxFileBytes:   opts.MaxFileBytes,
		Jobs:           opts.Jobs,
		Root:           opts.RootDir,
		Output:         "text",
		Color:          "auto",
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Paths = cloneStrings(s.Paths)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.PathRegex = cloneStrings(s.PathRegex)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.MaxFileBytes = s.MaxFileBytes
	opts.Jobs = s.Jobs
	if trimmed := strings.TrimSpace(s.Root); trimmed != "" {
		opts.RootDir = trimmed
	}
}

func DefaultUISettings() UISettings {
	return UISettings{
		Sort:   "",
		Fields: "",
		Quiet:  false,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
