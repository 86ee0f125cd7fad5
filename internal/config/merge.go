package config

import "strings"

func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Paths = ResolveStrings(out.Paths, layer.Paths)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.PathRegex = ResolveStrings(out.PathRegex, layer.PathRegex)
		out.ExcludeTypical = ResolveBool(out.ExcludeTypical, layer.ExcludeTypical)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.Root = ResolveAndTrim(out.Root, layer.Root)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "text"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Sort = ResolveAndTrim(out.Sort, layer.Sort)
		out.Fields = ResolveAndTrim(out.Fields, layer.Fields)
		out.Quiet = ResolveBool(out.Quiet, layer.Quiet)
	}
	return out
}
