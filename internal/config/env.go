package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/brackx/internal/engine/opts"
)

// FromEnv builds a config layer from BRACKX_* environment variables.
// Unset and blank variables leave the corresponding field nil.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setList(&cfg.Engine.Paths, "BRACKX_PATH")
	setList(&cfg.Engine.Excludes, "BRACKX_EXCLUDE")
	setList(&cfg.Engine.PathRegex, "BRACKX_PATH_REGEX")
	setBool(&cfg.Engine.ExcludeTypical, "BRACKX_EXCLUDE_TYPICAL")
	setInt(&cfg.Engine.MaxFileBytes, "BRACKX_MAX_FILE_BYTES", 0, math.MaxInt)
	// Allow large values here and rely on NormalizeAndValidate to enforce the
	// canonical upper bound so every input path shares the same error message.
	setInt(&cfg.Engine.Jobs, "BRACKX_JOBS", 0, math.MaxInt)
	setString(&cfg.Engine.Root, "BRACKX_ROOT")
	setString(&cfg.Engine.Output, "BRACKX_OUTPUT")
	setString(&cfg.Engine.Color, "BRACKX_COLOR")

	setString(&cfg.UI.Sort, "BRACKX_SORT")
	setString(&cfg.UI.Fields, "BRACKX_FIELDS")
	setBool(&cfg.UI.Quiet, "BRACKX_QUIET")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
