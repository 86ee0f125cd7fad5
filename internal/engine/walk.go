package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// typicalExcludes are directory names pruned when ExcludeTypical is set:
// build output and dependency trees that nobody wants linted.
var typicalExcludes = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
	".venv":        {},
	"__pycache__":  {},
}

// candidate は走査対象の 1 ファイルを表す。path は報告用の相対パス、
// abs は読み込み用の絶対パス。explicit はルートとして直接指定された
// ファイルかどうか。
type candidate struct {
	path     string
	abs      string
	size     int64
	explicit bool
}

// collectFiles resolves the roots in opts.Paths (relative to opts.RootDir)
// into the flat, de-duplicated list of files to scan. Roots that are files
// are taken as-is; directory roots are walked with pruning and filters
// applied. Unreadable roots are fatal, unreadable entries below a root are
// collected as item errors.
func collectFiles(opts Options) ([]candidate, []ItemError, error) {
	roots := opts.Paths
	if len(roots) == 0 {
		roots = []string{"."}
	}
	rootDir := strings.TrimSpace(opts.RootDir)
	if rootDir == "" {
		rootDir = "."
	}

	var out []candidate
	var errs []ItemError
	seen := make(map[string]struct{})

	add := func(c candidate) {
		if _, dup := seen[c.abs]; dup {
			return
		}
		seen[c.abs] = struct{}{}
		out = append(out, c)
	}

	for _, root := range roots {
		full := root
		if !filepath.IsAbs(full) {
			full = filepath.Join(rootDir, root)
		}
		info, err := os.Stat(full)
		if err != nil {
			return nil, nil, err
		}
		if info.Mode().IsRegular() {
			add(candidate{path: displayPath(rootDir, full), abs: full, size: info.Size(), explicit: true})
			continue
		}
		if !info.IsDir() {
			continue
		}
		walkErr := filepath.WalkDir(full, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, ItemError{File: displayPath(rootDir, p), Stage: "walk", Message: err.Error()})
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			rel := displayPath(rootDir, p)
			if d.IsDir() {
				if p == full {
					return nil
				}
				if opts.ExcludeTypical {
					if _, hit := typicalExcludes[d.Name()]; hit {
						return filepath.SkipDir
					}
				}
				if excluded(rel, d.Name(), opts.Excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if excluded(rel, d.Name(), opts.Excludes) {
				return nil
			}
			if !matchesPathRegex(rel, opts.PathRegexCompiled) {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				errs = append(errs, ItemError{File: rel, Stage: "stat", Message: err.Error()})
				return nil
			}
			add(candidate{path: rel, abs: p, size: fi.Size()})
			return nil
		})
		if walkErr != nil {
			return nil, nil, walkErr
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out, errs, nil
}

// excluded matches glob patterns against the slash-separated relative
// path and, as a convenience, against the bare entry name.
func excluded(rel, name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}

func matchesPathRegex(rel string, res []*regexp.Regexp) bool {
	if len(res) == 0 {
		return true
	}
	for _, re := range res {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}

// displayPath normalizes a path for reporting: relative to the run root
// when possible, always slash-separated.
func displayPath(rootDir, p string) string {
	if rel, err := filepath.Rel(rootDir, p); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(p)
}
