package engine

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/phyten/brackx/internal/checker"
	"github.com/phyten/brackx/internal/model"
	"github.com/phyten/brackx/internal/util"
)

// sniffLen is how many leading bytes are inspected for NUL when deciding
// whether a file is binary.
const sniffLen = 8192

// Run は指定されたオプションに従ってファイル群を走査し、括弧エラーの一覧と
// 集計を返します。
//
// 成功時には発見した項目と補助情報を保持した Result を返し、
// 個々のファイルで発生した読み込みエラーは Result.Errors に集約されます。
func Run(opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	files, walkErrs, err := collectFiles(opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &Result{ElapsedMS: msSince(start), Errors: walkErrs, ErrorCount: len(walkErrs)}, nil
	}

	reports := make([]FileReport, len(files))
	checked := make([]bool, len(files))
	prog := util.NewProgress(len(files), opts.Progress)
	var errsMu sync.Mutex
	errs := walkErrs

	// worker pool
	type job struct {
		idx int
		c   candidate
	}
	jobs := make(chan job)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			rep, itemErr := checkOne(opts, j.c)
			if itemErr != nil {
				errsMu.Lock()
				errs = append(errs, *itemErr)
				errsMu.Unlock()
			} else if rep != nil {
				reports[j.idx] = FileReport{File: j.c.path, Report: *rep}
				checked[j.idx] = true
			}
			prog.Advance()
		}
	}

	nw := opts.Jobs
	if nw < 1 {
		nw = 1
	}
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		go worker()
	}
	for i, c := range files {
		jobs <- job{idx: i, c: c}
	}
	close(jobs)
	wg.Wait()
	prog.Done()

	res := &Result{ElapsedMS: msSince(start)}
	for i, rep := range reports {
		if !checked[i] {
			continue
		}
		res.Checked++
		if rep.Report.Balanced() {
			res.Balanced++
			continue
		}
		res.Broken++
		res.Items = append(res.Items, expandReport(rep)...)
	}

	// stable order by file, then position
	sort.SliceStable(res.Items, func(i, j int) bool {
		a, b := res.Items[i], res.Items[j]
		if a.File != b.File {
			return a.File < b.File
		}
		al, ac := a.Pos()
		bl, bc := b.Pos()
		if al != bl {
			return al < bl
		}
		return ac < bc
	})
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	res.Total = len(res.Items)
	res.Errors = errs
	res.ErrorCount = len(errs)
	res.ElapsedMS = msSince(start)
	return res, nil
}

// expandReport flattens a per-file report into printable items. Unclosed
// openers become one item each, preserving the stack's bottom-to-top
// order; the other statuses map to a single item.
func expandReport(rep FileReport) []Item {
	switch rep.Report.Status {
	case model.KindExtraClosing:
		return []Item{{File: rep.File, Status: model.KindExtraClosing, Close: rep.Report.Close}}
	case model.KindMismatched:
		return []Item{{File: rep.File, Status: model.KindMismatched, Open: rep.Report.Open, Close: rep.Report.Close}}
	case model.KindUnclosed:
		items := make([]Item, 0, len(rep.Report.Unclosed))
		for i := range rep.Report.Unclosed {
			ref := rep.Report.Unclosed[i]
			items = append(items, Item{File: rep.File, Status: model.KindUnclosed, Open: &ref})
		}
		return items
	default:
		return nil
	}
}

func newItemError(file, stage string, err error) *ItemError {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &ItemError{File: file, Stage: stage, Message: msg}
}

// checkOne loads a single candidate and scans it. Binary and oversized
// files found during a tree walk are skipped without a trace (explicitly
// listed files report the reason instead); the (nil, nil) return marks a
// skip.
func checkOne(opts Options, c candidate) (*checker.Report, *ItemError) {
	if opts.MaxFileBytes > 0 && c.size > int64(opts.MaxFileBytes) {
		if c.explicit {
			return nil, newItemError(c.path, "size", fmt.Errorf("file exceeds max_file_bytes (%d > %d)", c.size, opts.MaxFileBytes))
		}
		return nil, nil
	}
	data, err := os.ReadFile(c.abs)
	if err != nil {
		return nil, newItemError(c.path, "read", err)
	}
	if looksBinary(data) {
		if c.explicit {
			return nil, newItemError(c.path, "decode", fmt.Errorf("binary content (NUL byte in first %d bytes)", sniffLen))
		}
		return nil, nil
	}
	rep, err := checker.CheckReader(bytes.NewReader(data))
	if err != nil {
		return nil, newItemError(c.path, "scan", err)
	}
	return &rep, nil
}

func looksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// CompilePathRegex compiles path filter expressions up front so invalid
// patterns fail before any file is touched.
func CompilePathRegex(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}
