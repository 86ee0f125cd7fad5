package util

import (
	"fmt"
	"os"
	"sync"
	"time"
)

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// ShouldShowProgress resolves the progress flag pair: an explicit disable
// wins, an explicit force comes next, otherwise progress is shown only
// when both stdout and stderr are terminals.
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

// ETA smoothing. Instantaneous rates are noisy when file sizes vary, so
// the estimate uses an exponential moving average of the completion rate
// and withholds the ETA until a few samples are in.
const (
	emaAlpha      = 0.3
	warmupSamples = 5
)

// Progress renders a single overwritten line on stderr with an ETA.
// Advance is safe to call from multiple workers.
type Progress struct {
	total   int
	start   time.Time
	enabled bool

	mu      sync.Mutex
	done    int
	lastAt  time.Time
	rateEMA float64
}

func NewProgress(total int, enabled bool) *Progress {
	now := time.Now()
	return &Progress{total: total, start: now, lastAt: now, enabled: enabled}
}

func (p *Progress) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	now := time.Now()
	if dt := now.Sub(p.lastAt).Seconds(); dt > 0 {
		rate := 1.0 / dt
		if p.rateEMA == 0 {
			p.rateEMA = rate
		} else {
			p.rateEMA = emaAlpha*rate + (1-emaAlpha)*p.rateEMA
		}
	}
	p.lastAt = now

	if !p.enabled {
		return
	}
	eta := "-"
	if p.done >= warmupSamples && p.rateEMA > 0 {
		remain := time.Duration(float64(p.total-p.done) / p.rateEMA * float64(time.Second))
		eta = fmt.Sprintf("%02d:%02d:%02d", int(remain.Hours()), int(remain.Minutes())%60, int(remain.Seconds())%60)
	}
	fmt.Fprintf(os.Stderr, "\r\033[K[progress] %d/%d (%d%%) ETA %s",
		p.done, p.total, percent(p.done, p.total), eta)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func percent(a, b int) int {
	if b == 0 {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
