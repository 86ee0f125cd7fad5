package util

import "testing"

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatal("explicit disable must win over force")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatal("force should enable progress even when piped")
	}
	// Under go test stdout/stderr are not terminals.
	if ShouldShowProgress(false, false) {
		t.Fatal("progress should stay off without a TTY")
	}
}

func TestProgressCountsWhenDisabled(t *testing.T) {
	p := NewProgress(3, false)
	p.Advance()
	p.Advance()
	p.Done()
	if p.done != 2 {
		t.Fatalf("done = %d, want 2", p.done)
	}
	if p.rateEMA <= 0 {
		t.Fatalf("rateEMA = %f, want > 0", p.rateEMA)
	}
}

func TestPercent(t *testing.T) {
	if percent(1, 4) != 25 {
		t.Fatalf("percent(1,4) = %d", percent(1, 4))
	}
	if percent(0, 0) != 100 {
		t.Fatalf("percent(0,0) = %d", percent(0, 0))
	}
}
