package extract

import (
	"strings"
	"testing"
)

func TestExtractDateDayNameWithMisspelledMonth(t *testing.T) {
	got := ExtractDate("Join us Saturday, Feburary 28th 2025 for the gala")
	if !got.IsFound() {
		t.Fatalf("expected a date, got %q", got.Display())
	}
	// misspelling corrected, original ordering kept
	wantOrder := []string{"Saturday", "February", "28", "2025"}
	rest := got.Text()
	for _, part := range wantOrder {
		idx := strings.Index(rest, part)
		if idx < 0 {
			t.Fatalf("date %q missing %q", got.Text(), part)
		}
		rest = rest[idx+len(part):]
	}
	if strings.Contains(got.Text(), "Feburary") {
		t.Errorf("misspelling not corrected: %q", got.Text())
	}
}

func TestExtractDateFormats(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Date: March 15, 2025", "March 15, 2025"},
		{"on 15th March 2025", "15th March 2025"},
		{"happening 03/15/2025 at noon", "03/15/2025"},
		{"Mar 15 2025", "March 15 2025"},
	}
	for _, tc := range tests {
		got := ExtractDate(tc.text)
		if !got.IsFound() {
			t.Errorf("ExtractDate(%q): no date found", tc.text)
			continue
		}
		if got.Text() != tc.want {
			t.Errorf("ExtractDate(%q) = %q, want %q", tc.text, got.Text(), tc.want)
		}
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{
		"Sat, Feb 28th 2025",
		"15th March 2025",
		"Saturday, February 28th 2025",
	}
	for _, in := range inputs {
		once := normalizeDate(in)
		twice := normalizeDate(once)
		if once != twice {
			t.Errorf("normalizeDate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestExtractDatePartialFallback(t *testing.T) {
	// no cascade pattern matches here (no year, month and day not adjacent),
	// so the isolated components get reassembled in fixed order
	got := ExtractDate("See you Friday, sometime in March around the 28th")
	if !got.IsFound() {
		t.Fatalf("expected partial date, got %q", got.Display())
	}
	if got.Text() != "Friday March 28" {
		t.Errorf("partial date = %q, want %q", got.Text(), "Friday March 28")
	}
}

func TestExtractDateAbsent(t *testing.T) {
	if got := ExtractDate("no calendar information here"); got.IsFound() {
		t.Errorf("expected not found, got %q", got.Text())
	}
}
