package extract

import "testing"

func TestExtractTitlePrefersHeadlineOverMetadata(t *testing.T) {
	text := "ANNUAL TECH SUMMIT 2025\nDate: March 5\nVenue: City Hall"
	got := ExtractTitle(text)
	if !got.IsFound() {
		t.Fatalf("expected a title, got %q", got.Display())
	}
	if got.Text() != "ANNUAL TECH SUMMIT 2025" {
		t.Errorf("expected headline, got %q", got.Text())
	}
}

func TestExtractTitleExplicitLabel(t *testing.T) {
	text := "Event Name: Future of Robotics Workshop\nSome other line"
	got := ExtractTitle(text)
	if got.Text() != "Future of Robotics Workshop" {
		t.Errorf("expected labeled title, got %q", got.Text())
	}
}

func TestExtractTitleJoinUs(t *testing.T) {
	text := "Join us for the International AI Conference on 12 March 2025\nRegister now"
	got := ExtractTitle(text)
	if !got.IsFound() {
		t.Fatalf("expected a title, got %q", got.Display())
	}
	if len(got.Text()) < 5 {
		t.Errorf("title too short: %q", got.Text())
	}
}

func TestExtractTitleEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n"} {
		if got := ExtractTitle(text); got.IsFound() {
			t.Errorf("ExtractTitle(%q) = %q, want not found", text, got.Text())
		}
	}
}

func TestScoreTitleLineFactors(t *testing.T) {
	w := defaultTitleWeights

	// a short, early, all-caps line with an event keyword scores higher
	// than a long lowercase line further down
	strong := scoreTitleLine("TECH CONFERENCE 2025", 0, 12, w)
	weak := scoreTitleLine("this is a much longer line of ordinary body text that goes on and on about details", 9, 12, w)
	if strong <= weak {
		t.Errorf("expected headline-shaped line to outscore body text: %d vs %d", strong, weak)
	}

	// position contributes on its own
	early := scoreTitleLine("Some Event Title", 0, 12, w)
	late := scoreTitleLine("Some Event Title", 11, 12, w)
	if early <= late {
		t.Errorf("expected position boost for early lines: %d vs %d", early, late)
	}
}

func TestExtractTitleSkipsBoilerplateLines(t *testing.T) {
	text := "Organised by ACME Corp\nContact: 9876543210\nGlobal Health Symposium\nwww.example.com"
	got := ExtractTitle(text)
	if got.Text() != "Global Health Symposium" {
		t.Errorf("expected symposium line, got %q", got.Text())
	}
}
