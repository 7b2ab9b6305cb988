package extract

import (
	"strings"
	"testing"
)

func TestExtractPhonesLabeled(t *testing.T) {
	got := ExtractPhones("Contact: 98765 43210 for details")
	if !got.IsFound() {
		t.Fatalf("expected a phone number, got %q", got.Display())
	}
	if !strings.Contains(got.Text(), "9876543210") {
		t.Errorf("got %q, want digits run 9876543210", got.Text())
	}
}

func TestExtractPhonesKeepsPlusPrefix(t *testing.T) {
	got := ExtractPhones("Call +91 98765 43210 now")
	if !strings.Contains(got.Text(), "+919876543210") {
		t.Errorf("got %q, want +919876543210", got.Text())
	}
}

func TestExtractPhonesRejectsShortRuns(t *testing.T) {
	got := ExtractPhones("Room 42, March 2025, pin 123456")
	if got.IsFound() {
		t.Errorf("expected not found for short digit runs, got %q", got.Text())
	}
}

func TestExtractEmailsOCRSpaces(t *testing.T) {
	got := ExtractEmails("contact us at a @ b . com")
	if got.Text() != "a@b.com" {
		t.Errorf("got %q, want %q", got.Text(), "a@b.com")
	}
}

func TestExtractEmailsInvalid(t *testing.T) {
	if got := ExtractEmails("not-an-email"); got.IsFound() {
		t.Errorf("expected not found, got %q", got.Text())
	}
}

func TestExtractEmailsDedupAndSort(t *testing.T) {
	got := ExtractEmails("Write to Zoe@Example.com or alice@example.com; zoe@example.com works too")
	if got.Text() != "alice@example.com, zoe@example.com" {
		t.Errorf("got %q, want sorted deduplicated pair", got.Text())
	}
}

func TestExtractSocialLinksAndHandles(t *testing.T) {
	got := ExtractSocial("Follow facebook.com/ourevent and @ourevent")
	if !got.IsFound() {
		t.Fatalf("expected social media, got %q", got.Display())
	}
	if !strings.Contains(got.Text(), "facebook.com/ourevent") {
		t.Errorf("got %q, want facebook link", got.Text())
	}
	if !strings.Contains(got.Text(), "@ourevent") {
		t.Errorf("got %q, want handle", got.Text())
	}
}

func TestExtractSocialAbsent(t *testing.T) {
	if got := ExtractSocial("no links here"); got.IsFound() {
		t.Errorf("expected not found, got %q", got.Text())
	}
}
