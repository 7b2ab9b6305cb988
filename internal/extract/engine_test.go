package extract

import (
	"strings"
	"testing"
)

const samplePoster = `ANNUAL TECH SUMMIT 2025
Join us Saturday, Feburary 28th 2025
Time: 10.00 AM = 01.00 PM
Venue: Grand Conference Hall, Zurich
Open to all students and developers
Contact: 9876543210
Email: info@techsummit.example
Entry Free for students, $50 for professionals
Follow facebook.com/techsummit`

func TestEngineExtractFullPoster(t *testing.T) {
	rec := NewEngine(nil).Extract(samplePoster)

	if rec.EventName != "ANNUAL TECH SUMMIT 2025" {
		t.Errorf("EventName = %q", rec.EventName)
	}
	if !strings.Contains(rec.Date, "February 28") {
		t.Errorf("Date = %q, want corrected February 28", rec.Date)
	}
	if rec.Time != "10:00 AM - 01:00 PM" {
		t.Errorf("Time = %q", rec.Time)
	}
	if !strings.HasPrefix(rec.Venue, "Grand Conference Hall") {
		t.Errorf("Venue = %q", rec.Venue)
	}
	for _, want := range []string{"Student", "Developer"} {
		if !strings.Contains(rec.Audience, want) {
			t.Errorf("Audience = %q, missing %q", rec.Audience, want)
		}
	}
	if rec.EventType != "Offline" {
		t.Errorf("EventType = %q", rec.EventType)
	}
	if !strings.Contains(rec.Phone, "9876543210") {
		t.Errorf("Phone = %q", rec.Phone)
	}
	if !strings.Contains(rec.Email, "info@techsummit.example") {
		t.Errorf("Email = %q", rec.Email)
	}
	if !strings.Contains(rec.Social, "facebook.com/techsummit") {
		t.Errorf("Social = %q", rec.Social)
	}
	if !strings.Contains(rec.Price, "Free") || !strings.Contains(rec.Price, "$50") {
		t.Errorf("Price = %q", rec.Price)
	}
}

func TestEngineExtractEmptyText(t *testing.T) {
	rec := NewEngine(nil).Extract("")

	for _, pair := range []struct{ field, got, want string }{
		{"EventName", rec.EventName, "Not found"},
		{"Date", rec.Date, "Not found"},
		{"Time", rec.Time, "Not found"},
		{"Venue", rec.Venue, "Not found"},
		{"Audience", rec.Audience, "Not specified"},
		{"EventType", rec.EventType, "Not specified"},
		{"Phone", rec.Phone, "Not found"},
		{"Email", rec.Email, "Not found"},
		{"Social", rec.Social, "Not found"},
		{"Price", rec.Price, "Not found"},
	} {
		if pair.got != pair.want {
			t.Errorf("%s = %q, want %q", pair.field, pair.got, pair.want)
		}
	}
}
