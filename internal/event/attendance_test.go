package event

import (
	"testing"
)

func TestExtractAttendance(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		want       int
		wantPhrase string
		wantOK     bool
	}{
		{name: "attendees", text: "Tech Talk\n42 attendees", want: 42, wantPhrase: "42 attendees", wantOK: true},
		{name: "going", text: "7 going", want: 7, wantPhrase: "7 going", wantOK: true},
		{name: "rsvps", text: "120 RSVPs", want: 120, wantPhrase: "120 RSVPs", wantOK: true},
		{name: "people", text: "15 people", want: 15, wantPhrase: "15 people", wantOK: true},
		{name: "attending", text: "33 attending", want: 33, wantPhrase: "33 attending", wantOK: true},
		{name: "no space before word", text: "12attendees", want: 12, wantPhrase: "12attendees", wantOK: true},
		{name: "word then colon count", text: "Attendees: 12", want: 12, wantPhrase: "Attendees: 12", wantOK: true},
		{name: "word then dash count", text: "attendees - 30", want: 30, wantPhrase: "attendees - 30", wantOK: true},
		{name: "singular attendee", text: "attendee: 1", want: 1, wantPhrase: "attendee: 1", wantOK: true},
		{name: "zero attendees is a signal", text: "0 attendees", want: 0, wantPhrase: "0 attendees", wantOK: true},
		{name: "first match wins", text: "10 going and 99 attendees", want: 10, wantPhrase: "10 going", wantOK: true},
		{name: "whitespace collapsed across lines", text: "42\nattendees", want: 42, wantPhrase: "42 attendees", wantOK: true},
		{name: "no signal", text: "Join us for pizza and Go talks"},
		{name: "empty text", text: ""},
		{name: "bare number", text: "42"},
		{name: "number too long", text: "1234567 attendees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, phrase, ok := ExtractAttendance(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ExtractAttendance(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ExtractAttendance(%q) = %d, want %d", tt.text, got, tt.want)
			}
			if phrase != tt.wantPhrase {
				t.Errorf("ExtractAttendance(%q) phrase = %q, want %q", tt.text, phrase, tt.wantPhrase)
			}
		})
	}
}
