package locale

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"en", LangEnglish},
		{"hi", LangHindi},
		{"", LangEnglish},
		{"fr", LangEnglish},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTableHasBothLocales(t *testing.T) {
	en := Table(LangEnglish)
	hi := Table(LangHindi)

	if en.Nav.Festivals != "Festivals" {
		t.Errorf("english nav.festivals = %q", en.Nav.Festivals)
	}
	if hi.Nav.Festivals == "" || hi.Nav.Festivals == en.Nav.Festivals {
		t.Errorf("hindi nav.festivals not translated: %q", hi.Nav.Festivals)
	}
	if hi.Hero.Title == "" || hi.Sections.AIPriestTitle == "" || hi.Actions.ChatStart == "" {
		t.Error("hindi table has empty strings")
	}
}

func TestTableUnknownFallsBackToEnglish(t *testing.T) {
	got := Table(Language("de"))
	if got.Nav.Home != "Home" {
		t.Errorf("fallback nav.home = %q, want English", got.Nav.Home)
	}
}

func TestWeekdayLabels(t *testing.T) {
	en := WeekdayLabels(LangEnglish)
	if en[0] != "Sun" || en[6] != "Sat" {
		t.Errorf("english weekdays wrong: %v", en)
	}
	hi := WeekdayLabels(LangHindi)
	if hi[0] != "रवि" {
		t.Errorf("hindi weekdays wrong: %v", hi)
	}
}

func TestFormatters(t *testing.T) {
	// 2024-10-03 is a Thursday.
	d := time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC)

	if got := FormatMonthYear(LangEnglish, 2024, time.October); got != "October 2024" {
		t.Errorf("FormatMonthYear = %q", got)
	}
	if got := FormatFullDate(LangEnglish, d); got != "Thursday, October 3, 2024" {
		t.Errorf("FormatFullDate = %q", got)
	}
	if got := FormatShortDate(LangEnglish, d); got != "3 Oct 2024" {
		t.Errorf("FormatShortDate = %q", got)
	}
	if got := FormatMonthYear(LangHindi, 2024, time.October); got != "अक्टूबर 2024" {
		t.Errorf("hindi FormatMonthYear = %q", got)
	}
}
