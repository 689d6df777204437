package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewCaptureTime(t *testing.T) {
	tests := []struct {
		name    string
		parts   [6]int
		wantErr bool
	}{
		{"regular", [6]int{2025, 6, 15, 14, 30, 0}, false},
		{"epoch", [6]int{1970, 1, 1, 0, 0, 0}, false},
		{"leap day", [6]int{2024, 2, 29, 12, 0, 0}, false},
		{"end of day", [6]int{1999, 12, 31, 23, 59, 59}, false},
		{"before epoch", [6]int{1969, 12, 31, 23, 59, 59}, true},
		{"all zero", [6]int{0, 0, 0, 0, 0, 0}, true},
		{"month 13", [6]int{2025, 13, 1, 0, 0, 0}, true},
		{"day 0", [6]int{2025, 1, 0, 0, 0, 0}, true},
		{"february 30", [6]int{2025, 2, 30, 0, 0, 0}, true},
		{"not a leap year", [6]int{2023, 2, 29, 0, 0, 0}, true},
		{"april 31", [6]int{2025, 4, 31, 0, 0, 0}, true},
		{"hour 24", [6]int{2025, 1, 1, 24, 0, 0}, true},
		{"minute 60", [6]int{2025, 1, 1, 0, 60, 0}, true},
		{"second 60", [6]int{2025, 1, 1, 0, 0, 60}, true},
		{"negative", [6]int{2025, 1, 1, -1, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.parts
			_, err := NewCaptureTime(p[0], p[1], p[2], p[3], p[4], p[5])
			if tt.wantErr {
				if !errors.Is(err, ErrImplausibleDate) {
					t.Errorf("NewCaptureTime(%v) error = %v, want ErrImplausibleDate", p, err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewCaptureTime(%v) error = %v", p, err)
			}
		})
	}
}

func TestCaptureTime_Names(t *testing.T) {
	ct, err := NewCaptureTime(2025, 6, 5, 4, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	if got := ct.DayFolder(); got != "2025/06/05" {
		t.Errorf("DayFolder() = %q, want %q", got, "2025/06/05")
	}
	if got := ct.MonthFolder(); got != "2025/06" {
		t.Errorf("MonthFolder() = %q, want %q", got, "2025/06")
	}
	if got := ct.FileStem(); got != "20250605_040302" {
		t.Errorf("FileStem() = %q, want %q", got, "20250605_040302")
	}
	if got := ct.String(); got != "2025-06-05 04:03:02" {
		t.Errorf("String() = %q, want %q", got, "2025-06-05 04:03:02")
	}
	if got, want := ct.Time(), time.Date(2025, 6, 5, 4, 3, 2, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestCaptureTime_MonthKey(t *testing.T) {
	a, _ := NewCaptureTime(2025, 6, 1, 0, 0, 0)
	b, _ := NewCaptureTime(2025, 6, 30, 23, 59, 59)
	c, _ := NewCaptureTime(2024, 6, 1, 0, 0, 0)

	if a.MonthKey() != b.MonthKey() {
		t.Error("same month should share a key")
	}
	if a.MonthKey() == c.MonthKey() {
		t.Error("same month in different years should not share a key")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"daily", ModeDaily, false},
		{"Monthly", ModeMonthly, false},
		{"COMPACT", ModeCompact, false},
		{"flat", ModeFlat, false},
		{"weekly", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	for _, m := range Modes() {
		back, err := ParseMode(m.String())
		if err != nil || back != m {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", m.String(), back, err, m)
		}
	}
	if got := Mode(42).String(); got != "Mode(42)" {
		t.Errorf("Mode(42).String() = %q", got)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"move", ActionMove, false},
		{"Copy", ActionCopy, false},
		{"link", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
