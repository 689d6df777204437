package model

import (
	"errors"
	"fmt"
	"time"
)

// MinCaptureYear is the earliest year accepted as a capture timestamp.
// Cameras with an unset clock commonly report 0000 or a date before the
// Unix epoch; such values are not trusted.
const MinCaptureYear = 1970

// ErrImplausibleDate is returned by NewCaptureTime when the components do
// not form a real calendar date and time, or predate MinCaptureYear.
var ErrImplausibleDate = errors.New("implausible capture date")

// CaptureTime is the moment a photo was taken, as recorded in its
// embedded metadata.
//
// A CaptureTime is only ever built through NewCaptureTime, so every value
// in circulation is a valid Gregorian date and time no earlier than 1970.
//
// Example:
//
//	ct, err := NewCaptureTime(2025, 6, 15, 14, 30, 0)
//	ct.DayFolder()   // "2025/06/15"
//	ct.MonthFolder() // "2025/06"
//	ct.FileStem()    // "20250615_143000"
type CaptureTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// NewCaptureTime validates the components and returns a CaptureTime.
//
// Out-of-range components (month 13, February 30th, hour 24, ...) and years
// before MinCaptureYear yield ErrImplausibleDate.
func NewCaptureTime(year, month, day, hour, minute, second int) (CaptureTime, error) {
	if year < MinCaptureYear || year > 9999 {
		return CaptureTime{}, fmt.Errorf("%w: year %d", ErrImplausibleDate, year)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return CaptureTime{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d",
			ErrImplausibleDate, year, month, day, hour, minute, second)
	}

	// time.Date normalises overflow (Feb 30 -> Mar 2); a round trip that
	// changes the day means the date does not exist.
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return CaptureTime{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist",
			ErrImplausibleDate, year, month, day)
	}

	return CaptureTime{
		Year:   uint16(year),
		Month:  uint8(month),
		Day:    uint8(day),
		Hour:   uint8(hour),
		Minute: uint8(minute),
		Second: uint8(second),
	}, nil
}

// Time converts the capture time to a time.Time in UTC. EXIF carries no
// zone information, so the zone is nominal.
func (c CaptureTime) Time() time.Time {
	return time.Date(int(c.Year), time.Month(c.Month), int(c.Day),
		int(c.Hour), int(c.Minute), int(c.Second), 0, time.UTC)
}

// DayFolder returns the "YYYY/MM/DD" folder, using forward slashes.
func (c CaptureTime) DayFolder() string {
	return fmt.Sprintf("%04d/%02d/%02d", c.Year, c.Month, c.Day)
}

// MonthFolder returns the "YYYY/MM" folder, using forward slashes.
func (c CaptureTime) MonthFolder() string {
	return fmt.Sprintf("%04d/%02d", c.Year, c.Month)
}

// FileStem returns the "YYYYMMDD_hhmmss" name used when renaming.
func (c CaptureTime) FileStem() string {
	return fmt.Sprintf("%04d%02d%02d_%02d%02d%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// MonthKey identifies the (year, month) group a photo belongs to.
type MonthKey struct {
	Year  uint16
	Month uint8
}

// MonthKey returns the grouping key used by compact mode.
func (c CaptureTime) MonthKey() MonthKey {
	return MonthKey{Year: c.Year, Month: c.Month}
}

func (c CaptureTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}
