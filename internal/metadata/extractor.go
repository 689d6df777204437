package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/handiism/photo-organizer/internal/model"
	"github.com/rwcarlsen/goexif/exif"
)

// DecodeFunc decodes the EXIF block of a container.
type DecodeFunc func(r io.Reader) (*exif.Exif, error)

// Extractor reads capture timestamps from files.
//
// The zero value is not usable; create one with NewExtractor.
type Extractor struct {
	decode DecodeFunc
}

// NewExtractor returns an Extractor backed by goexif.
func NewExtractor() *Extractor {
	return &Extractor{decode: exif.Decode}
}

// NewExtractorWithDecoder returns an Extractor that uses decode instead of
// exif.Decode.
func NewExtractorWithDecoder(decode DecodeFunc) *Extractor {
	return &Extractor{decode: decode}
}

// Extract returns the capture time stored in the file's primary DateTime
// tag. The file is only read.
func (e *Extractor) Extract(path string) (model.CaptureTime, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.CaptureTime{}, &ExtractError{Kind: KindIO, Path: path, Err: err}
	}
	defer f.Close()

	x, err := e.decode(bufio.NewReader(f))
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		if err == nil {
			err = errors.New("decoder returned no data")
		}
		return model.CaptureTime{}, &ExtractError{Kind: KindMalformedContainer, Path: path, Err: err}
	}

	tag, err := x.Get(exif.DateTime)
	if err != nil {
		return model.CaptureTime{}, &ExtractError{Kind: KindNoTimestamp, Path: path, Err: ErrNoDateTime}
	}

	raw, err := tag.StringVal()
	if err != nil {
		// DateTime is defined as ASCII; any other type is unusable.
		return model.CaptureTime{}, &ExtractError{Kind: KindNoTimestamp, Path: path, Err: ErrNoDateTime}
	}

	taken, err := ParseDateTime(raw)
	if err != nil {
		kind := KindUnparsableDate
		if errors.Is(err, ErrNoDateTime) || errors.Is(err, model.ErrImplausibleDate) {
			kind = KindNoTimestamp
		}
		return model.CaptureTime{}, &ExtractError{Kind: kind, Path: path, Err: err}
	}

	return taken, nil
}

// ParseDateTime parses an EXIF DateTime value ("YYYY:MM:DD hh:mm:ss").
//
// Only the EXIF separators are accepted, so ISO 8601 forms such as
// "2025-06-15T12:34:56" are rejected. Trailing NULs and spaces are
// ignored, as are characters after the seconds field. An empty or blank-filled value ("    :  :     :  :  ")
// yields ErrNoDateTime; a value that parses but is not a real date after
// 1970 yields an error wrapping model.ErrImplausibleDate.
func ParseDateTime(raw string) (model.CaptureTime, error) {
	s := strings.TrimRight(raw, "\x00 ")
	if strings.Trim(s, " :") == "" {
		return model.CaptureTime{}, ErrNoDateTime
	}
	if len(s) < 19 {
		return model.CaptureTime{}, fmt.Errorf("invalid DateTime %q: too short", s)
	}

	// Positions 4 and 7 separate the date, 10 separates date and time,
	// 13 and 16 separate the time.
	seps := map[int]string{4: ":", 7: ":", 10: " ", 13: ":", 16: ":"}
	for pos, allowed := range seps {
		if !strings.ContainsRune(allowed, rune(s[pos])) {
			return model.CaptureTime{}, fmt.Errorf("invalid DateTime %q: unexpected %q at %d", s, s[pos], pos)
		}
	}

	fields := [6]struct{ from, to int }{{0, 4}, {5, 7}, {8, 10}, {11, 13}, {14, 16}, {17, 19}}
	var parts [6]int
	for i, f := range fields {
		n, err := strconv.Atoi(s[f.from:f.to])
		if err != nil || strings.ContainsAny(s[f.from:f.to], "+-") {
			return model.CaptureTime{}, fmt.Errorf("invalid DateTime %q: bad field %q", s, s[f.from:f.to])
		}
		parts[i] = n
	}

	return model.NewCaptureTime(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5])
}
