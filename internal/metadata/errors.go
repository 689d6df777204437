package metadata

import (
	"errors"
	"fmt"

	"github.com/handiism/photo-organizer/internal/model"
)

// Kind classifies why a capture time could not be extracted.
type Kind int

const (
	KindIO Kind = iota
	KindMalformedContainer
	KindNoTimestamp
	KindUnparsableDate
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindMalformedContainer:
		return "malformed-container"
	case KindNoTimestamp:
		return "no-timestamp"
	case KindUnparsableDate:
		return "unparsable-date"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNoDateTime is the cause recorded when the DateTime tag is missing or
// empty.
var ErrNoDateTime = errors.New("no DateTime field in EXIF data")

// ErrImplausibleDate is re-exported so callers can match it without
// importing model.
var ErrImplausibleDate = model.ErrImplausibleDate

// ExtractError describes a failed extraction.
type ExtractError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err if it is (or wraps) an *ExtractError.
func KindOf(err error) (Kind, bool) {
	var xerr *ExtractError
	if errors.As(err, &xerr) {
		return xerr.Kind, true
	}
	return 0, false
}
