package planner

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/handiism/photo-organizer/internal/model"
)

// ErrMissingFileName means a source path has no final name element
// (for example "/" or "."). Discovery only yields regular files, so this
// indicates a bug upstream rather than bad input.
var ErrMissingFileName = errors.New("source path has no file name")

// PlanError reports the photo whose destination could not be planned.
type PlanError struct {
	Path string
	Err  error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("plan %q: %v", e.Path, e.Err)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// Plan returns one TransferPair per photo, in the same order.
//
// Planning stops at the first photo whose name cannot be determined; the
// returned error is a *PlanError wrapping ErrMissingFileName.
func Plan(photos []model.Photo, cfg *model.RunConfig) ([]model.TransferPair, error) {
	var monthCounts map[model.MonthKey]int
	if cfg.Mode == model.ModeCompact {
		monthCounts = countPerMonth(photos)
	}

	pairs := make([]model.TransferPair, 0, len(photos))
	for _, photo := range photos {
		name, err := FileName(photo, cfg.Rename)
		if err != nil {
			return nil, &PlanError{Path: photo.SourcePath, Err: err}
		}

		folder := folderFor(photo.Taken, cfg, monthCounts)
		pairs = append(pairs, model.TransferPair{
			Source:      photo.SourcePath,
			Destination: filepath.Join(cfg.LibraryRoot, filepath.FromSlash(folder), name),
		})
	}

	return pairs, nil
}

// countPerMonth counts the photos in each (year, month) group.
func countPerMonth(photos []model.Photo) map[model.MonthKey]int {
	counts := make(map[model.MonthKey]int)
	for _, photo := range photos {
		counts[photo.Taken.MonthKey()]++
	}
	return counts
}

// folderFor returns the slash-separated folder relative to the library
// root; "" means the root itself.
func folderFor(taken model.CaptureTime, cfg *model.RunConfig, monthCounts map[model.MonthKey]int) string {
	switch cfg.Mode {
	case model.ModeDaily:
		return taken.DayFolder()
	case model.ModeMonthly:
		return taken.MonthFolder()
	case model.ModeFlat:
		return ""
	case model.ModeCompact:
		// A month exactly at the limit stays in one folder.
		if monthCounts[taken.MonthKey()] > int(cfg.MonthlyLimit) {
			return taken.DayFolder()
		}
		return taken.MonthFolder()
	default:
		panic(fmt.Sprintf("planner: unhandled mode %v", cfg.Mode))
	}
}

// FileName returns the destination file name for a photo.
//
// With rename the name is YYYYMMDD_hhmmss plus the source extension, which
// keeps its original case; otherwise the source name is returned verbatim.
func FileName(photo model.Photo, rename bool) (string, error) {
	base := filepath.Base(photo.SourcePath)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", ErrMissingFileName
	}

	if !rename {
		return base, nil
	}
	return photo.Taken.FileStem() + extension(base), nil
}

// extension returns the extension of name including the dot, treating a
// leading-dot name such as ".hidden" as having none.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}
