package organizer

import (
	"fmt"

	"github.com/handiism/photo-organizer/internal/metadata"
)

// Summary holds the counts of a finished run.
type Summary struct {
	DryRun bool

	// Discovered is the number of files found under the source.
	Discovered int

	// Transferred counts files moved or copied (or that would be, in a
	// dry run).
	Transferred int

	// AlreadyOrganized counts files already at their destination.
	AlreadyOrganized int

	// Skipped counts files dropped for lack of a usable capture time.
	Skipped int

	// Failed counts files whose transfer failed. Always 0 in a dry run.
	Failed int

	// SkipReasons breaks Skipped down by extraction failure kind.
	SkipReasons map[metadata.Kind]int
}

// String renders the one-line run report.
func (s Summary) String() string {
	if s.DryRun {
		return fmt.Sprintf(
			"[DRY RUN] Processed %d files: %d would be transferred, %d were already organized, %d skipped (no EXIF)",
			s.Discovered, s.Transferred, s.AlreadyOrganized, s.Skipped)
	}
	return fmt.Sprintf(
		"Processed %d files: %d transferred, %d were already organized, %d skipped (no EXIF), %d failed",
		s.Discovered, s.Transferred, s.AlreadyOrganized, s.Skipped, s.Failed)
}
