package organizer

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/handiism/photo-organizer/internal/discovery"
	ioutils "github.com/handiism/photo-organizer/internal/io"
	"github.com/handiism/photo-organizer/internal/metadata"
	"github.com/handiism/photo-organizer/internal/model"
	"github.com/handiism/photo-organizer/internal/planner"
	"github.com/handiism/photo-organizer/internal/transfer"
)

var (
	// ErrSourceMissing is returned when the source directory does not exist.
	ErrSourceMissing = errors.New("source directory does not exist")

	// ErrLibraryNotWritable is returned when the library exists but a file
	// cannot be created in it.
	ErrLibraryNotWritable = errors.New("library directory exists but is not writable")
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Processed and Total are set on transfer-stage events.
	Processed int
	Total     int
}

// Organizer runs the pipeline for one RunConfig.
type Organizer struct {
	cfg       *model.RunConfig
	extractor *metadata.Extractor
	engine    *transfer.Engine

	processed int64
	total     int64

	onProgress func(ProgressEvent)
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithExtractor replaces the default goexif-backed extractor.
func WithExtractor(ex *metadata.Extractor) Option {
	return func(o *Organizer) {
		o.extractor = ex
	}
}

// WithEngine replaces the default transfer engine.
func WithEngine(e *transfer.Engine) Option {
	return func(o *Organizer) {
		o.engine = e
	}
}

// New creates an Organizer. cfg is read, never modified.
func New(cfg *model.RunConfig, onProgress func(ProgressEvent), opts ...Option) *Organizer {
	o := &Organizer{
		cfg:        cfg,
		extractor:  metadata.NewExtractor(),
		engine:     transfer.NewEngine(cfg.Action, cfg.DryRun),
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the whole pipeline and returns its summary.
//
// A non-nil error means the run was aborted: either before any file was
// touched (setup) or during planning (a path without a file name).
func (o *Organizer) Run() (Summary, error) {
	summary := Summary{DryRun: o.cfg.DryRun, SkipReasons: make(map[metadata.Kind]int)}

	if err := Validate(o.cfg); err != nil {
		return summary, err
	}

	paths, err := discovery.Discover(o.cfg.SourceDir, func(path string, err error) {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Failed to access %s: %v", path, err), Level: LevelError})
	})
	if err != nil {
		return summary, fmt.Errorf("discover files in %s: %w", o.cfg.SourceDir, err)
	}
	summary.Discovered = len(paths)
	o.progress(ProgressEvent{Message: fmt.Sprintf("Found %d files in %s", len(paths), o.cfg.SourceDir), Level: LevelInfo})

	photos := o.extractor.ExtractAll(paths, func(path string, err error) {
		if kind, ok := metadata.KindOf(err); ok {
			summary.SkipReasons[kind]++
		}
		o.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", path, err), Level: LevelWarning})
	})

	pairs, err := planner.Plan(photos, o.cfg)
	if err != nil {
		return summary, err
	}
	summary.Skipped = summary.Discovered - len(pairs)

	o.transferAll(pairs, &summary)

	for kind, n := range summary.SkipReasons {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Skipped %d files: %s", n, kind), Level: LevelVerbose})
	}
	o.progress(ProgressEvent{Message: summary.String(), Level: LevelSuccess})

	return summary, nil
}

func (o *Organizer) transferAll(pairs []model.TransferPair, summary *Summary) {
	atomic.StoreInt64(&o.total, int64(len(pairs)))
	atomic.StoreInt64(&o.processed, 0)

	verb := "organize"
	if o.cfg.DryRun {
		verb = "would organize"
	}
	o.progress(ProgressEvent{Message: fmt.Sprintf("Will %s %d photos (%s)", verb, len(pairs), o.cfg.Action), Level: LevelInfo, Total: len(pairs)})

	counts := o.engine.TransferAll(pairs, func(pair model.TransferPair, out transfer.Outcome) {
		done := int(atomic.AddInt64(&o.processed, 1))
		event := ProgressEvent{Processed: done, Total: len(pairs)}

		switch res := out.(type) {
		case transfer.Transferred:
			event.Level = LevelVerbose
			if o.cfg.DryRun {
				event.Message = fmt.Sprintf("Would %s %s to %s", o.cfg.Action, pair.Source, res.Path)
			} else {
				event.Message = fmt.Sprintf("Organized %s to %s", pair.Source, res.Path)
			}
		case transfer.AlreadyInPlace:
			event.Level = LevelVerbose
			event.Message = fmt.Sprintf("Already organized: %s", res.Path)
		case transfer.Failed:
			event.Level = LevelError
			event.Message = fmt.Sprintf("Failed to organize %s: %v", pair.Source, res.Err)
		}
		o.progress(event)
	})

	summary.Transferred = counts.Transferred
	summary.AlreadyOrganized = counts.AlreadyInPlace
	summary.Failed = counts.Failed
}

// Progress returns how many planned pairs have been handled and how many
// there are. Both are 0 before the transfer stage starts. Safe to call
// from another goroutine while Run is in progress.
func (o *Organizer) Progress() (processed, total int) {
	return int(atomic.LoadInt64(&o.processed)), int(atomic.LoadInt64(&o.total))
}

// Validate checks that the source exists and that the library, if it
// already exists, accepts new files.
func Validate(cfg *model.RunConfig) error {
	if _, err := os.Stat(cfg.SourceDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, cfg.SourceDir)
		}
		return fmt.Errorf("source directory %s: %w", cfg.SourceDir, err)
	}

	if _, err := os.Stat(cfg.LibraryRoot); err == nil {
		if !ioutils.IsDirWritable(cfg.LibraryRoot) {
			return fmt.Errorf("%w: %s", ErrLibraryNotWritable, cfg.LibraryRoot)
		}
	}
	return nil
}

func (o *Organizer) progress(event ProgressEvent) {
	if o.onProgress != nil {
		o.onProgress(event)
	}
}
