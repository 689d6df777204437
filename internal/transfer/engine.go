package transfer

import (
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/photo-organizer/internal/io"
	"github.com/handiism/photo-organizer/internal/model"
)

// Engine transfers planned pairs into the library.
type Engine struct {
	action model.Action
	dryRun bool
	rename ioutils.RenameFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenameFunc replaces os.Rename for moves. Used to exercise the
// cross-device fallback.
func WithRenameFunc(fn ioutils.RenameFunc) Option {
	return func(e *Engine) {
		e.rename = fn
	}
}

// NewEngine creates an Engine for the given action.
func NewEngine(action model.Action, dryRun bool, opts ...Option) *Engine {
	e := &Engine{
		action: action,
		dryRun: dryRun,
		rename: os.Rename,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TransferAll processes pairs strictly in order and returns the tally.
// onOutcome, if non-nil, is called after each pair.
func (e *Engine) TransferAll(pairs []model.TransferPair, onOutcome func(model.TransferPair, Outcome)) Counts {
	var counts Counts
	for _, pair := range pairs {
		out := e.Transfer(pair)
		counts.Add(out)
		if onOutcome != nil {
			onOutcome(pair, out)
		}
	}
	return counts
}

// Transfer processes a single pair.
//
// A dry run performs the same name lookup as a real run without creating
// folders or touching files, so both report the same outcome. Lookup
// errors in a dry run count as "would transfer".
func (e *Engine) Transfer(pair model.TransferPair) Outcome {
	if ioutils.SameFile(pair.Source, pair.Destination) {
		return AlreadyInPlace{Path: pair.Destination}
	}
	if e.dryRun {
		final, done, err := lookupDestination(pair)
		switch {
		case err != nil:
			return Transferred{Path: pair.Destination}
		case done != nil:
			return done
		default:
			return Transferred{Path: final}
		}
	}

	if err := ioutils.EnsureDir(filepath.Dir(pair.Destination)); err != nil {
		return Failed{Err: fmt.Errorf("create destination folder: %w", err)}
	}
	final, done, err := lookupDestination(pair)
	if err != nil {
		return Failed{Err: err}
	}
	if done != nil {
		return done
	}

	switch e.action {
	case model.ActionMove:
		err = ioutils.MoveFile(pair.Source, final, e.rename)
	case model.ActionCopy:
		err = ioutils.CopyFile(pair.Source, final)
	default:
		err = fmt.Errorf("unknown action %v", e.action)
	}
	if err != nil {
		return Failed{Err: err}
	}
	return Transferred{Path: final}
}

// lookupDestination picks a name that is not taken, without modifying
// anything. If the source already sits at one of the suffixed variants
// of the destination, the returned Outcome is AlreadyInPlace.
func lookupDestination(pair model.TransferPair) (string, Outcome, error) {
	taken, err := ioutils.Exists(pair.Destination)
	if err != nil {
		return "", nil, err
	}
	if !taken {
		return pair.Destination, nil, nil
	}

	var self string
	free, err := ioutils.NextAvailableName(pair.Destination, func(candidate string) (bool, error) {
		exists, err := ioutils.Exists(candidate)
		if exists && ioutils.SameFile(pair.Source, candidate) {
			self = candidate
			// Stop the search here.
			return false, nil
		}
		return exists, err
	})
	if err != nil {
		return "", nil, fmt.Errorf("find free name for %s: %w", pair.Destination, err)
	}
	if self != "" {
		return "", AlreadyInPlace{Path: self}, nil
	}
	return free, nil, nil
}
