package model

import (
	"fmt"
	"strings"
)

// Mode selects the folder structure photos are organized into.
type Mode int

const (
	// ModeDaily places photos in YYYY/MM/DD.
	ModeDaily Mode = iota

	// ModeMonthly places photos in YYYY/MM.
	ModeMonthly

	// ModeCompact uses YYYY/MM unless the month holds more photos than
	// RunConfig.MonthlyLimit, in which case that month is split into days.
	ModeCompact

	// ModeFlat places every photo directly in the library root.
	ModeFlat
)

var modeNames = map[Mode]string{
	ModeDaily:   "daily",
	ModeMonthly: "monthly",
	ModeCompact: "compact",
	ModeFlat:    "flat",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{ModeDaily, ModeMonthly, ModeCompact, ModeFlat}
}

// ParseMode parses a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid mode %q, valid modes: daily, monthly, compact, flat", s)
}

// Action selects how a file reaches its destination.
type Action int

const (
	// ActionMove renames the file into the library, falling back to
	// copy-then-delete across devices.
	ActionMove Action = iota

	// ActionCopy copies the bytes and leaves the source untouched.
	ActionCopy
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionCopy:
		return "copy"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction parses an action name (case-insensitive).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "move":
		return ActionMove, nil
	case "copy":
		return ActionCopy, nil
	default:
		return 0, fmt.Errorf("invalid action %q, valid actions: move, copy", s)
	}
}

// RunConfig holds everything the pipeline needs for one run.
//
// It is built once at startup (see config.Settings.RunConfig) and handed
// to each stage by pointer; no stage modifies it.
type RunConfig struct {
	// SourceDir is scanned recursively for photos. It must exist.
	SourceDir string

	// LibraryRoot is the top of the organized tree. It is created on
	// demand and must be writable if it already exists.
	LibraryRoot string

	Mode Mode

	// MonthlyLimit is the largest month that stays in a single folder in
	// compact mode. Ignored by the other modes.
	MonthlyLimit uint16

	// Rename replaces file names with YYYYMMDD_hhmmss plus the original
	// extension.
	Rename bool

	Action Action

	// DryRun reports what would happen without touching the file system.
	DryRun bool
}
