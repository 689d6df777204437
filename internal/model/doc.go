// Package model defines the core data structures used throughout
// the photo-organizer application.
//
// # CaptureTime
//
// CaptureTime is a validated timestamp read from a photo's metadata. It
// knows the folder and file names derived from it:
//
//	ct, _ := model.NewCaptureTime(2025, 6, 15, 14, 30, 0)
//	ct.DayFolder()   // "2025/06/15"
//	ct.FileStem()    // "20250615_143000"
//
// # Photo and TransferPair
//
// Photo ties a source file to its capture time. The planner turns photos
// into TransferPairs, each naming where one file should end up.
//
// # Run Configuration
//
// RunConfig carries the choices for one run:
//
//	cfg := &model.RunConfig{
//	    SourceDir:    "/photos/inbox",
//	    LibraryRoot:  "/photos/library",
//	    Mode:         model.ModeCompact,
//	    MonthlyLimit: 25,
//	    Action:       model.ActionCopy,
//	}
//
// Available modes: daily (YYYY/MM/DD), monthly (YYYY/MM), compact
// (monthly, split into days when a month is large), flat (library root).
package model
