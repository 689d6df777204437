// Package planner computes where each photo belongs in the library.
//
// Plan maps every model.Photo to a model.TransferPair, in input order:
//
//	pairs, err := planner.Plan(photos, &model.RunConfig{
//	    LibraryRoot:  "/library",
//	    Mode:         model.ModeCompact,
//	    MonthlyLimit: 25,
//	    Rename:       true,
//	})
//
// # Folder Modes
//
//   - Daily:   <library>/YYYY/MM/DD/<name>
//   - Monthly: <library>/YYYY/MM/<name>
//   - Flat:    <library>/<name>
//   - Compact: Monthly, unless the photo's month holds more than
//     MonthlyLimit photos in this run, then Daily for that month only
//
// # File Names
//
// With Rename the name becomes YYYYMMDD_hhmmss followed by the source
// extension (if any); otherwise the source name is kept. Destinations are
// not checked against the file system here; collisions are resolved by
// the transfer engine.
package planner
