// Package transfer places planned photos into the library.
//
// The Engine walks a list of model.TransferPair in order, one pair at a
// time, and classifies each as Transferred, AlreadyInPlace or Failed:
//
//	engine := transfer.NewEngine(model.ActionMove, false)
//	counts := engine.TransferAll(pairs, func(pair model.TransferPair, out transfer.Outcome) {
//	    switch o := out.(type) {
//	    case transfer.Transferred:
//	        fmt.Println("moved to", o.Path)
//	    case transfer.AlreadyInPlace:
//	        fmt.Println("already at", o.Path)
//	    case transfer.Failed:
//	        fmt.Println("failed:", o.Err)
//	    }
//	})
//
// # Guarantees
//
//   - A pair whose source and destination resolve to the same file is
//     AlreadyInPlace and no I/O happens, so re-running over an organized
//     library changes nothing.
//   - Existing library files are never overwritten: a taken destination
//     becomes name(1).ext, name(2).ext, ...
//   - Moves across file systems fall back to copy-then-delete.
//   - A failing pair is counted and the engine moves on.
//
// In dry-run mode nothing is created, moved or copied; pairs are only
// classified as AlreadyInPlace or (would be) Transferred.
package transfer
