// Package organizer runs the photo organization pipeline.
//
// # Organizer
//
// The Organizer coordinates one run end to end:
//
//  1. Check that the source exists and the library is writable
//  2. Discover every regular file under the source
//  3. Read capture times, dropping files without a usable one
//  4. Plan a library destination for each photo
//  5. Move or copy each photo into place
//  6. Summarize the counts
//
// # Basic Usage
//
//	org := organizer.New(runCfg, func(event organizer.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := org.Run()
//	if err != nil {
//	    log.Fatal(err) // setup failure; nothing was touched
//	}
//	fmt.Println(summary)
//
// # Error Policy
//
// Setup problems (missing source, unwritable library) and planner
// errors abort the run and are returned. Everything that
// goes wrong with an individual file is reported as a ProgressEvent and
// counted in the Summary; it never stops the run.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message   string
//	    Level     ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Processed int           // pairs handled so far (transfer stage)
//	    Total     int           // pairs planned (transfer stage)
//	}
//
// Front ends that poll instead can call Progress.
package organizer
