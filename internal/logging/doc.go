// Package logging builds the run logger and connects it to organizer
// progress events.
//
//	logger, closeLog, err := logging.New(settings.LogFile, settings.Verbose, settings.DryRun)
//	if err != nil {
//	    return err
//	}
//	defer closeLog()
//
//	org := organizer.New(runCfg, logging.Sink(logger))
package logging
