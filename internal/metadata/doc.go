// Package metadata reads capture timestamps from photo files.
//
// The Extractor opens a file, decodes its EXIF block with goexif and turns
// the primary DateTime tag (IFD0, tag 0x0132) into a model.CaptureTime:
//
//	ex := metadata.NewExtractor()
//	taken, err := ex.Extract("/photos/IMG_0001.jpg")
//	if err != nil {
//	    var xerr *metadata.ExtractError
//	    if errors.As(err, &xerr) {
//	        fmt.Println(xerr.Kind) // io, malformed-container, no-timestamp, unparsable-date
//	    }
//	}
//
// # Failure Classes
//
// Every failure is an *ExtractError carrying one of four kinds:
//   - KindIO: the file could not be opened or read
//   - KindMalformedContainer: the EXIF decoder rejected the file
//   - KindNoTimestamp: no DateTime tag, an empty one, or an implausible date
//   - KindUnparsableDate: a DateTime value that is not YYYY:MM:DD hh:mm:ss
//
// Implausible dates (invalid calendar values, years before 1970) are
// reported as KindNoTimestamp with ErrImplausibleDate in the chain, so
// callers that want finer reporting can still tell them apart.
//
// ExtractAll applies the extractor to a list of paths and keeps only the
// successes, reporting each failure through a callback.
package metadata
