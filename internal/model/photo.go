package model

// Photo is a discovered file whose capture time could be read.
//
// Photos are created by the metadata stage only for files whose extraction
// succeeded and are not modified afterwards.
type Photo struct {
	// SourcePath is the path the file was discovered at.
	SourcePath string

	// Taken is the capture time read from the file's metadata.
	Taken CaptureTime
}

// TransferPair maps a photo's current location to its planned location in
// the library.
//
// The destination is not yet collision-free; the transfer engine resolves
// name clashes when it processes the pair.
type TransferPair struct {
	Source      string
	Destination string
}
