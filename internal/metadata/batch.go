package metadata

import "github.com/handiism/photo-organizer/internal/model"

// ExtractAll extracts capture times for every path, in order.
//
// Files that fail are left out of the result and passed to onError, which
// may be nil. A failing file never stops the batch.
func (e *Extractor) ExtractAll(paths []string, onError func(path string, err error)) []model.Photo {
	photos := make([]model.Photo, 0, len(paths))
	for _, path := range paths {
		taken, err := e.Extract(path)
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			continue
		}
		photos = append(photos, model.Photo{SourcePath: path, Taken: taken})
	}
	return photos
}
