// Package apperr defines the sentinel error kinds surfaced by the bookmark pipeline.
package apperr

import "errors"

var (
	ErrURLParse           = errors.New("url parse failed")
	ErrNoRouteMatched     = errors.New("no route matched")
	ErrResolutionNotFound = errors.New("resolution not found")
	ErrRegexCompile       = errors.New("regex compile failed")
	ErrMetadataFetch      = errors.New("metadata fetch failed")
	ErrContentParse       = errors.New("content parse failed")
	ErrDirectoryCreate    = errors.New("directory create failed")
	ErrFileWrite          = errors.New("file write failed")
)
