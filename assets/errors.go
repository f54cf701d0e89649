package assets

import "errors"

var (
	// ErrAssetLoad marks a sprite sheet whose image could not be read or decoded.
	ErrAssetLoad = errors.New("asset load failed")
	// ErrNotFound is returned for unknown sprite types and sheets that are not loaded.
	ErrNotFound = errors.New("sprite not found")
	// ErrOutOfRange is returned for a tile index outside the sheet.
	ErrOutOfRange = errors.New("tile index out of range")
)
