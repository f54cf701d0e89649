package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

var (
	//go:embed all:images all:levels all:scripts tuning.yaml
	assetFS embed.FS
)

// FS exposes the embedded game assets.
func FS() fs.FS {
	return assetFS
}

// TuningFile is the embedded default tuning, relative to FS.
const TuningFile = "tuning.yaml"

// MustReadFile reads an embedded asset and panics if it is missing.
func MustReadFile(path string) []byte {
	data, err := assetFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read asset %s: %v", path, err))
	}
	return data
}

// MustLoadLevel loads an embedded level and panics if it cannot be parsed.
func MustLoadLevel(path string) *Level {
	level, err := LoadLevel(assetFS, path)
	if err != nil {
		panic(err)
	}
	return level
}
