package artifact

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound indicates the artifact path does not reference an existing
// regular file.
var ErrNotFound = errors.New("DMG file not found")

// Artifact holds the raw bytes of a release artifact along with its on-disk
// size.
type Artifact struct {
	Path string
	Data []byte
	Size int64
}

// Check verifies that path points at a regular file.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

// Load reads the artifact at path into memory. The reported size comes from
// file metadata rather than the bytes read.
func Load(path string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read DMG at %s: %w", path, err)
	}

	return &Artifact{
		Path: path,
		Data: data,
		Size: info.Size(),
	}, nil
}
