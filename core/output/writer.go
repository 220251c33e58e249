// Package output publishes artifacts. Artifacts are written whole:
// the bytes land in a temporary file next to the destination and are
// renamed into place, so a failed run never leaves a partial file.
package output

import (
	"os"

	"rate-table/internal/errors"
)

// WriteFileAtomic writes data to path via a temporary sibling file and
// an atomic rename.
func WriteFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.IO("failed to write artifact", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.IO("failed to publish artifact", err)
	}

	return nil
}
