package util

import (
	"os"
	"path/filepath"
)

// WriteFileAll writes data to path, creating missing parent directories.
func WriteFileAll(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
