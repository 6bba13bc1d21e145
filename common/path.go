package common

import (
	"os"
	"path/filepath"
)

// FileExist checks if a file exists at filePath
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// AbsolutePath returns datadir + filename, or filename if it is absolute
func AbsolutePath(datadir string, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}

// CurrentDir returns the current working directory
func CurrentDir() (string, error) {
	return os.Getwd()
}
