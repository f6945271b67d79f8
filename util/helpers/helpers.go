package helpers

import (
	"os"
	"path/filepath"
	"strings"
)

func TrimSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		s = s[:len(s)-len(suffix)]
	}
	return s
}

func CreateDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// CreateFile creates (or truncates) the file at path, making parent
// directories as needed.
func CreateFile(path string) (*os.File, error) {
	if err := CreateDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return os.Create(path)
}
