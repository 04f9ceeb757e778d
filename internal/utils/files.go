package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/toyz/srvgen/internal/errors"
)

// Exists checks if a path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if a path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteFileAtomic writes content to a uniquely named temporary file in the
// destination directory and renames it over path, so readers never observe
// a partially written file
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, content, perm); err != nil {
		return errors.WrapIOError("write", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapIOError("write", path, err)
	}
	return nil
}
