package utils

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// HeaderExtensions are the file extensions treated as C++ headers
var HeaderExtensions = []string{".h", ".hpp"}

// FileProcessor provides utilities for walking source trees
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be descended into
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// HeaderFileFilter matches C++ header files
func HeaderFileFilter() FileFilter {
	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		for _, ext := range HeaderExtensions {
			if strings.HasSuffix(info.Name(), ext) {
				return true
			}
		}
		return false
	}
}

// HiddenDirectoryFilter skips dot directories such as .git
func HiddenDirectoryFilter() DirectoryFilter {
	return func(path string, info fs.DirEntry) bool {
		name := info.Name()
		return !(strings.HasPrefix(name, ".") && name != "." && name != "..")
	}
}

// WalkFiles walks rootDir and returns the matching files relative to rootDir,
// sorted, with forward slashes
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter != nil && !options.FileFilter(path, entry) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		matched = append(matched, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matched)
	return matched, nil
}
