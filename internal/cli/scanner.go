package cli

import (
	"path/filepath"
	"strings"

	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/utils"
)

// HeaderEntry is one header found under the controller directory
type HeaderEntry struct {
	Path        string // absolute path on disk
	IncludePath string // prefix + relative path, as written into #include lines
}

// DirectoryScanner handles recursive directory scanning for header files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanHeaders lists every header under controllerDir, sorted by relative path
func (s *DirectoryScanner) ScanHeaders(controllerDir, prefix string) ([]HeaderEntry, error) {
	root, err := filepath.Abs(controllerDir)
	if err != nil {
		return nil, errors.WrapIOError("resolve", controllerDir, err)
	}
	if !utils.IsDir(root) {
		return nil, errors.IOError("scan", controllerDir, "not a directory").
			WithSuggestion("Check that the controller directory exists")
	}

	files, err := s.fileProcessor.WalkFiles(root, utils.FileWalkOptions{
		FileFilter:      utils.HeaderFileFilter(),
		DirectoryFilter: utils.HiddenDirectoryFilter(),
	})
	if err != nil {
		return nil, errors.WrapIOError("scan", controllerDir, err)
	}

	includePrefix := FormatDir(prefix)
	entries := make([]HeaderEntry, 0, len(files))
	for _, rel := range files {
		entries = append(entries, HeaderEntry{
			Path:        filepath.Join(root, filepath.FromSlash(rel)),
			IncludePath: FormatPath(includePrefix + rel),
		})
	}
	return entries, nil
}

// FormatPath trims surrounding whitespace and normalizes separators to '/'
func FormatPath(path string) string {
	return strings.ReplaceAll(strings.TrimSpace(path), `\`, "/")
}

// FormatDir formats a directory so that, when non-empty, it ends with '/'
func FormatDir(dir string) string {
	dir = FormatPath(dir)
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir
}
