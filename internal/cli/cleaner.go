package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/srvgen/internal/cache"
	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/generator"
	"github.com/toyz/srvgen/internal/utils"
)

// Cleaner removes generated DTO units and the DTO cache of a controller directory
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// CleanGeneratedFiles deletes every *.impl_dto.cpp under controllerDir that
// starts with the generated banner, then the directory's cache file. The
// next run re-derives every DTO. Returns the removed paths.
func (c *Cleaner) CleanGeneratedFiles(controllerDir, cacheDir string) ([]string, error) {
	root, err := filepath.Abs(controllerDir)
	if err != nil {
		return nil, errors.WrapIOError("resolve", controllerDir, err)
	}
	if !utils.IsDir(root) {
		return nil, errors.IOError("clean", controllerDir, "not a directory")
	}

	files, err := c.fileProcessor.WalkFiles(root, utils.FileWalkOptions{
		FileFilter: func(path string, info os.DirEntry) bool {
			return !info.IsDir() && strings.HasSuffix(info.Name(), generator.DtoSourceSuffix)
		},
		DirectoryFilter: utils.HiddenDirectoryFilter(),
	})
	if err != nil {
		return nil, errors.WrapIOError("scan", controllerDir, err)
	}

	var removed []string
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		generated, err := isGenerated(path)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, errors.WrapIOError("remove", path, err)
		}
		removed = append(removed, path)
	}

	cachePath, err := cache.FilePath(cacheDir, root)
	if err != nil {
		return removed, err
	}
	if err := os.Remove(cachePath); err == nil {
		removed = append(removed, cachePath)
	} else if !os.IsNotExist(err) {
		return removed, errors.WrapIOError("remove", cachePath, err)
	}

	return removed, nil
}

// isGenerated reports whether the file starts with the generated banner
func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.WrapIOError("open", path, err)
	}
	defer f.Close()

	head := make([]byte, len(generator.GeneratedBanner))
	if _, err := io.ReadFull(f, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, errors.WrapIOError("read", path, err)
	}
	return bytes.Equal(head, []byte(generator.GeneratedBanner)), nil
}
