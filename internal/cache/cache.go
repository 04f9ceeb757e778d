// Package cache persists the last observed modification time of every
// processed header, so unchanged headers skip DTO derivation on later runs.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/utils"
)

// FilePrefix starts the name of every cache file
const FilePrefix = "srvgen_dto-parser-"

const schemaURL = "cache.schema.json"

// documentSchema describes the persisted document: absolute path to mtime seconds
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": {"type": "integer"}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func documentValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to add cache schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// MtimeCache maps absolute header paths to modification times in whole seconds
type MtimeCache struct {
	path    string
	entries map[string]int64
	mutex   sync.RWMutex
}

// FilePath returns the cache file for a controller directory: one file per
// absolute directory, named after its MD5 digest
func FilePath(cacheDir, controllerDir string) (string, error) {
	abs, err := filepath.Abs(controllerDir)
	if err != nil {
		return "", errors.WrapIOError("resolve", controllerDir, err)
	}
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	sum := md5.Sum([]byte(abs))
	return filepath.Join(cacheDir, FilePrefix+hex.EncodeToString(sum[:])+".json"), nil
}

// New creates an empty cache persisted at path
func New(path string) *MtimeCache {
	return &MtimeCache{
		path:    path,
		entries: make(map[string]int64),
	}
}

// Load reads the cache at path. The returned cache is always usable: a
// missing, unreadable or invalid document yields an empty cache, and the
// error only explains why.
func Load(path string) (*MtimeCache, error) {
	c := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, errors.WrapIOError("read cache", path, err)
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return c, errors.WrapIOError("decode cache", path, err)
	}

	validator, err := documentValidator()
	if err != nil {
		return c, err
	}
	if err := validator.Validate(document); err != nil {
		return c, errors.WrapIOError("validate cache", path, err)
	}

	entries := make(map[string]int64)
	if err := json.Unmarshal(data, &entries); err != nil {
		return c, errors.WrapIOError("decode cache", path, err)
	}
	c.entries = entries
	return c, nil
}

// Path returns where the cache is persisted
func (c *MtimeCache) Path() string {
	return c.path
}

// Unchanged reports whether file was recorded with exactly mtime
func (c *MtimeCache) Unchanged(file string, mtime int64) bool {
	recorded, ok := c.Get(file)
	return ok && recorded == mtime
}

// Record stores the modification time observed for file
func (c *MtimeCache) Record(file string, mtime int64) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[file] = mtime
}

// Get returns the recorded modification time of file
func (c *MtimeCache) Get(file string) (int64, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	mtime, ok := c.entries[file]
	return mtime, ok
}

// Size returns the number of recorded files
func (c *MtimeCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}

// Keys returns the recorded files in sorted order
func (c *MtimeCache) Keys() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the cache document atomically
func (c *MtimeCache) Save() error {
	c.mutex.RLock()
	data, err := json.Marshal(c.entries)
	c.mutex.RUnlock()
	if err != nil {
		return errors.WrapIOError("encode cache", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return errors.WrapIOError("create cache directory", filepath.Dir(c.path), err)
	}
	return utils.WriteFileAtomic(c.path, data, 0o644)
}

// ModTime returns the modification time of path in whole seconds
func ModTime(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, errors.WrapIOError("stat", path, err)
	}
	return stat.ModTime().Unix(), nil
}
