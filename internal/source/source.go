// Package source reads the declaration model of a header from the dump the
// external header parser writes next to it.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/models"
)

// DumpExtensions are appended to a header path to locate its dump, in lookup order
var DumpExtensions = []string{".decl.yaml", ".decl.yml", ".decl.json", ".decl.toml"}

// DeclarationSource provides the declarations of one header
type DeclarationSource interface {
	Load(headerPath, includePath string) (*models.HeaderFile, error)
}

// DumpLoader implements DeclarationSource over sidecar dump files
type DumpLoader struct{}

// NewDumpLoader creates a new dump loader
func NewDumpLoader() *DumpLoader {
	return &DumpLoader{}
}

var _ DeclarationSource = (*DumpLoader)(nil)

// DumpPath returns the first existing dump for headerPath
func DumpPath(headerPath string) (string, bool) {
	for _, ext := range DumpExtensions {
		candidate := headerPath + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Load reads the declarations of headerPath. The returned HeaderFile carries
// the absolute header path and the given include path.
func (l *DumpLoader) Load(headerPath, includePath string) (*models.HeaderFile, error) {
	abs, err := filepath.Abs(headerPath)
	if err != nil {
		return nil, errors.WrapIOError("resolve", headerPath, err)
	}

	dump, ok := DumpPath(abs)
	if !ok {
		return nil, errors.IOError("load declarations for", headerPath,
			fmt.Sprintf("no declaration dump found (expected %s)", strings.Join(dumpNames(filepath.Base(abs)), ", "))).
			WithSuggestion("Run the header parser over the controller directory before srvgen")
	}

	data, err := os.ReadFile(dump)
	if err != nil {
		return nil, errors.WrapIOError("read", dump, err)
	}

	decls, err := Decode(dump, data)
	if err != nil {
		return nil, err
	}

	return &models.HeaderFile{
		Path:         abs,
		IncludePath:  includePath,
		Declarations: *decls,
	}, nil
}

// Decode parses a dump, choosing the format by file extension. JSON dumps
// are decoded as YAML, which accepts them unchanged.
func Decode(name string, data []byte) (*models.Declarations, error) {
	var decls models.Declarations

	switch {
	case strings.HasSuffix(name, ".toml"):
		if err := toml.Unmarshal(data, &decls); err != nil {
			return nil, errors.WrapIOError("decode", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &decls); err != nil {
			return nil, errors.WrapIOError("decode", name, err)
		}
	}

	return &decls, nil
}

func dumpNames(base string) []string {
	names := make([]string, 0, len(DumpExtensions))
	for _, ext := range DumpExtensions {
		names = append(names, base+ext)
	}
	return names
}
