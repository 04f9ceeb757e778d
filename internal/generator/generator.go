// Package generator renders route registration and DTO (de)serialization
// source units. Emitters are pure: they take validated, sorted models and
// perform no further validation.
package generator

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/srvgen/internal/codegen"
	"github.com/toyz/srvgen/internal/models"
)

const (
	// GeneratedBanner opens every generated source unit
	GeneratedBanner = "// Code generated by srvgen. DO NOT EDIT."

	// DtoSourceSuffix replaces a header's extension to name its DTO unit
	DtoSourceSuffix = ".impl_dto.cpp"
)

// Generator implements the CodeGenerator interface
type Generator struct{}

// NewGenerator creates a new code generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

var _ CodeGenerator = (*Generator)(nil)

// SortRoutes orders routes by declaring header, then by first path.
// Ties keep their declaration order.
func SortRoutes(routes []models.Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Header != routes[j].Header {
			return routes[i].Header < routes[j].Header
		}
		return routes[i].Paths[0] < routes[j].Paths[0]
	})
}

// RouteListing returns one "@static  GET /path" line per registered path
func RouteListing(routes []models.Route) []string {
	var lines []string
	for _, route := range routes {
		prefix := "@static"
		if route.Kind == models.RouteRegex {
			prefix = "@regex "
		}
		for _, path := range route.Paths {
			lines = append(lines, fmt.Sprintf("%s %4s %s", prefix, route.MethodsString(), path))
		}
	}
	return lines
}

// CountPaths returns the number of static and regex paths
func CountPaths(routes []models.Route) (static, regex int) {
	for _, route := range routes {
		if route.Kind == models.RouteRegex {
			regex += len(route.Paths)
		} else {
			static += len(route.Paths)
		}
	}
	return static, regex
}

// DtoSourcePath returns the implementation unit path next to headerPath
func DtoSourcePath(headerPath string) string {
	return strings.TrimSuffix(headerPath, filepath.Ext(headerPath)) + DtoSourceSuffix
}

func newSourceFile(includes ...string) *codegen.File {
	file := &codegen.File{}
	preamble := file.NewBlock().Add(0, GeneratedBanner)
	for _, include := range includes {
		preamble.Add(0, "#include "+include)
	}
	return file
}
