package types

import "github.com/toyz/srvgen/internal/models"

// StdPrefix qualifies standard library names
const StdPrefix = "std::"

// scalarTypes are the builtin types the JSON value can extract directly
var scalarTypes = map[string]struct{}{
	"bool":          {},
	"int":           {},
	"signed int":    {},
	"int32_t":       {},
	"int64_t":       {},
	"unsigned int":  {},
	"uint32_t":      {},
	"uint64_t":      {},
	"size_t":        {},
	"float":         {},
	"double":        {},
	"string":        {},
	"std::int32_t":  {},
	"std::int64_t":  {},
	"std::uint32_t": {},
	"std::uint64_t": {},
	"std::size_t":   {},
	"std::string":   {},
}

// defaultContainers describes each supported container purely by capability
var defaultContainers = []models.ContainerKind{
	{Name: "std::vector", Reserve: true, InsertMethod: "push_back"},
	{Name: "std::deque", Reserve: false, InsertMethod: "push_back"},
	{Name: "std::list", Reserve: false, InsertMethod: "push_back"},
	{Name: "std::set", Reserve: false, InsertMethod: "emplace"},
	{Name: "std::unordered_set", Reserve: false, InsertMethod: "emplace"},
}

// IsScalar reports whether t is one of the builtin scalar spellings
func IsScalar(t string) bool {
	_, ok := scalarTypes[t]
	return ok
}
