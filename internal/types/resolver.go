// Package types classifies raw C++ field type strings into the categories
// the DTO emitter knows how to (de)serialize.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/srvgen/internal/models"
)

// ErrMalformedType is returned for angle-bracket syntax that cannot be parsed
var ErrMalformedType = errors.New("malformed type expression")

// Resolution is the outcome of classifying one raw type
type Resolution struct {
	Type      string // normalized type; the element type for containers
	Category  models.Category
	Container *models.ContainerKind
}

// Resolver classifies raw type strings against the scalar table, the
// container capability table and a batch's known user types
type Resolver struct {
	parser     *participle.Parser[typeExpr]
	containers map[string]models.ContainerKind
}

// NewResolver creates a resolver with the default container table plus
// any extra container kinds
func NewResolver(extra ...models.ContainerKind) *Resolver {
	r := &Resolver{
		parser:     newTypeParser(),
		containers: make(map[string]models.ContainerKind),
	}
	for _, kind := range defaultContainers {
		r.containers[kind.Name] = kind
	}
	for _, kind := range extra {
		r.containers[kind.Name] = kind
	}
	return r
}

// Container looks up a container kind by qualified name
func (r *Resolver) Container(name string) (models.ContainerKind, bool) {
	kind, ok := r.containers[name]
	return kind, ok
}

// Resolve classifies rawType as seen from a class in namespace.
//
// Types that match nothing are CategoryUnresolved with a nil error. An error
// wrapping ErrMalformedType is returned only when rawType contains angle
// brackets that do not form a type expression at all.
func (r *Resolver) Resolve(rawType, namespace string, known KnownTypes) (Resolution, error) {
	rawType = strings.TrimSpace(rawType)
	namespace = models.FormatNamespace(namespace)

	if res, ok := r.resolvePlain(rawType, namespace, known); ok {
		return res, nil
	}

	if !strings.ContainsAny(rawType, "<>") {
		return Resolution{Category: models.CategoryUnresolved}, nil
	}

	expr, err := r.parser.ParseString("", rawType)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %v", ErrMalformedType, err)
	}

	args := expr.args()
	if len(args) != 1 || len(expr.Suffix) > 0 {
		return Resolution{Category: models.CategoryUnresolved}, nil
	}

	containerName := expr.name()
	if !strings.HasPrefix(containerName, StdPrefix) {
		containerName = StdPrefix + containerName
	}
	kind, ok := r.Container(containerName)
	if !ok {
		return Resolution{Category: models.CategoryUnresolved}, nil
	}

	element := args[0]
	if !element.plain() {
		// one level of container nesting only
		return Resolution{Category: models.CategoryUnresolved}, nil
	}

	elem, ok := r.resolvePlain(element.name(), namespace, known)
	if !ok {
		return Resolution{Category: models.CategoryUnresolved}, nil
	}

	res := Resolution{Type: elem.Type, Container: &kind}
	switch elem.Category {
	case models.CategoryScalar:
		res.Category = models.CategoryContainerOfScalar
	case models.CategoryUser:
		res.Category = models.CategoryContainerOfUser
	}
	return res, nil
}

func (r *Resolver) resolvePlain(t, namespace string, known KnownTypes) (Resolution, bool) {
	if IsScalar(t) {
		return Resolution{Type: t, Category: models.CategoryScalar}, true
	}
	if known.Contains(t) {
		return Resolution{Type: t, Category: models.CategoryUser}, true
	}
	if known.Contains(namespace + t) {
		return Resolution{Type: namespace + t, Category: models.CategoryUser}, true
	}
	return Resolution{}, false
}
