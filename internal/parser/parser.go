// Package parser builds validated Route and Dto models from the declarations
// of one header file.
package parser

import (
	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/models"
	"github.com/toyz/srvgen/internal/types"
)

// Parser implements the ModelBuilder interface
type Parser struct {
	resolver *types.Resolver
	reporter *ErrorReporter
}

// NewParser creates a new model builder. A nil resolver selects the default
// scalar and container tables.
func NewParser(resolver *types.Resolver) *Parser {
	if resolver == nil {
		resolver = types.NewResolver()
	}
	return &Parser{
		resolver: resolver,
		reporter: NewErrorReporter(),
	}
}

var _ ModelBuilder = (*Parser)(nil)

func functionContext(file *models.HeaderFile, fn models.Function, class string) errors.DeclarationContext {
	return errors.DeclarationContext{
		Header:    file.IncludePath,
		Namespace: models.FormatNamespace(fn.Namespace),
		Class:     class,
		Member:    fn.Name,
		Line:      fn.LineNumber,
	}
}

func fieldContext(file *models.HeaderFile, class models.Class, field models.Field) errors.DeclarationContext {
	return errors.DeclarationContext{
		Header:    file.IncludePath,
		Namespace: models.FormatNamespace(class.Namespace),
		Class:     class.Name,
		Member:    field.Name,
		Line:      field.LineNumber,
	}
}
