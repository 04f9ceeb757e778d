package parser

import (
	"fmt"
	"strings"

	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/models"
)

// ErrorReporter builds declaration errors with suggestions for fixing them
type ErrorReporter struct {
	validMethods string
}

// NewErrorReporter creates a new error reporter
func NewErrorReporter() *ErrorReporter {
	names := make([]string, 0, len(models.HTTPMethods()))
	for _, m := range models.HTTPMethods() {
		names = append(names, m.String())
	}
	return &ErrorReporter{validMethods: strings.Join(names, ", ")}
}

// ReportInvalidPath reports a @route value that does not start with '/'
func (r *ErrorReporter) ReportInvalidPath(decl errors.DeclarationContext, value string) error {
	return errors.NewAnnotationSyntaxError(decl, value, "invalid @route [%s]: path must start with '%s'", value, PathPrefix).
		WithSuggestion("Static routes look like: @route /users").
		WithSuggestion(fmt.Sprintf("Regex routes are prefixed with '%s': @route ~/users/[0-9]+", RegexMarker))
}

// ReportMixedRouteKinds reports static and regex paths on one declaration
func (r *ErrorReporter) ReportMixedRouteKinds(decl errors.DeclarationContext, value string, kind models.RouteKind) error {
	return errors.NewAnnotationSemanticError(decl, value, "invalid @route [%s]: mixed route type, declaration already has %s paths", value, kind).
		WithSuggestion("All @route values of one handler must be either static or regex").
		WithSuggestion("Move the other paths to a separate handler")
}

// ReportInvalidRegex reports a regex path that does not compile
func (r *ErrorReporter) ReportInvalidRegex(decl errors.DeclarationContext, value string, cause error) error {
	err := errors.NewAnnotationSemanticError(decl, value, "invalid regex route: \"%s\"", value)
	err.WithCause(cause)
	return err.WithSuggestion("Regex paths use ECMAScript syntax, as compiled by the router")
}

// ReportUnknownMethod reports a @method token outside the fixed method set
func (r *ErrorReporter) ReportUnknownMethod(decl errors.DeclarationContext, value, token string) error {
	return errors.NewAnnotationSemanticError(decl, value, "invalid @method [%s]: unknown HTTP method %s", value, token).
		WithSuggestion("Valid methods: " + r.validMethods).
		WithSuggestion("Separate multiple methods with commas or spaces: @method GET, POST")
}

// ReportMalformedConfig reports a @config value with unbalanced parentheses or no name
func (r *ErrorReporter) ReportMalformedConfig(decl errors.DeclarationContext, value string) error {
	return errors.NewAnnotationSyntaxError(decl, value, "invalid @config [%s]", value).
		WithSuggestion("Use @config name or @config name(value)")
}

// ReportHandlerSignature reports a class method that cannot be registered as a route handler
func (r *ErrorReporter) ReportHandlerSignature(decl errors.DeclarationContext, issue string) error {
	return errors.NewAnnotationSemanticError(decl, "", "invalid route: <%s>", issue).
		WithSuggestion("Route handlers are public static member functions returning void")
}

// ReportDuplicateAlias reports more than one @alias on a field
func (r *ErrorReporter) ReportDuplicateAlias(decl errors.DeclarationContext, aliases []string) error {
	return errors.NewAnnotationSyntaxError(decl, strings.Join(aliases, ", "), "@alias should occur once at most, found %d", len(aliases)).
		WithSuggestion("Keep a single @alias line in the field comment")
}

// ReportEmptyAlias reports an @alias tag without a value
func (r *ErrorReporter) ReportEmptyAlias(decl errors.DeclarationContext) error {
	return errors.NewAnnotationSyntaxError(decl, "", "@alias requires a JSON key").
		WithSuggestion("Use @alias key")
}

// ReportPropertyType reports a field type whose angle brackets cannot be parsed
func (r *ErrorReporter) ReportPropertyType(decl errors.DeclarationContext, rawType string, cause error) error {
	return errors.NewPropertyTypeError(decl, rawType, cause)
}
