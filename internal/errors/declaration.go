package errors

import (
	"fmt"
	"strings"
)

// DeclarationContext identifies the header declaration a diagnostic refers to
type DeclarationContext struct {
	Header    string // header path as it appears in generated includes
	Namespace string // enclosing namespace, "::"-terminated or empty
	Class     string // enclosing class, empty for free functions
	Member    string // function, method or field name
	Line      int    // line number reported by the header parser
}

// Location converts the context into a SourceLocation
func (d DeclarationContext) Location() SourceLocation {
	return SourceLocation{File: d.Header, Line: d.Line}
}

// String renders the context as "header, namespace, class, member, line"
func (d DeclarationContext) String() string {
	parts := []string{fmt.Sprintf("header: %s", d.Header)}
	parts = append(parts, fmt.Sprintf("namespace: %s", d.Namespace))
	if d.Class != "" {
		parts = append(parts, fmt.Sprintf("class: %s", d.Class))
	}
	parts = append(parts, fmt.Sprintf("member: %s", d.Member))
	parts = append(parts, fmt.Sprintf("line: %d", d.Line))
	return strings.Join(parts, ", ")
}

// DeclarationError is an annotation or property error tied to one declaration
type DeclarationError struct {
	*BaseError
	Decl  DeclarationContext
	Value string // offending raw annotation value or type string
}

// Error implements the error interface
func (e *DeclarationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v (%s)", e.Message, e.Cause, e.Decl.String())
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Decl.String())
}

func newDeclarationError(code ErrorCode, decl DeclarationContext, value, message string) *DeclarationError {
	base := New(code, message).WithLocation(decl.Location())
	base.WithContext("header", decl.Header)
	base.WithContext("namespace", decl.Namespace)
	if decl.Class != "" {
		base.WithContext("class", decl.Class)
	}
	base.WithContext("member", decl.Member)
	base.WithContext("line", decl.Line)
	if value != "" {
		base.WithContext("value", value)
	}
	return &DeclarationError{BaseError: base, Decl: decl, Value: value}
}

// NewAnnotationSyntaxError reports a malformed @route, @config or @alias value
func NewAnnotationSyntaxError(decl DeclarationContext, value, format string, args ...interface{}) *DeclarationError {
	return newDeclarationError(AnnotationSyntaxErrorCode, decl, value, fmt.Sprintf(format, args...))
}

// NewAnnotationSemanticError reports a well-formed annotation that breaks a rule
func NewAnnotationSemanticError(decl DeclarationContext, value, format string, args ...interface{}) *DeclarationError {
	return newDeclarationError(AnnotationSemanticErrorCode, decl, value, fmt.Sprintf(format, args...))
}

// NewPropertyTypeError reports a field type that cannot be interpreted at all
func NewPropertyTypeError(decl DeclarationContext, rawType string, cause error) *DeclarationError {
	err := newDeclarationError(PropertyTypeErrorCode, decl, rawType, fmt.Sprintf("malformed property type [%s]", rawType))
	err.WithCause(cause)
	err.WithSuggestion("container fields take the form container<element> with a single level of nesting")
	return err
}

// WithSuggestion adds a helpful suggestion
func (e *DeclarationError) WithSuggestion(suggestion string) *DeclarationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}
