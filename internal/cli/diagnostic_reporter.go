package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/srvgen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// SetOutput redirects the report
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
}

// ReportWarning prints a one-line warning
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var genErr errors.GeneratorError
	if stderrors.As(err, &genErr) {
		r.reportGeneratorError(err, genErr)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(err error, genErr errors.GeneratorError) {
	r.printErrorHeader(genErr.ErrorCode())

	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if context := genErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	r.printAdditionalHelp(genErr.ErrorCode())

	if r.verbose {
		r.printErrorChain(genErr.Unwrap())
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.AnnotationSyntaxErrorCode:
		errorTypeStr = "Annotation Syntax Error"
	case errors.AnnotationSemanticErrorCode:
		errorTypeStr = "Annotation Semantic Error"
	case errors.PropertyTypeErrorCode:
		errorTypeStr = "Property Type Error"
	case errors.IOErrorCode:
		errorTypeStr = "File System Error"
	case errors.CanceledErrorCode:
		errorTypeStr = "Canceled"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints declaration keys first, then the rest sorted
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	importantKeys := []string{"header", "namespace", "class", "member", "line", "value"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	rest := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "header":
		return "Header"
	case "member":
		return "Member"
	case "value":
		return "Offending Value"
	default:
		// snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.out, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.out, "\n")
}

// printAdditionalHelp prints additional help based on error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.AnnotationSyntaxErrorCode:
		fmt.Fprintf(r.out, "Annotation Syntax Help:\n")
		fmt.Fprintf(r.out, "  - @route takes a path starting with '/', or '~' followed by a regex\n")
		fmt.Fprintf(r.out, "  - @config takes name or name(value)\n")
		fmt.Fprintf(r.out, "  - @alias appears at most once and is not empty\n\n")

	case errors.AnnotationSemanticErrorCode:
		fmt.Fprintf(r.out, "Route Handler Requirements:\n")
		fmt.Fprintf(r.out, "  - Class methods must be public, static and return void\n")
		fmt.Fprintf(r.out, "  - All @route paths of one declaration are either static or regex\n")
		fmt.Fprintf(r.out, "  - @method names are standard HTTP methods\n\n")

	case errors.PropertyTypeErrorCode:
		fmt.Fprintf(r.out, "Property Type Help:\n")
		fmt.Fprintf(r.out, "  - Supported containers: vector, deque, list, set, unordered_set\n")
		fmt.Fprintf(r.out, "  - Element types are builtin scalars or DTOs declared earlier in the same header\n\n")
	}

	if r.verbose {
		return
	}
	fmt.Fprintf(r.out, "For more help:\n")
	fmt.Fprintf(r.out, "  - Run with --verbose for more detailed output\n")
}

// printErrorChain prints the underlying causes in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.out, "  %d. %s\n", level, err.Error())
		err = stderrors.Unwrap(err)
		level++
	}
	fmt.Fprintf(r.out, "\n")
}
