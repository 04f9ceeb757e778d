package parser

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/toyz/srvgen/internal/annotations"
	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/models"
)

var methodSeparator = regexp.MustCompile(`[,\s]+`)

var accessLevels = []models.Access{models.AccessPublic, models.AccessProtected, models.AccessPrivate}

// BuildRoutes returns the routes declared in one header: free functions
// first, then class methods, each in declaration order. Declarations
// without @route are skipped; the first invalid route aborts the header.
func (p *Parser) BuildRoutes(file *models.HeaderFile) ([]models.Route, error) {
	var routes []models.Route

	for _, fn := range file.Functions {
		attrs := annotations.Parse(fn.DocComment)
		if !attrs.Has(annotations.TagRoute) {
			continue
		}

		decl := functionContext(file, fn, "")
		route, err := p.buildRoute(attrs, decl)
		if err != nil {
			return nil, err
		}
		route.Target = decl.Namespace + fn.Name
		routes = append(routes, route)
	}

	for _, class := range file.Classes {
		for _, access := range accessLevels {
			for _, method := range class.Methods.ByAccess(access) {
				attrs := annotations.Parse(method.DocComment)
				if !attrs.Has(annotations.TagRoute) {
					continue
				}

				if strings.TrimSpace(method.Namespace) == "" {
					method.Namespace = class.Namespace
				}
				decl := functionContext(file, method, class.Name)

				route, err := p.buildRoute(attrs, decl)
				if err != nil {
					return nil, err
				}
				if err := p.validateHandler(method, access, decl); err != nil {
					return nil, err
				}
				route.Target = decl.Namespace + class.Name + "::" + method.Name
				routes = append(routes, route)
			}
		}
	}

	return routes, nil
}

// buildRoute validates the route annotations of one declaration
func (p *Parser) buildRoute(attrs annotations.AttributeMap, decl errors.DeclarationContext) (models.Route, error) {
	route := models.Route{
		Config: make(map[string]string),
		Header: decl.Header,
		Line:   decl.Line,
	}

	for i, value := range attrs.Values(annotations.TagRoute) {
		kind, path, err := p.parsePath(value, decl)
		if err != nil {
			return models.Route{}, err
		}
		if i > 0 && kind != route.Kind {
			return models.Route{}, p.reporter.ReportMixedRouteKinds(decl, value, route.Kind)
		}
		route.Kind = kind
		if !slices.Contains(route.Paths, path) {
			route.Paths = append(route.Paths, path)
		}
	}

	methods, err := p.parseMethods(attrs.Values(annotations.TagMethod), decl)
	if err != nil {
		return models.Route{}, err
	}
	route.Methods = methods

	for _, value := range attrs.Values(annotations.TagConfig) {
		name, configValue, ok := parseConfig(value)
		if !ok {
			return models.Route{}, p.reporter.ReportMalformedConfig(decl, value)
		}
		route.Config[name] = configValue
	}

	route.Description, _ = attrs.First(annotations.TagBrief)

	return route, nil
}

// parsePath classifies one @route value and returns the escaped path
func (p *Parser) parsePath(value string, decl errors.DeclarationContext) (models.RouteKind, string, error) {
	kind := models.RouteStatic
	path := value
	if strings.HasPrefix(path, RegexMarker) {
		kind = models.RouteRegex
		path = strings.TrimSpace(strings.TrimPrefix(path, RegexMarker))
	}

	if !strings.HasPrefix(path, PathPrefix) {
		return kind, "", p.reporter.ReportInvalidPath(decl, value)
	}

	if kind == models.RouteRegex {
		// the router compiles regex paths as ECMAScript
		if _, err := regexp2.Compile(path, regexp2.ECMAScript); err != nil {
			return kind, "", p.reporter.ReportInvalidRegex(decl, value, err)
		}
	}

	return kind, strings.ReplaceAll(path, `\`, `\\`), nil
}

// parseMethods normalizes every @method value into a sorted, duplicate-free list
func (p *Parser) parseMethods(values []string, decl errors.DeclarationContext) ([]models.HTTPMethod, error) {
	var methods []models.HTTPMethod
	for _, value := range values {
		for _, token := range methodSeparator.Split(strings.ToUpper(value), -1) {
			if token == "" {
				continue
			}
			method, err := models.ParseHTTPMethod(token)
			if err != nil {
				return nil, p.reporter.ReportUnknownMethod(decl, value, token)
			}
			if !slices.Contains(methods, method) {
				methods = append(methods, method)
			}
		}
	}

	sort.Slice(methods, func(i, j int) bool {
		return methods[i].String() < methods[j].String()
	})
	return methods, nil
}

// validateHandler checks that a class method can be registered as a handler
func (p *Parser) validateHandler(method models.Function, access models.Access, decl errors.DeclarationContext) error {
	if access != models.AccessPublic {
		return p.reporter.ReportHandlerSignature(decl, "NOT public")
	}
	if !method.Static {
		return p.reporter.ReportHandlerSignature(decl, "NOT static")
	}
	if strings.TrimSpace(method.ReturnType) != ReturnVoid {
		return p.reporter.ReportHandlerSignature(decl, "NOT return void")
	}
	for _, q := range method.Qualifiers() {
		if q.Set && handlerQualifierBlacklist[q.Name] {
			return p.reporter.ReportHandlerSignature(decl, q.Name)
		}
	}
	return nil
}

// parseConfig splits "name" or "name(value)"
func parseConfig(value string) (string, string, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 {
		name := strings.TrimSpace(value)
		return name, "", name != "" && !strings.ContainsRune(name, ')')
	}

	end := strings.IndexByte(value[open:], ')')
	if end < 0 {
		return "", "", false
	}

	name := strings.TrimSpace(value[:open])
	configValue := strings.TrimSpace(value[open+1 : open+end])
	return name, configValue, name != ""
}
