package models

import (
	"fmt"
	"strings"
)

// RouteKind distinguishes exact-match paths from regular-expression paths
type RouteKind int

const (
	RouteStatic RouteKind = iota
	RouteRegex
)

// String returns the string representation of the route kind
func (k RouteKind) String() string {
	if k == RouteRegex {
		return "regex"
	}
	return "static"
}

// HTTPMethod is one of the fixed HTTP request methods
type HTTPMethod int

const (
	MethodGET HTTPMethod = iota
	MethodHEAD
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodCONNECT
	MethodOPTIONS
	MethodTRACE
	MethodPATCH
)

var httpMethodNames = map[HTTPMethod]string{
	MethodGET:     "GET",
	MethodHEAD:    "HEAD",
	MethodPOST:    "POST",
	MethodPUT:     "PUT",
	MethodDELETE:  "DELETE",
	MethodCONNECT: "CONNECT",
	MethodOPTIONS: "OPTIONS",
	MethodTRACE:   "TRACE",
	MethodPATCH:   "PATCH",
}

// String returns the upper-case method name
func (m HTTPMethod) String() string {
	if name, ok := httpMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("HTTPMethod(%d)", int(m))
}

// HTTPMethods returns every supported method in declaration order
func HTTPMethods() []HTTPMethod {
	return []HTTPMethod{
		MethodGET, MethodHEAD, MethodPOST, MethodPUT, MethodDELETE,
		MethodCONNECT, MethodOPTIONS, MethodTRACE, MethodPATCH,
	}
}

// ParseHTTPMethod converts an upper-case method name to an HTTPMethod
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	for method, name := range httpMethodNames {
		if name == s {
			return method, nil
		}
	}
	return 0, fmt.Errorf("unknown HTTP method: %s", s)
}

// Route is a validated, immutable route declaration
type Route struct {
	Kind        RouteKind
	Paths       []string          // escaped paths, all of Kind, in declaration order
	Methods     []HTTPMethod      // sorted by name; empty means "not specified"
	Target      string            // fully-qualified handler reference
	Description string            // first @brief
	Config      map[string]string // @config name(value) pairs

	Header string // include path of the declaring header
	Line   int
}

// EffectiveMethods returns the methods to register, defaulting to GET
func (r Route) EffectiveMethods() []HTTPMethod {
	if len(r.Methods) == 0 {
		return []HTTPMethod{MethodGET}
	}
	return r.Methods
}

// MethodsString renders the effective methods as "GET,POST"
func (r Route) MethodsString() string {
	names := make([]string, 0, len(r.EffectiveMethods()))
	for _, m := range r.EffectiveMethods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ",")
}
