package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/srvgen/internal/codegen"
	"github.com/toyz/srvgen/internal/models"
)

const (
	routerInclude    = "<server/router.h>"
	registerFunction = "register_routes"
)

// GenerateRoutes renders the route registration unit. routes must already
// be sorted with SortRoutes; one registration call is emitted per path,
// grouped under a banner per declaring header.
func (g *Generator) GenerateRoutes(routes []models.Route, outputPath string) *models.GeneratedFile {
	includes := []string{routerInclude}
	seen := make(map[string]bool)
	for _, route := range routes {
		if !seen[route.Header] {
			seen[route.Header] = true
			includes = append(includes, codegen.Quote(route.Header))
		}
	}

	file := newSourceFile(includes...)
	file.NewBlock().
		Addf(0, "bool %s(std::shared_ptr<ic::server::Router> router) {", registerFunction).
		Add(1, "using namespace ic::server;").
		Add(1, "bool ret = true;")

	var group *codegen.Block
	lastHeader := ""
	for i, route := range routes {
		if i == 0 || route.Header != lastHeader {
			group = file.NewBlock().Addf(1, "// %s", route.Header)
			lastHeader = route.Header
		}
		for _, path := range route.Paths {
			group.Addf(1, "ret &= router->%s(%s);", registrationCall(route.Kind), routeArguments(route, path))
		}
	}

	file.NewBlock().
		Add(1, "return ret;").
		Addf(0, "} // end %s", registerFunction)

	return &models.GeneratedFile{
		Kind:    models.OutputRoutes,
		Path:    outputPath,
		Content: file.Render(),
	}
}

func registrationCall(kind models.RouteKind) string {
	if kind == models.RouteRegex {
		return "AddRegexRoute"
	}
	return "AddStaticRoute"
}

func routeArguments(route models.Route, path string) string {
	return strings.Join([]string{
		codegen.QuoteEscaped(path),
		methodMask(route.EffectiveMethods()),
		route.Target,
		codegen.Quote(route.Description),
		configInitializer(route.Config),
	}, ", ")
}

// methodMask renders "HttpMethod::kGET | HttpMethod::kPOST"
func methodMask(methods []models.HTTPMethod) string {
	parts := make([]string, 0, len(methods))
	for _, m := range methods {
		parts = append(parts, "HttpMethod::k"+m.String())
	}
	return strings.Join(parts, " | ")
}

// configInitializer renders a brace initializer with keys in sorted order
func configInitializer(config map[string]string) string {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("{%s, %s}", codegen.Quote(key), codegen.Quote(config[key])))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
