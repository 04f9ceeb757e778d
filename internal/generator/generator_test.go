package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/srvgen/internal/models"
)

func TestSortRoutes(t *testing.T) {
	routes := []models.Route{
		{Header: "b.h", Paths: []string{"/a"}, Target: "b1"},
		{Header: "a.h", Paths: []string{"/z"}, Target: "a1"},
		{Header: "a.h", Paths: []string{"/m"}, Target: "a2"},
		{Header: "a.h", Paths: []string{"/m"}, Target: "a3"},
		{Header: "A.h", Paths: []string{"/q"}, Target: "A1"},
	}

	SortRoutes(routes)

	var targets []string
	for _, r := range routes {
		targets = append(targets, r.Target)
	}
	assert.Equal(t, []string{"A1", "a2", "a3", "a1", "b1"}, targets)
}

func TestRouteListing(t *testing.T) {
	routes := []models.Route{
		{Kind: models.RouteStatic, Paths: []string{"/health", "/ping"}},
		{Kind: models.RouteRegex, Paths: []string{"/user/.*"}, Methods: []models.HTTPMethod{models.MethodGET, models.MethodPOST}},
	}

	assert.Equal(t, []string{
		"@static  GET /health",
		"@static  GET /ping",
		"@regex  GET,POST /user/.*",
	}, RouteListing(routes))

	static, regex := CountPaths(routes)
	assert.Equal(t, 2, static)
	assert.Equal(t, 1, regex)
}

func TestMethodMask(t *testing.T) {
	assert.Equal(t, "HttpMethod::kGET", methodMask([]models.HTTPMethod{models.MethodGET}))
	assert.Equal(t, "HttpMethod::kDELETE | HttpMethod::kPUT",
		methodMask([]models.HTTPMethod{models.MethodDELETE, models.MethodPUT}))
}

func TestConfigInitializer(t *testing.T) {
	assert.Equal(t, "{}", configInitializer(nil))
	assert.Equal(t, `{{"a", "1"}, {"b", ""}, {"q", "say \"x\""}}`,
		configInitializer(map[string]string{"q": `say "x"`, "b": "", "a": "1"}))
}

func TestDtoSourcePath(t *testing.T) {
	assert.Equal(t, "/src/dto/user.impl_dto.cpp", DtoSourcePath("/src/dto/user.h"))
	assert.Equal(t, "/src/dto/user.impl_dto.cpp", DtoSourcePath("/src/dto/user.hpp"))
}

func TestGenerateRoutes_DefaultsMissingMethodToGet(t *testing.T) {
	routes := []models.Route{{
		Kind:   models.RouteStatic,
		Paths:  []string{"/x"},
		Target: "X",
		Header: "x.h",
	}}

	file := NewGenerator().GenerateRoutes(routes, "/out/routes.cpp")
	assert.Equal(t, models.OutputRoutes, file.Kind)
	assert.Equal(t, "/out/routes.cpp", file.Path)
	assert.Contains(t, string(file.Content), `ret &= router->AddStaticRoute("/x", HttpMethod::kGET, X, "", {});`)
}

func requestDto(direction models.Direction) models.Dto {
	return models.Dto{
		Name:          "Request",
		Namespace:     "dto::",
		QualifiedName: "dto::Request",
		Direction:     direction,
		Fields: []models.DtoField{
			{Name: "a", Alias: "a", ElementType: "int", Category: models.CategoryScalar, Required: true},
			{Name: "b", Alias: "b", ElementType: "string", Category: models.CategoryScalar, Required: false},
		},
	}
}

func TestGenerateDtos_Directions(t *testing.T) {
	header := &models.HeaderFile{Path: "/src/dto/request.h"}
	g := NewGenerator()

	tests := []struct {
		name            string
		direction       models.Direction
		wantDeserialize bool
		wantSerialize   bool
	}{
		{name: "in", direction: models.DirectionIn, wantDeserialize: true},
		{name: "out", direction: models.DirectionOut, wantSerialize: true},
		{name: "in out", direction: models.DirectionInOut, wantDeserialize: true, wantSerialize: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := g.GenerateDtos(header, []models.Dto{requestDto(tt.direction)})
			content := string(file.Content)

			assert.Equal(t, tt.wantDeserialize, strings.Contains(content, "bool dto::Request::Deserialize(const Json::Value& json) {"))
			assert.Equal(t, tt.wantSerialize, strings.Contains(content, "Json::Value dto::Request::Serialize() const {"))
			assert.Equal(t, models.OutputDto, file.Kind)
			assert.Equal(t, "/src/dto/request.impl_dto.cpp", file.Path)
			assert.Equal(t, "/src/dto/request.h", file.Source)
		})
	}
}

func TestGenerateDtos_RequiredAndOptional(t *testing.T) {
	file := NewGenerator().GenerateDtos(&models.HeaderFile{Path: "request.h"}, []models.Dto{requestDto(models.DirectionIn)})
	lines := strings.Split(string(file.Content), "\n")

	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, `#include "request.h"`, lines[1])
	assert.Equal(t, "    if (!json.isObject()) { return false; }", lines[4])
	assert.Equal(t, `    const Json::Value& _a_node_temp_ = json["a"]; if (_a_node_temp_.is<int>()) { a = _a_node_temp_.as<int>(); } else { return false; }`, lines[5])
	assert.Equal(t, `    const Json::Value& _b_node_temp_ = json["b"]; if (_b_node_temp_.is<string>()) { b = _b_node_temp_.as<string>(); } else if (!_b_node_temp_.isNull()) { return false; }`, lines[6])
	assert.Equal(t, "    return true;", lines[7])
}

func TestGenerateDtos_NoRequiredFields(t *testing.T) {
	dto := requestDto(models.DirectionIn)
	dto.Fields[0].Required = false

	file := NewGenerator().GenerateDtos(&models.HeaderFile{Path: "request.h"}, []models.Dto{dto})
	assert.Contains(t, string(file.Content), "    if (!json.isObject()) { return true; }\n")
}

func TestGenerateDtos_EndsWithSingleNewline(t *testing.T) {
	file := NewGenerator().GenerateDtos(&models.HeaderFile{Path: "request.h"}, []models.Dto{requestDto(models.DirectionInOut)})
	content := string(file.Content)
	assert.True(t, strings.HasSuffix(content, "    return json;\n}\n"))
	assert.False(t, strings.HasSuffix(content, "\n\n"))
}
