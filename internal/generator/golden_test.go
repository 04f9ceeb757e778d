package generator

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/toyz/srvgen/internal/models"
	"github.com/toyz/srvgen/internal/parser"
	"github.com/toyz/srvgen/internal/testutil"
	"github.com/toyz/srvgen/internal/types"
)

const goldenRoutesFile = "routes.cpp"

type goldenInput struct {
	Headers []models.HeaderFile `yaml:"headers"`
}

// generateGolden runs both builders and both emitters over the headers of
// one case, the same way a controller directory is processed
func generateGolden(input []byte) (map[string][]byte, error) {
	var in goldenInput
	if err := yaml.Unmarshal(input, &in); err != nil {
		return nil, err
	}

	p := parser.NewParser(nil)
	g := NewGenerator()
	out := make(map[string][]byte)

	var routes []models.Route
	for i := range in.Headers {
		header := &in.Headers[i]

		headerRoutes, err := p.BuildRoutes(header)
		if err != nil {
			return nil, err
		}
		routes = append(routes, headerRoutes...)

		dtos, _, err := p.BuildDtos(header, types.NewKnownTypes())
		if err != nil {
			return nil, err
		}
		if len(dtos) > 0 {
			unit := g.GenerateDtos(header, dtos)
			out[unit.Path] = unit.Content
		}
	}

	SortRoutes(routes)
	out[goldenRoutesFile] = g.GenerateRoutes(routes, goldenRoutesFile).Content
	return out, nil
}

func TestGolden(t *testing.T) {
	for _, tc := range testutil.LoadTestCases(t, "testdata") {
		t.Run(tc.Name, func(t *testing.T) {
			tc.Run(t, generateGolden)
		})
	}
}
