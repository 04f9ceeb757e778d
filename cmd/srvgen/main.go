package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/toyz/srvgen/internal/cli"
	"github.com/toyz/srvgen/internal/utils"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userCfg)

	var root CLI
	ctx := kong.Parse(&root,
		kong.Name("srvgen"),
		kong.Description("Route registration and DTO source generator for annotated C++ headers"),
		kong.UsageOnError(),
		// flags and env override config file values
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	diagnostics := root.Diagnostics()
	ctx.Bind(diagnostics)

	if err := ctx.Run(); err != nil {
		reporter := cli.NewDiagnosticReporter(diagnostics.Level() >= utils.DiagnosticVerbose)
		reporter.ReportError(err)
		os.Exit(1)
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("SRVGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
