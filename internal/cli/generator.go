package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/toyz/srvgen/internal/cache"
	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/generator"
	"github.com/toyz/srvgen/internal/models"
	"github.com/toyz/srvgen/internal/parser"
	"github.com/toyz/srvgen/internal/source"
	"github.com/toyz/srvgen/internal/types"
	"github.com/toyz/srvgen/internal/utils"
)

const outputPerm os.FileMode = 0o644

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	HeadersScanned int
	StaticRoutes   int
	RegexRoutes    int
	DtoFiles       int
	SkippedFiles   []string // headers whose DTOs were skipped on a cache hit
	GeneratedFiles []string
}

// Generator coordinates one parse-controller run: scan, build, sort, emit,
// confirm, write and flush the cache
type Generator struct {
	scanner       *DirectoryScanner
	source        source.DeclarationSource
	parser        parser.ModelBuilder
	codeGenerator generator.CodeGenerator
	confirmer     Confirmer
	diagnostics   *utils.DiagnosticSystem
	summary       GenerationSummary
}

// NewGenerator creates a generator reporting through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	return &Generator{
		scanner:       NewDirectoryScanner(),
		source:        source.NewDumpLoader(),
		parser:        parser.NewParser(nil),
		codeGenerator: generator.NewGenerator(),
		confirmer:     NewTerminalConfirmer(),
		diagnostics:   diagnostics,
	}
}

// SetConfirmer replaces the interactive overwrite confirmation
func (g *Generator) SetConfirmer(confirmer Confirmer) {
	g.confirmer = confirmer
}

// SetSource replaces where header declarations are loaded from
func (g *Generator) SetSource(src source.DeclarationSource) {
	g.source = src
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process. Nothing is written unless
// every header builds; the cache is flushed only after all outputs are written.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}
	d := g.diagnostics

	d.Header("Generating route registration and DTO sources")
	d.SourcePath(config.ControllerDir)
	d.Debug("Output file: %s, include prefix: %q", config.OutputFile, config.Prefix)

	headers, err := g.scanner.ScanHeaders(config.ControllerDir, config.Prefix)
	if err != nil {
		return err
	}
	if len(headers) == 0 {
		d.Warn("No header files found in %s", config.ControllerDir)
	}
	g.summary.HeadersScanned = len(headers)

	cachePath, err := cache.FilePath(config.CacheDir, config.ControllerDir)
	if err != nil {
		return err
	}
	mtimes, err := cache.Load(cachePath)
	if err != nil {
		d.Warn("Ignoring DTO cache: %v", err)
	}
	d.Verbose("DTO cache %s holds %d entries", mtimes.Path(), mtimes.Size())
	for _, key := range mtimes.Keys() {
		d.Debug("Cached %s", key)
	}

	d.PhaseHeader("Parsing headers")
	var routes []models.Route
	var dtoUnits []*models.GeneratedFile
	for _, entry := range headers {
		header, err := g.source.Load(entry.Path, entry.IncludePath)
		if err != nil {
			return err
		}

		headerRoutes, err := g.parser.BuildRoutes(header)
		if err != nil {
			return err
		}
		routes = append(routes, headerRoutes...)

		unit, err := g.buildDtoUnit(header, mtimes, config.NoCache)
		if err != nil {
			return err
		}
		if unit != nil {
			dtoUnits = append(dtoUnits, unit)
		}
		d.PhaseItem(fmt.Sprintf("%s (%d routes)", entry.IncludePath, len(headerRoutes)))
	}

	generator.SortRoutes(routes)
	g.summary.StaticRoutes, g.summary.RegexRoutes = generator.CountPaths(routes)
	g.summary.DtoFiles = len(dtoUnits)

	d.PhaseHeader("Routes")
	d.Indent()
	d.Listing(generator.RouteListing(routes))
	d.Unindent()

	outputs := append([]*models.GeneratedFile{g.codeGenerator.GenerateRoutes(routes, config.OutputFile)}, dtoUnits...)

	if err := g.confirmOverwrite(config); err != nil {
		return err
	}

	d.PhaseHeader("Writing outputs")
	for _, out := range outputs {
		d.PhaseProgress("Writing " + out.Path)
		if err := utils.WriteFileAtomic(out.Path, out.Content, outputPerm); err != nil {
			return err
		}
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, out.Path)
	}

	if err := mtimes.Save(); err != nil {
		d.Warn("Failed to save DTO cache: %v", err)
	}

	d.Summary("Summary", map[string]interface{}{
		"Headers scanned":   g.summary.HeadersScanned,
		"Static routes":     g.summary.StaticRoutes,
		"Regex routes":      g.summary.RegexRoutes,
		"Total routes":      g.summary.StaticRoutes + g.summary.RegexRoutes,
		"DTO files written": g.summary.DtoFiles,
	})
	d.Verbose("Finished in %s", time.Since(startTime).Round(time.Millisecond))
	d.GenerationComplete()
	return nil
}

// buildDtoUnit builds the DTOs of one header and renders their unit, or
// returns nil when the header has none or is unchanged since the last run
func (g *Generator) buildDtoUnit(header *models.HeaderFile, mtimes *cache.MtimeCache, noCache bool) (*models.GeneratedFile, error) {
	mtime, err := cache.ModTime(header.Path)
	if err != nil {
		return nil, err
	}
	if !noCache && mtimes.Unchanged(header.Path, mtime) {
		g.diagnostics.Verbose("Skipping DTOs of unchanged %s", header.IncludePath)
		g.summary.SkippedFiles = append(g.summary.SkippedFiles, header.Path)
		return nil, nil
	}

	dtos, _, err := g.parser.BuildDtos(header, types.NewKnownTypes())
	if err != nil {
		return nil, err
	}
	mtimes.Record(header.Path, mtime)

	if len(dtos) == 0 {
		return nil, nil
	}
	g.diagnostics.Debug("%s declares %d DTOs", header.IncludePath, len(dtos))
	return g.codeGenerator.GenerateDtos(header, dtos), nil
}

// confirmOverwrite applies the overwrite policy to the route output file.
// DTO units are always overwritten.
func (g *Generator) confirmOverwrite(config Config) error {
	if config.Overwrite || !utils.Exists(config.OutputFile) {
		return nil
	}

	ok, err := g.confirmer.Confirm(OverwritePrompt)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Canceled("output file already exists and was not overwritten").
			WithContext("path", config.OutputFile).
			WithSuggestion("Pass -y to overwrite the existing output file")
	}
	return nil
}
