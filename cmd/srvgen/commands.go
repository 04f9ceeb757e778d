package main

import (
	"github.com/toyz/srvgen/internal/cli"
	"github.com/toyz/srvgen/internal/utils"
)

// CLI is the root command line
type CLI struct {
	Config  string `help:"Configuration file (.json, .yaml, .yml or .toml)" env:"SRVGEN_CONFIG" placeholder:"FILE"`
	Quiet   bool   `help:"Only show errors" xor:"verbosity"`
	Verbose bool   `help:"Show skipped headers and timing" xor:"verbosity"`
	Debug   bool   `help:"Show everything" xor:"verbosity"`

	ParseController ParseController `cmd:"" name:"parse-controller" help:"Parse controllers and DTOs"`
	Clean           Clean           `cmd:"" help:"Remove generated DTO sources and the DTO cache"`
}

// Diagnostics returns the output system selected by the verbosity flags
func (c *CLI) Diagnostics() *utils.DiagnosticSystem {
	switch {
	case c.Quiet:
		return utils.NewQuietDiagnostics()
	case c.Debug:
		return utils.NewDiagnosticSystem(utils.DiagnosticDebug)
	case c.Verbose:
		return utils.NewVerboseDiagnostics()
	default:
		return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
}

// ParseController generates the route registration unit and DTO sources
type ParseController struct {
	ControllerDir string `arg:"" name:"controller_dir" help:"Controller directory"`
	OutputFile    string `arg:"" name:"output_file" help:"Output filepath of routes registration"`
	Prefix        string `short:"p" help:"Prefix of include path" env:"SRVGEN_PREFIX"`
	Yes           bool   `short:"y" help:"Overwrite the existing file" env:"SRVGEN_YES"`
	CacheDir      string `help:"Directory of the DTO cache (defaults to the OS temp dir)" env:"SRVGEN_CACHE_DIR"`
	NoCache       bool   `help:"Re-derive the DTOs of every header"`
}

// Config converts the flags into a run configuration
func (c *ParseController) Config() cli.Config {
	return cli.Config{
		ControllerDir: c.ControllerDir,
		OutputFile:    c.OutputFile,
		Prefix:        c.Prefix,
		Overwrite:     c.Yes,
		CacheDir:      c.CacheDir,
		NoCache:       c.NoCache,
	}
}

// Run is called by kong when parse-controller is executed
func (c *ParseController) Run(diagnostics *utils.DiagnosticSystem) error {
	return cli.NewGenerator(diagnostics).Run(c.Config())
}

// Clean removes generated DTO units under a controller directory
type Clean struct {
	ControllerDir string `arg:"" name:"controller_dir" help:"Controller directory"`
	CacheDir      string `help:"Directory of the DTO cache (defaults to the OS temp dir)" env:"SRVGEN_CACHE_DIR"`
}

// Run is called by kong when clean is executed
func (c *Clean) Run(diagnostics *utils.DiagnosticSystem) error {
	diagnostics.Header("Cleaning generated DTO sources")
	diagnostics.SourcePath(c.ControllerDir)

	removed, err := cli.NewCleaner().CleanGeneratedFiles(c.ControllerDir, c.CacheDir)
	for _, path := range removed {
		diagnostics.PhaseItem("Removed " + path)
	}
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		diagnostics.Info("Nothing to clean")
		return nil
	}

	diagnostics.Success("Removed %d files", len(removed))
	return nil
}
