package cli

// Config holds the configuration for one parse-controller run
type Config struct {
	// ControllerDir is scanned recursively for .h and .hpp headers
	ControllerDir string

	// OutputFile receives the route registration unit
	OutputFile string

	// Prefix is prepended to each header's path relative to ControllerDir
	// to form the path written into #include lines
	Prefix string

	// Overwrite replaces an existing OutputFile without asking
	Overwrite bool

	// CacheDir holds the DTO modification time cache, the OS temp dir if empty
	CacheDir string

	// NoCache re-derives the DTOs of every header. The cache is still refreshed.
	NoCache bool
}
