package main

import (
	"os"
	"path/filepath"
)

// configBaseName is the file name, without extension, looked up in the
// working directory
const configBaseName = "srvgen"

// configCandidatePaths builds candidate config files per format. A user
// supplied path comes first and is routed to the loader matching its extension.
func configCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	add(&jsonPaths, filepath.Join(wd, configBaseName+".json"))
	add(&yamlPaths, filepath.Join(wd, configBaseName+".yaml"))
	add(&yamlPaths, filepath.Join(wd, configBaseName+".yml"))
	add(&tomlPaths, filepath.Join(wd, configBaseName+".toml"))

	return
}
