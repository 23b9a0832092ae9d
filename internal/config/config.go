// Package config resolves where the generator reads snippets from and where
// it writes the merged file.
//
// Paths default to snippets/ and dist/syntax-frame.code-snippets under the
// project root. A syntax-frame.hcl file in the root may override them:
//
//	snippets_dir = "editor/snippets"
//	output       = "build/syntax-frame.code-snippets"
//
// The language label table is not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/syntax-frame/syntax-frame/internal/snippet"
)

// FileName is the optional project config file, looked up in the project root.
const FileName = "syntax-frame.hcl"

// Config holds resolved paths, relative to the project root.
type Config struct {
	SnippetsDir string
	OutputFile  string
	// Source is FileName when the config file was found, empty otherwise.
	Source string
}

type fileConfig struct {
	SnippetsDir string `hcl:"snippets_dir,optional"`
	Output      string `hcl:"output,optional"`
}

// Default returns the built-in paths.
func Default() *Config {
	return &Config{
		SnippetsDir: snippet.DefaultSnippetsDir,
		OutputFile:  snippet.DefaultOutputFile,
	}
}

// Load reads FileName from the root of fs if it exists and applies it on top
// of Default. A missing file is not an error.
func Load(fs billy.Filesystem) (*Config, error) {
	cfg := Default()

	src, err := util.ReadFile(fs, FileName)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, configError("Cannot read "+FileName, err)
	}

	var fc fileConfig
	if err := hclsimple.Decode(FileName, src, nil, &fc); err != nil {
		return nil, configError("Invalid "+FileName, err)
	}

	if fc.SnippetsDir != "" {
		dir, err := localPath("snippets_dir", fc.SnippetsDir)
		if err != nil {
			return nil, err
		}
		cfg.SnippetsDir = dir
	}
	if fc.Output != "" {
		out, err := localPath("output", fc.Output)
		if err != nil {
			return nil, err
		}
		if out == "." {
			return nil, configError(fmt.Sprintf("Invalid %s: output must name a file", FileName), nil)
		}
		cfg.OutputFile = out
	}
	cfg.Source = FileName

	return cfg, nil
}

// localPath cleans p and requires it to stay inside the project root.
func localPath(attr, p string) (string, error) {
	if !filepath.IsLocal(p) {
		return "", configError(fmt.Sprintf("Invalid %s: %s %q must be a relative path inside the project root", FileName, attr, p), nil)
	}
	return filepath.Clean(p), nil
}

func configError(msg string, err error) error {
	return &snippet.Error{Kind: snippet.ConfigurationError, File: FileName, Message: msg, Err: err}
}
