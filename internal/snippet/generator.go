// Package snippet merges per-language snippet files into one VS Code global
// snippet file.
//
// Each source file under the snippets directory maps snippet names to
// definitions. The generator validates every definition, renames it to
// "<name> — <language>" and writes all of them, in file then appearance
// order, to a single JSON object. Any failure aborts the run before the
// output file is touched.
package snippet

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/syntax-frame/syntax-frame/internal/jsonvalue"
)

// Default locations, relative to the project root.
const (
	DefaultSnippetsDir = "snippets"
	DefaultOutputFile  = "dist/syntax-frame.code-snippets"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	sourceExt  = ".json"
	tempPrefix = "."
)

// Generator builds the merged snippet file from a filesystem rooted at the
// project root. A Generator holds no state between calls; every call
// rebuilds the mapping from scratch.
type Generator struct {
	fs          billy.Filesystem
	snippetsDir string
	outputFile  string
	labels      map[string]string
	log         *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithPaths overrides the snippets directory and output file. Both are
// relative to the filesystem root. Empty values keep the defaults.
func WithPaths(snippetsDir, outputFile string) Option {
	return func(g *Generator) {
		if snippetsDir != "" {
			g.snippetsDir = snippetsDir
		}
		if outputFile != "" {
			g.outputFile = outputFile
		}
	}
}

// WithLabels replaces the file-to-language table.
func WithLabels(labels map[string]string) Option {
	return func(g *Generator) { g.labels = labels }
}

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

func New(fs billy.Filesystem, opts ...Option) *Generator {
	g := &Generator{
		fs:          fs,
		snippetsDir: DefaultSnippetsDir,
		outputFile:  DefaultOutputFile,
		labels:      Labels,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes a successful run.
type Result struct {
	// OutputFile is the output path relative to the filesystem root.
	OutputFile string
	// Files lists the merged source files in processing order.
	Files []string
	// Snippets is the number of entries in the merged object.
	Snippets int
	// Content is the rendered output.
	Content []byte
}

// Generate merges all snippet files and writes the result. The output
// directory is created if needed. The output file is replaced only after
// everything has been validated.
func (g *Generator) Generate() (*Result, error) {
	if err := g.requireInputDir(); err != nil {
		return nil, err
	}
	if err := g.fs.MkdirAll(filepath.Dir(g.outputFile), dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res, err := g.Render()
	if err != nil {
		return nil, err
	}

	if err := g.write(res.Content); err != nil {
		return nil, err
	}
	g.log.Debug("wrote merged snippets",
		zap.String("path", g.outputFile),
		zap.Int("snippets", res.Snippets),
		zap.Int("bytes", len(res.Content)))

	return res, nil
}

// Check renders the merged file and compares it with the file on disk.
// It writes nothing. A missing or different file is a StaleOutputError.
func (g *Generator) Check() (*Result, error) {
	res, err := g.Render()
	if err != nil {
		return nil, err
	}

	existing, err := util.ReadFile(g.fs, g.outputFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &Error{
			Kind:    StaleOutputError,
			Message: fmt.Sprintf("Output file %s does not exist. Run the generator first.", g.outputFile),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", g.outputFile, err)
	}

	if !bytes.Equal(existing, res.Content) {
		return nil, &Error{
			Kind:    StaleOutputError,
			Message: fmt.Sprintf("Output file %s is out of date with /%s.", g.outputFile, filepath.ToSlash(g.snippetsDir)),
		}
	}
	return res, nil
}

// Render builds the merged mapping and encodes it without writing anything.
func (g *Generator) Render() (*Result, error) {
	files, merged, err := g.Merge()
	if err != nil {
		return nil, err
	}
	return &Result{
		OutputFile: g.outputFile,
		Files:      files,
		Snippets:   merged.Len(),
		Content:    jsonvalue.Encode(merged),
	}, nil
}

// Merge discovers, validates and namespaces every snippet. It returns the
// processed file names and the merged object.
func (g *Generator) Merge() ([]string, *jsonvalue.Value, error) {
	files, err := g.Discover()
	if err != nil {
		return nil, nil, err
	}

	merged := jsonvalue.NewObject()
	for _, name := range files {
		if err := g.mergeFile(name, merged); err != nil {
			return nil, nil, err
		}
	}
	return files, merged, nil
}

// Discover lists the snippet source files in processing order: every
// regular entry of the snippets directory ending in ".json", sorted by name.
func (g *Generator) Discover() ([]string, error) {
	if err := g.requireInputDir(); err != nil {
		return nil, err
	}

	infos, err := g.fs.ReadDir(g.snippetsDir)
	if err != nil {
		return nil, &Error{
			Kind:    ConfigurationError,
			Message: fmt.Sprintf("Cannot read /%s directory.", filepath.ToSlash(g.snippetsDir)),
			Err:     err,
		}
	}

	var files []string
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), sourceExt) {
			continue
		}
		files = append(files, info.Name())
	}
	if len(files) == 0 {
		return nil, configErrorf("No snippet files found in /%s.", filepath.ToSlash(g.snippetsDir))
	}
	slices.Sort(files)

	g.log.Debug("discovered snippet files",
		zap.String("dir", g.snippetsDir),
		zap.Strings("files", files))
	return files, nil
}

func (g *Generator) requireInputDir() error {
	info, err := g.fs.Stat(g.snippetsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{
			Kind:    ConfigurationError,
			Message: fmt.Sprintf("Cannot access /%s directory.", filepath.ToSlash(g.snippetsDir)),
			Err:     err,
		}
	}
	if err != nil || !info.IsDir() {
		return configErrorf("Missing /%s directory.", filepath.ToSlash(g.snippetsDir))
	}
	return nil
}

func (g *Generator) mergeFile(fileName string, merged *jsonvalue.Value) error {
	label, ok := g.labels[fileName]
	if !ok || label == "" {
		return &Error{
			Kind:    ConfigurationError,
			File:    fileName,
			Message: fmt.Sprintf("No language label defined for file: %s", fileName),
		}
	}

	data, err := util.ReadFile(g.fs, filepath.Join(g.snippetsDir, fileName))
	if err != nil {
		return &Error{
			Kind:    ConfigurationError,
			File:    fileName,
			Message: fmt.Sprintf("Cannot read %s", fileName),
			Err:     err,
		}
	}

	doc, err := jsonvalue.Decode(data)
	if err != nil {
		return &Error{
			Kind:    ParseError,
			File:    fileName,
			Message: fmt.Sprintf("Invalid JSON in %s", fileName),
			Err:     err,
		}
	}
	if !doc.IsObject() {
		return &Error{
			Kind:    ValidationError,
			File:    fileName,
			Message: fmt.Sprintf("Top-level JSON must be an object in %s", fileName),
		}
	}

	for pair := doc.Members().Oldest(); pair != nil; pair = pair.Next() {
		name, def := pair.Key, pair.Value
		if err := ValidateDefinition(fileName, name, def); err != nil {
			return err
		}

		key := GlobalKey(name, label)
		if merged.Has(key) {
			return &Error{
				Kind:    ValidationError,
				File:    fileName,
				Snippet: name,
				Key:     key,
				Message: fmt.Sprintf("Duplicate global snippet key detected: %s", key),
			}
		}
		merged.Set(key, def)
	}

	g.log.Debug("merged snippet file",
		zap.String("file", fileName),
		zap.String("label", label),
		zap.Int("snippets", doc.Len()))
	return nil
}

// write replaces the output file through a sibling temp file so an
// interrupted run never leaves a truncated output behind.
func (g *Generator) write(content []byte) (err error) {
	tmpName := filepath.Join(filepath.Dir(g.outputFile), tempPrefix+filepath.Base(g.outputFile)+".tmp")

	tmp, err := g.fs.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmpName, err)
	}
	defer func() {
		if err != nil {
			_ = g.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err = g.fs.Rename(tmpName, g.outputFile); err != nil {
		return fmt.Errorf("writing %s: %w", g.outputFile, err)
	}
	return nil
}
