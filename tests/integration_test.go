package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syntax-frame/syntax-frame/internal/config"
	"github.com/syntax-frame/syntax-frame/internal/jsonvalue"
	"github.com/syntax-frame/syntax-frame/internal/snippet"
)

// testFixture is a project root on disk with a snippets/ directory.
type testFixture struct {
	root   string
	output string
}

func setup(t *testing.T, files map[string]string) *testFixture {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "snippets")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return &testFixture{
		root:   root,
		output: filepath.Join(root, "dist", "syntax-frame.code-snippets"),
	}
}

func (f *testFixture) generate(t *testing.T) (*snippet.Result, error) {
	t.Helper()
	fs := osfs.New(f.root)
	cfg, err := config.Load(fs)
	require.NoError(t, err)
	g := snippet.New(fs,
		snippet.WithPaths(cfg.SnippetsDir, cfg.OutputFile),
		snippet.WithLogger(zap.NewNop()))
	return g.Generate()
}

func (f *testFixture) readOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.output)
	require.NoError(t, err)
	return string(data)
}

// fullSet covers all five supported languages with the kinds of bodies and
// extra fields found in real snippet files.
var fullSet = map[string]string{
	"javascript.json": `{
  "Console Log": {
    "prefix": "clg",
    "scope": "javascript,typescript",
    "body": ["console.log(${1:value});", "$0"],
    "description": "Log to the console"
  },
  "Arrow Function": {
    "prefix": ["af", "arrow"],
    "scope": "javascript",
    "body": "const ${1:name} = (${2}) => {\n\t$0\n};"
  }
}`,
	"python.json": `{
  "Main Guard": {
    "prefix": "ifmain",
    "scope": "python",
    "body": ["if __name__ == \"__main__\":", "    ${1:main()}"]
  }
}`,
	"html.json": `{
  "Boilerplate": {
    "prefix": "html5",
    "scope": "html",
    "body": ["<!DOCTYPE html>", "<html lang=\"${1:en}\">", "<head>", "\t<meta charset=\"UTF-8\">", "</head>", "</html>"],
    "isFileTemplate": true
  }
}`,
	"css.json": `{
  "Center": {
    "prefix": "center",
    "scope": "css,scss",
    "body": ["display: grid;", "place-items: center;"],
    "description": "Centre a child — grid"
  }
}`,
	"java.json": `{
  "Main": {
    "prefix": "psvm",
    "scope": "java",
    "body": ["public static void main(String[] args) {", "\t$0", "}"]
  },
  "Console Log": {
    "prefix": "sout",
    "scope": "java",
    "body": "System.out.println($1);"
  }
}`,
}

func TestGenerate_AllLanguages(t *testing.T) {
	f := setup(t, fullSet)

	res, err := f.generate(t)
	require.NoError(t, err)

	assert.Equal(t, []string{"css.json", "html.json", "java.json", "javascript.json", "python.json"}, res.Files)

	out, err := jsonvalue.Decode([]byte(f.readOutput(t)))
	require.NoError(t, err)

	// One entry per input snippet, in file then appearance order.
	assert.Equal(t, []string{
		"Center — CSS",
		"Boilerplate — HTML",
		"Main — Java",
		"Console Log — Java",
		"Console Log — JavaScript",
		"Arrow Function — JavaScript",
		"Main Guard — Python",
	}, out.Keys())
	assert.Equal(t, 7, res.Snippets)

	// Every definition round-trips unchanged.
	for fileName, src := range fullSet {
		in, err := jsonvalue.Decode([]byte(src))
		require.NoError(t, err)
		for _, name := range in.Keys() {
			want, _ := in.Get(name)
			got, ok := out.Get(snippet.GlobalKey(name, snippet.Labels[fileName]))
			require.True(t, ok, "missing %s from %s", name, fileName)
			assert.Equal(t, string(jsonvalue.Encode(want)), string(jsonvalue.Encode(got)))
		}
	}
}

func TestGenerate_ExactOutput(t *testing.T) {
	f := setup(t, map[string]string{
		"javascript.json": `{"foo":{"prefix":"f","scope":"js","body":["a"]}}`,
		"python.json":     `{"bar":{"prefix":"b","scope":"py","body":"x"}}`,
	})

	_, err := f.generate(t)
	require.NoError(t, err)

	assert.Equal(t, "{\n"+
		"  \"foo — JavaScript\": {\n"+
		"    \"prefix\": \"f\",\n"+
		"    \"scope\": \"js\",\n"+
		"    \"body\": [\n"+
		"      \"a\"\n"+
		"    ]\n"+
		"  },\n"+
		"  \"bar — Python\": {\n"+
		"    \"prefix\": \"b\",\n"+
		"    \"scope\": \"py\",\n"+
		"    \"body\": \"x\"\n"+
		"  }\n"+
		"}", f.readOutput(t))
}

func TestGenerate_IdempotentOnDisk(t *testing.T) {
	f := setup(t, fullSet)

	_, err := f.generate(t)
	require.NoError(t, err)
	first := f.readOutput(t)

	_, err = f.generate(t)
	require.NoError(t, err)
	assert.Equal(t, first, f.readOutput(t))

	info, err := os.Stat(f.output)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	entries, err := os.ReadDir(filepath.Dir(f.output))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerate_CRLFInputNormalized(t *testing.T) {
	f := setup(t, map[string]string{
		"css.json": "{\r\n  \"a\": {\"prefix\": \"a\", \"scope\": \"css\", \"body\": \"a\"}\r\n}\r\n",
	})

	_, err := f.generate(t)
	require.NoError(t, err)
	assert.NotContains(t, f.readOutput(t), "\r")
}

func TestGenerate_FailureKeepsPreviousOutput(t *testing.T) {
	f := setup(t, fullSet)
	_, err := f.generate(t)
	require.NoError(t, err)
	before := f.readOutput(t)

	require.NoError(t, os.WriteFile(filepath.Join(f.root, "snippets", "ruby.json"), []byte(`{}`), 0o644))

	_, err = f.generate(t)
	require.Error(t, err)
	assert.True(t, snippet.IsKind(err, snippet.ConfigurationError))
	assert.Equal(t, before, f.readOutput(t))
}

func TestGenerate_Scenarios(t *testing.T) {
	t.Run("missing scope", func(t *testing.T) {
		f := setup(t, map[string]string{
			"python.json": `{"bar":{"prefix":"b","body":"x"}}`,
		})
		_, err := f.generate(t)
		assert.True(t, snippet.IsKind(err, snippet.ValidationError))
		_, statErr := os.Stat(f.output)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("unmapped file", func(t *testing.T) {
		f := setup(t, map[string]string{"ruby.json": `{}`})
		_, err := f.generate(t)
		assert.True(t, snippet.IsKind(err, snippet.ConfigurationError))
	})

	t.Run("invalid json", func(t *testing.T) {
		f := setup(t, map[string]string{"html.json": `{"div": }`})
		_, err := f.generate(t)
		assert.True(t, snippet.IsKind(err, snippet.ParseError))
		assert.Contains(t, err.Error(), "Invalid JSON in html.json")
	})

	t.Run("empty directory", func(t *testing.T) {
		f := setup(t, nil)
		_, err := f.generate(t)
		assert.True(t, snippet.IsKind(err, snippet.ConfigurationError))
		assert.Equal(t, "No snippet files found in /snippets.", err.Error())
	})
}
