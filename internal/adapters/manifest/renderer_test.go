package manifest_test

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/manifest"
	"go.trai.ch/rscript/internal/core/domain"
)

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, toml.Unmarshal([]byte(text), &doc))
	return doc
}

func fileInput(content string) (domain.FileInput, domain.ScriptEnv) {
	in := domain.FileInput{Name: "Hello", AbsPath: "/scripts/Hello.rs", Content: content}
	return in, domain.NewScriptEnv(in)
}

func TestRenderer_DefaultManifest(t *testing.T) {
	in, env := fileInput("fn main() {}\n")
	deps := []domain.Dependency{{Name: "regex", Version: "1"}, {Name: "time", Version: "*"}}

	mani, _, err := manifest.NewRenderer().Render(in, deps, nil, "abc123", env)
	require.NoError(t, err)

	doc := decode(t, mani)
	assert.Equal(t, map[string]any{
		"name":    "hello",
		"version": "0.1.0",
		"authors": []any{"Anonymous"},
		"edition": "2021",
	}, doc["package"])
	assert.Equal(t, []any{map[string]any{"name": "hello_abc123", "path": "Hello.rs"}}, doc["bin"])
	assert.Equal(t, map[string]any{"regex": "1", "time": "*"}, doc["dependencies"])
	assert.Equal(t, map[string]any{"release": map[string]any{"strip": true}}, doc["profile"])
}

func TestRenderer_Deterministic(t *testing.T) {
	in, env := fileInput("fn main() {}\n")
	deps := []domain.Dependency{{Name: "a", Version: "1"}, {Name: "b", Version: "2"}, {Name: "c", Version: "3"}}
	r := manifest.NewRenderer()

	m1, s1, err := r.Render(in, deps, []string{"#![feature(test)]"}, "id", env)
	require.NoError(t, err)
	m2, s2, err := r.Render(in, deps, []string{"#![feature(test)]"}, "id", env)
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, s1, s2)
}

func TestRenderer_FileScript(t *testing.T) {
	content := "#!/usr/bin/env rscript\n//! A tiny demo.\nuse std::env;\n\nfn main() {\n    println!(\"{:?}\", env::args());\n}\n"
	in, env := fileInput(content)
	prelude := domain.BuildPrelude([]string{"test"}, []string{"log"})

	_, script, err := manifest.NewRenderer().Render(in, nil, prelude, "id", env)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "file_script", []byte(script))
}

func TestRenderer_InnerAttributeIsNotShebang(t *testing.T) {
	in, env := fileInput("#![allow(unused)]\nfn main() {}\n")

	_, script, err := manifest.NewRenderer().Render(in, nil, nil, "id", env)
	require.NoError(t, err)
	assert.Equal(t, "#![allow(unused)]\nfn main() {}\n", script)
}

func TestRenderer_ExprScript(t *testing.T) {
	in := domain.ExprInput{Content: "1 + 2", WorkDir: "/tmp"}
	env := domain.NewScriptEnv(in)

	mani, script, err := manifest.NewRenderer().Render(in, nil, nil, "feed", env)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "expr_script", []byte(script))

	doc := decode(t, mani)
	assert.Equal(t, []any{map[string]any{"name": "expr_feed", "path": "expr.rs"}}, doc["bin"])
}

func TestRenderer_EmbeddedFencedManifest(t *testing.T) {
	content := "//! Demo script.\n" +
		"//!\n" +
		"//! ```cargo\n" +
		"//! [dependencies]\n" +
		"//! regex = \"1.5\"\n" +
		"//! serde = { version = \"1\", features = [\"derive\"] }\n" +
		"//!\n" +
		"//! [features]\n" +
		"//! fast = []\n" +
		"//! ```\n" +
		"fn main() {}\n"
	in, env := fileInput(content)
	deps := []domain.Dependency{{Name: "regex", Version: "1.9"}}

	mani, _, err := manifest.NewRenderer().Render(in, deps, nil, "id", env)
	require.NoError(t, err)

	doc := decode(t, mani)
	depsTable, ok := doc["dependencies"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.9", depsTable["regex"], "command line dependencies win")
	assert.Equal(t, map[string]any{"version": "1", "features": []any{"derive"}}, depsTable["serde"])
	features, ok := doc["features"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, features, "fast")

	pkg, ok := doc["package"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", pkg["name"])
}

func TestRenderer_CargoDepsLine(t *testing.T) {
	in, env := fileInput("// cargo-deps: time=\"0.1.25\", rand\nfn main() {}\n")

	mani, _, err := manifest.NewRenderer().Render(in, nil, nil, "id", env)
	require.NoError(t, err)

	doc := decode(t, mani)
	assert.Equal(t, map[string]any{"time": "0.1.25", "rand": "*"}, doc["dependencies"])
}

func TestRenderer_CommentsAfterCodeAreIgnored(t *testing.T) {
	in, env := fileInput("fn main() {}\n// cargo-deps: rand\n")

	mani, _, err := manifest.NewRenderer().Render(in, nil, nil, "id", env)
	require.NoError(t, err)

	doc := decode(t, mani)
	assert.Empty(t, doc["dependencies"])
}

func TestRenderer_InvalidEmbeddedManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad toml",
			content: "//! ```cargo\n//! [dependencies\n//! ```\nfn main() {}\n",
		},
		{
			name:    "dependencies not a table",
			content: "//! ```cargo\n//! dependencies = 3\n//! ```\nfn main() {}\n",
		},
		{
			name:    "empty cargo-deps version",
			content: "// cargo-deps: rand=\nfn main() {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, env := fileInput(tt.content)
			_, _, err := manifest.NewRenderer().Render(in, nil, nil, "id", env)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrEmbeddedManifestInvalid.Error())
		})
	}
}
