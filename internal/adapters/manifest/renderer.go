// Package manifest renders the manifest and script of a generated package.
package manifest

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// PackageVersion is the version written into every generated manifest.
	PackageVersion = "0.1.0"
	// PackageEdition is the language edition of generated packages.
	PackageEdition = "2021"
	// PackageAuthor is the author written into every generated manifest.
	PackageAuthor = "Anonymous"
)

// Renderer implements ports.Renderer with TOML manifests.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the manifest and script body for the input.
// A manifest fragment embedded in a script file is merged over the defaults;
// the dependencies given on the command line take precedence over embedded ones.
func (r *Renderer) Render(
	input domain.Input,
	deps []domain.Dependency,
	prelude []string,
	id string,
	env domain.ScriptEnv,
) (manifest, script string, err error) {
	var body string
	var fragment map[string]any

	switch in := input.(type) {
	case domain.FileInput:
		body = stripShebang(in.Content)
		fragment, err = extractFragment(body)
		if err != nil {
			return "", "", zerr.With(err, "script", in.AbsPath)
		}
	case domain.ExprInput:
		body = wrapExpression(in.Content)
	default:
		return "", "", zerr.With(domain.ErrRenderFailed, "input", "unsupported input type")
	}

	doc := defaultManifest(env, id)
	if fragment != nil {
		mergeTables(doc, fragment)
	}
	if err := applyDependencies(doc, deps); err != nil {
		return "", "", err
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return "", "", zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	return string(data), prependPrelude(prelude, body), nil
}

func defaultManifest(env domain.ScriptEnv, id string) map[string]any {
	return map[string]any{
		"package": map[string]any{
			"name":    env.PkgName,
			"version": PackageVersion,
			"authors": []any{PackageAuthor},
			"edition": PackageEdition,
		},
		"bin": []any{
			map[string]any{
				"name": env.PkgName + "_" + id,
				"path": env.SafeName + domain.ScriptExt,
			},
		},
		"dependencies": map[string]any{},
		"profile": map[string]any{
			"release": map[string]any{
				"strip": true,
			},
		},
	}
}

// mergeTables copies src into dst, descending into tables present on both sides.
func mergeTables(dst, src map[string]any) {
	for key, value := range src {
		srcTable, srcIsTable := value.(map[string]any)
		dstTable, dstIsTable := dst[key].(map[string]any)
		if srcIsTable && dstIsTable {
			mergeTables(dstTable, srcTable)
			continue
		}
		dst[key] = value
	}
}

func applyDependencies(doc map[string]any, deps []domain.Dependency) error {
	table, ok := doc["dependencies"].(map[string]any)
	if !ok {
		return zerr.With(domain.ErrEmbeddedManifestInvalid, "key", "dependencies")
	}
	for _, dep := range deps {
		table[dep.Name] = dep.Version
	}
	return nil
}

func prependPrelude(prelude []string, body string) string {
	if len(prelude) == 0 {
		return body
	}
	return strings.Join(prelude, "\n") + "\n" + body
}

// stripShebang drops a leading interpreter line. "#![" starts an inner attribute, not a shebang.
func stripShebang(content string) string {
	if !strings.HasPrefix(content, "#!") || strings.HasPrefix(content, "#![") {
		return content
	}
	_, rest, found := strings.Cut(content, "\n")
	if !found {
		return ""
	}
	return rest
}

// wrapExpression turns an expression into a program printing its Debug form.
func wrapExpression(expr string) string {
	var b strings.Builder
	b.WriteString("fn main() {\n")
	b.WriteString("    let __rscript_result = {\n")
	for _, line := range strings.Split(strings.TrimRight(expr, "\n"), "\n") {
		b.WriteString("        ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("    };\n")
	b.WriteString("    println!(\"{:?}\", __rscript_result);\n")
	b.WriteString("}\n")
	return b.String()
}
