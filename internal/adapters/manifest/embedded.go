package manifest

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	docPrefix       = "//!"
	cargoDepsPrefix = "// cargo-deps:"
	fenceOpen       = "```cargo"
	fenceClose      = "```"
)

// extractFragment finds a partial manifest in the leading comments of a script.
// A fenced cargo block inside "//!" doc comments is preferred over a cargo-deps line.
// It returns nil when the script embeds nothing.
func extractFragment(body string) (map[string]any, error) {
	lines := leadingComments(body)

	if block, ok := fencedBlock(lines); ok {
		var fragment map[string]any
		if err := toml.Unmarshal([]byte(block), &fragment); err != nil {
			return nil, zerr.Wrap(err, domain.ErrEmbeddedManifestInvalid.Error())
		}
		return fragment, nil
	}

	for _, line := range lines {
		if spec, ok := strings.CutPrefix(line, cargoDepsPrefix); ok {
			return parseCargoDeps(spec)
		}
	}

	return nil, nil
}

// leadingComments returns the comment lines before the first line of code.
func leadingComments(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "//") {
			break
		}
		lines = append(lines, trimmed)
	}
	return lines
}

func fencedBlock(lines []string) (string, bool) {
	var block []string
	inBlock := false

	for _, line := range lines {
		text, isDoc := strings.CutPrefix(line, docPrefix)
		if !isDoc {
			continue
		}
		text = strings.TrimPrefix(text, " ")

		switch {
		case !inBlock && strings.TrimSpace(text) == fenceOpen:
			inBlock = true
		case inBlock && strings.TrimSpace(text) == fenceClose:
			return strings.Join(block, "\n") + "\n", true
		case inBlock:
			block = append(block, text)
		}
	}
	return "", false
}

// parseCargoDeps reads `a="1", b` into a dependencies table.
func parseCargoDeps(spec string) (map[string]any, error) {
	table := map[string]any{}
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, version, found := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		version = strings.Trim(strings.TrimSpace(version), `"'`)
		if !found {
			version = domain.AnyVersion
		}
		if name == "" || version == "" {
			return nil, zerr.With(domain.ErrEmbeddedManifestInvalid, "cargo-deps", item)
		}
		table[name] = version
	}
	return map[string]any{"dependencies": table}, nil
}
