package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by ListCache.
const (
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ClearCache removes the build output cache and every generated package.
func (a *App) ClearCache(ctx context.Context) error {
	return a.phase(ctx, "evict", func(ctx context.Context) error {
		return a.evictor.Sweep(ctx, 0)
	})
}

// ListCache writes the cached packages to w in the given format.
func (a *App) ListCache(ctx context.Context, format string, w io.Writer) error {
	entries, err := a.evictor.List(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		return writeYAML(w, entries)
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(entries))
		return err
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

func writeYAML(w io.Writer, entries []domain.CacheEntry) error {
	if entries == nil {
		entries = []domain.CacheEntry{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return zerr.Wrap(err, "failed to encode cache entries")
	}
	return enc.Close()
}

func renderTable(entries []domain.CacheEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		deps := make([]string, 0, len(e.Deps))
		for _, d := range e.Deps {
			deps = append(deps, d.String())
		}
		build := "release"
		if e.Debug {
			build = "debug"
		}
		rows = append(rows, []string{e.ID, e.Source, build, strings.Join(deps, " "), e.Age})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Muted).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "SOURCE", "BUILD", "DEPS", "AGE").
		Rows(rows...).
		String()
}
