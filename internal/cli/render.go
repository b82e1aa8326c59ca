package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dirtally/internal/config"
	"github.com/vvka-141/dirtally/internal/tui"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

func renderReport(w io.Writer, format string, r *Report) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, themeFor(w), r)
	}
}

// themeFor styles output only when w is a terminal.
func themeFor(w io.Writer) tui.Theme {
	if f, ok := w.(*os.File); ok {
		return tui.NewTheme(tui.DetectMode(f))
	}
	return tui.NewTheme(tui.ModePlain)
}

func renderText(w io.Writer, theme tui.Theme, r *Report) error {
	var b strings.Builder

	if len(r.Files) > 0 {
		width := lo.Max(lo.Map(r.Files, func(f dirtally.FileDescriptor, _ int) int {
			return len(f.AbsolutePath)
		}))
		for _, f := range r.Files {
			pad := strings.Repeat(" ", width-len(f.AbsolutePath))
			fmt.Fprintf(&b, "%s%s  %s\n",
				theme.Path.Render(f.AbsolutePath), pad,
				theme.Muted.Render(humanize.IBytes(uint64(f.SizeBytes))))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s %s in %s\n",
		theme.Success.Render(tui.SymbolCheck),
		theme.Number.Render(fmt.Sprintf("%d", r.Count)),
		plural(r.Count, "file", "files"),
		theme.Path.Render(r.Root))

	if r.Command != "count" {
		fmt.Fprintf(&b, "  %s %s\n", theme.Label.Render("total size:"), humanize.IBytes(uint64(r.TotalBytes)))
	}

	if len(r.Extensions) > 0 {
		exts := lo.Keys(r.Extensions)
		sort.Strings(exts)
		fmt.Fprintf(&b, "  %s\n", theme.Label.Render("by extension:"))
		for _, ext := range exts {
			fmt.Fprintf(&b, "    %s %-10s %d\n", tui.SymbolBullet, ext, r.Extensions[ext])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
