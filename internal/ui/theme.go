package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Theme styles whole console lines. A disabled theme returns text untouched so
// plain output stays byte-exact.
type Theme struct {
	enabled bool

	Header lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Muted  lipgloss.Style
}

func PlainTheme() Theme { return Theme{} }

func ThemeForVariant(w io.Writer, variant string, force bool) Theme {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	switch variant {
	case "cozy_clean":
		return cozyCleanTheme(r)
	case "retro_terminal":
		return retroTerminalTheme(r)
	default:
		return modernArcadeTheme(r)
	}
}

// ColorEnabled resolves auto/always/never against the output writer.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.enabled {
		return s
	}
	return style.Render(s)
}

func modernArcadeTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		enabled: true,
		Header:  r.NewStyle().Foreground(lipgloss.Color("#5EEBFF")).Bold(true),
		Pass:    r.NewStyle().Foreground(lipgloss.Color("#67F0A8")).Bold(true),
		Fail:    r.NewStyle().Foreground(lipgloss.Color("#FF6F91")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#9CAAC6")),
	}
}

func cozyCleanTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		enabled: true,
		Header:  r.NewStyle().Foreground(lipgloss.Color("#F2B872")).Bold(true),
		Pass:    r.NewStyle().Foreground(lipgloss.Color("#80C4A3")).Bold(true),
		Fail:    r.NewStyle().Foreground(lipgloss.Color("#D17A86")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#A3ACC2")),
	}
}

func retroTerminalTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		enabled: true,
		Header:  r.NewStyle().Foreground(lipgloss.Color("#E5D47A")).Bold(true),
		Pass:    r.NewStyle().Foreground(lipgloss.Color("#9CF5A2")).Bold(true),
		Fail:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#73A17A")),
	}
}
