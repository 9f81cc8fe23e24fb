// Package tui styles the decorations headr prints around source content.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls when styling is applied.
type ColorMode int

const (
	// ColorAuto styles output only when the writer is a color terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles output regardless of the writer.
	ColorAlways
	// ColorNever never styles output.
	ColorNever
)

// Theme represents terminal color theme.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseColorMode maps a --color value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", s)
}

// ParseTheme maps a --theme value to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark", "":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("invalid theme %q: must be 'dark' or 'light'", s)
}

// RenderConfig holds rendering configuration.
type RenderConfig struct {
	Color ColorMode
	Theme Theme
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() RenderConfig {
	return RenderConfig{Color: ColorAuto, Theme: ThemeDark}
}

// Renderer renders headers and failure lines for one output stream.
// Unstyled output is exactly "==> ID <==" and "headr: ID: cause".
type Renderer struct {
	styled bool
	styles themeStyles
}

type themeStyles struct {
	arrow    lipgloss.Style
	sourceID lipgloss.Style
	program  lipgloss.Style
	errText  lipgloss.Style
}

func darkStyles(r *lipgloss.Renderer) themeStyles {
	return themeStyles{
		arrow:    r.NewStyle().Foreground(lipgloss.Color("240")),           // dark gray
		sourceID: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		program:  r.NewStyle().Foreground(lipgloss.Color("243")),           // dim gray
		errText:  r.NewStyle().Foreground(lipgloss.Color("196")),           // red
	}
}

func lightStyles(r *lipgloss.Renderer) themeStyles {
	return themeStyles{
		arrow:    r.NewStyle().Foreground(lipgloss.Color("249")),
		sourceID: r.NewStyle().Foreground(lipgloss.Color("27")).Bold(true),
		program:  r.NewStyle().Foreground(lipgloss.Color("242")),
		errText:  r.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

// NewRenderer creates a Renderer for output written to w.
func NewRenderer(w io.Writer, config RenderConfig) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch config.Color {
	case ColorAlways:
		if lr.ColorProfile() == termenv.Ascii {
			lr.SetColorProfile(termenv.ANSI256)
		}
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}

	var styles themeStyles
	if config.Theme == ThemeLight {
		styles = lightStyles(lr)
	} else {
		styles = darkStyles(lr)
	}
	return &Renderer{
		styled: lr.ColorProfile() != termenv.Ascii,
		styles: styles,
	}
}

// Header renders the separator line printed before a source, without newline.
func (r *Renderer) Header(id string) string {
	if !r.styled {
		return "==> " + id + " <=="
	}
	return r.styles.arrow.Render("==>") + " " + r.styles.sourceID.Render(id) + " " + r.styles.arrow.Render("<==")
}

// Failure renders a one-line diagnostic, without newline. An empty id
// renders "program: cause".
func (r *Renderer) Failure(program, id, cause string) string {
	if !r.styled {
		if id == "" {
			return program + ": " + cause
		}
		return program + ": " + id + ": " + cause
	}
	prefix := r.styles.program.Render(program + ":")
	if id != "" {
		prefix += " " + r.styles.sourceID.Render(id) + r.styles.program.Render(":")
	}
	return prefix + " " + r.styles.errText.Render(cause)
}
