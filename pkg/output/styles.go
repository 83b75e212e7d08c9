package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#8a8a8a", Dark: "#6c6c6c"}
	primaryColor = lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#7571f9"}
	tagColor     = lipgloss.AdaptiveColor{Light: "#0f9d58", Dark: "#3ddc84"}
	targetColor  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
)

// styles are bound to one writer so color detection follows it
type styles struct {
	admin     lipgloss.Style
	class     lipgloss.Style
	extension lipgloss.Style
	priority  lipgloss.Style
	muted     lipgloss.Style
	source    map[string]lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		admin:     r.NewStyle().Foreground(headingColor).Bold(true),
		class:     r.NewStyle().Foreground(mutedColor).Italic(true),
		extension: r.NewStyle().Foreground(primaryColor),
		priority:  r.NewStyle().Width(5).Align(lipgloss.Right),
		muted:     r.NewStyle().Foreground(mutedColor),
		source: map[string]lipgloss.Style{
			"target": r.NewStyle().Foreground(targetColor),
			"tag":    r.NewStyle().Foreground(tagColor),
			"config": r.NewStyle().Foreground(mutedColor),
		},
	}
}
