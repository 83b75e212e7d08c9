package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/resolver"
	"github.com/charmbracelet/glamour"
)

var sourceDescriptions = map[resolver.Source]string{
	resolver.SourceTarget: "direct target",
	resolver.SourceTag:    "extension tag rule",
	resolver.SourceConfig: "extension map",
}

// Explain builds a markdown report for the given services, or for every
// service of the plan when ids is empty
func Explain(plan *resolver.Plan, ids []string) (string, error) {
	if len(ids) == 0 {
		ids = plan.Admins()
	}

	var b strings.Builder
	for i, id := range ids {
		ap, ok := plan.Get(id)
		if !ok {
			return "", errors.Newf(errors.ErrNotFound, "service %s is not part of the plan", id).
				WithDetail("admin", id)
		}
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "# %s\n\n", ap.ID)
		if ap.Class != "" {
			fmt.Fprintf(&b, "- **Class**: `%s`\n", ap.Class)
		}
		if len(ap.ModelClasses) > 0 {
			fmt.Fprintf(&b, "- **Model classes**: `%s`\n", strings.Join(ap.ModelClasses, "`, `"))
		} else {
			b.WriteString("- **Model classes**: none resolved, class rules skipped\n")
		}
		b.WriteString("\n")

		if len(ap.Assignments) == 0 {
			b.WriteString("No extensions apply.\n")
			continue
		}

		b.WriteString("| # | Extension | Priority | Channel |\n")
		b.WriteString("|---|-----------|----------|---------|\n")
		for n, a := range ap.Assignments {
			fmt.Fprintf(&b, "| %d | `%s` | %d | %s |\n", n+1, a.Extension, a.Priority, sourceDescriptions[a.Source])
		}
	}
	return b.String(), nil
}

// RenderMarkdown renders markdown for the terminal. Without color the
// notty style is used.
func RenderMarkdown(content string, color bool, width int) (string, error) {
	var options []glamour.TermRendererOption
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot create markdown renderer")
	}
	out, err := renderer.Render(content)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render markdown")
	}
	return out, nil
}
