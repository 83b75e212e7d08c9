package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/adminext/pkg/config"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/resolver"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes plans to W
type Renderer struct {
	W     io.Writer
	Color bool

	// Digest adds the plan digest to the output
	Digest bool
}

// NewRenderer creates a renderer for w
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{W: w, Color: color}
}

type planDocument struct {
	Digest string                `yaml:"digest,omitempty" toml:"digest,omitempty"`
	Admins []*resolver.AdminPlan `yaml:"admins" toml:"admins"`
}

// Render writes plan in format
func (r *Renderer) Render(plan *resolver.Plan, format string) error {
	var (
		out string
		err error
	)
	switch format {
	case config.FormatText, "":
		out = r.text(plan)
	case config.FormatTable:
		out, err = r.table(plan)
	case config.FormatYAML:
		var b []byte
		b, err = yaml.Marshal(r.document(plan))
		out = string(b)
	case config.FormatTOML:
		var b []byte
		b, err = toml.Marshal(r.document(plan))
		out = string(b)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format).
			WithDetail("format", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot render plan as %s", format)
	}

	_, err = io.WriteString(r.W, out)
	return err
}

// FormatDigest renders a plan digest the way every format shows it
func FormatDigest(plan *resolver.Plan) string {
	return fmt.Sprintf("%016x", plan.Digest())
}

func (r *Renderer) document(plan *resolver.Plan) planDocument {
	doc := planDocument{Admins: plan.All()}
	if r.Digest {
		doc.Digest = FormatDigest(plan)
	}
	return doc
}

func (r *Renderer) text(plan *resolver.Plan) string {
	st := newStyles(r.W, r.Color)
	var b strings.Builder

	for i, ap := range plan.All() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.admin.Render(ap.ID))
		if ap.Class != "" {
			b.WriteString(" " + st.class.Render("("+ap.Class+")"))
		}
		b.WriteString("\n")

		if len(ap.Assignments) == 0 {
			b.WriteString("  " + st.muted.Render("no extensions") + "\n")
			continue
		}
		for _, a := range ap.Assignments {
			source := st.source[string(a.Source)].Render("[" + string(a.Source) + "]")
			fmt.Fprintf(&b, "  %s  %s %s\n",
				st.priority.Render(strconv.Itoa(a.Priority)),
				st.extension.Render(a.Extension),
				source)
		}
	}

	if r.Digest {
		fmt.Fprintf(&b, "\n%s %s\n", st.muted.Render("digest"), FormatDigest(plan))
	}
	return b.String()
}

func (r *Renderer) table(plan *resolver.Plan) (string, error) {
	data := pterm.TableData{{"Admin", "#", "Extension", "Priority", "Channel"}}
	for _, ap := range plan.All() {
		if len(ap.Assignments) == 0 {
			data = append(data, []string{ap.ID, "-", "-", "-", "-"})
			continue
		}
		for i, a := range ap.Assignments {
			data = append(data, []string{
				ap.ID,
				strconv.Itoa(i + 1),
				a.Extension,
				strconv.Itoa(a.Priority),
				string(a.Source),
			})
		}
	}

	if !r.Color {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	out += "\n"
	if r.Digest {
		out += "digest " + FormatDigest(plan) + "\n"
	}
	return out, nil
}
