// Test Type: Unit Test
// Description: Tests for plan rendering

package output_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/output"
	"github.com/arthur-debert/adminext/pkg/resolver"
	"github.com/arthur-debert/adminext/pkg/typeinfo"
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePlan(t *testing.T) *resolver.Plan {
	t.Helper()
	catalog := typeinfo.NewCatalog()
	require.NoError(t, catalog.DeclareAll([]typeinfo.Declaration{
		{Name: "Post"}, {Name: "PostAdmin"},
	}))

	b := container.NewBuilder()
	require.NoError(t, b.Register(container.NewDefinition("app.admin.post", "PostAdmin").
		AddTag(resolver.DefaultAdminTag, types.NewAttributes(types.AttrModelClass, "Post"))))
	require.NoError(t, b.Register(container.NewDefinition("app.admin.tag", "PostAdmin").
		AddTag(resolver.DefaultAdminTag, types.NewAttributes(types.AttrModelClass, "Missing"))))
	require.NoError(t, b.Register(container.NewDefinition("app.ext.audit", "Ext").
		AddTag(resolver.DefaultExtensionTag, types.NewAttributes(types.AttrTarget, "app.admin.post", types.AttrPriority, 10))))
	require.NoError(t, b.Register(container.NewDefinition("app.ext.global", "Ext")))
	require.NoError(t, b.SetParameter(resolver.DefaultExtensionMapParameter, map[string]any{
		"app.ext.global": map[string]any{"global": true},
	}))

	plan, err := resolver.New(b, catalog).Resolve()
	require.NoError(t, err)
	return plan
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, false)
	r.Digest = true
	require.NoError(t, r.Render(samplePlan(t), "text"))

	out := buf.String()
	assert.Contains(t, out, "app.admin.post (PostAdmin)")
	assert.Contains(t, out, "   10  app.ext.audit [target]")
	assert.Contains(t, out, "    0  app.ext.global [config]")
	assert.Contains(t, out, "no extensions")
	assert.Contains(t, out, "digest ")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(&buf, false).Render(samplePlan(t), "table"))

	out := buf.String()
	assert.Contains(t, out, "Extension")
	assert.Contains(t, out, "app.ext.audit")
	assert.Contains(t, out, "app.admin.tag")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, false)
	r.Digest = true
	plan := samplePlan(t)
	require.NoError(t, r.Render(plan, "yaml"))

	var doc struct {
		Digest string `yaml:"digest"`
		Admins []struct {
			ID         string `yaml:"id"`
			Extensions []struct {
				Extension string `yaml:"extension"`
				Priority  int    `yaml:"priority"`
				Source    string `yaml:"source"`
			} `yaml:"extensions"`
		} `yaml:"admins"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, output.FormatDigest(plan), doc.Digest)
	require.Len(t, doc.Admins, 2)
	assert.Equal(t, "app.admin.post", doc.Admins[0].ID)
	require.Len(t, doc.Admins[0].Extensions, 2)
	assert.Equal(t, "app.ext.audit", doc.Admins[0].Extensions[0].Extension)
	assert.Equal(t, "target", doc.Admins[0].Extensions[0].Source)
	assert.NotContains(t, buf.String(), "admin:")
}

func TestRender_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(&buf, false).Render(samplePlan(t), "toml"))

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	admins, ok := doc["admins"].([]any)
	require.True(t, ok)
	assert.Len(t, admins, 2)
	assert.NotContains(t, doc, "digest")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := output.NewRenderer(&buf, false).Render(samplePlan(t), "html")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
}

func TestExplain(t *testing.T) {
	plan := samplePlan(t)

	md, err := output.Explain(plan, nil)
	require.NoError(t, err)
	assert.Contains(t, md, "# app.admin.post")
	assert.Contains(t, md, "| 1 | `app.ext.audit` | 10 | direct target |")
	assert.Contains(t, md, "| 2 | `app.ext.global` | 0 | extension map |")
	assert.Contains(t, md, "none resolved")

	md, err = output.Explain(plan, []string{"app.admin.tag"})
	require.NoError(t, err)
	assert.NotContains(t, md, "app.admin.post")
	assert.Contains(t, md, "No extensions apply.")

	_, err = output.Explain(plan, []string{"ghost"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestRenderMarkdown_Plain(t *testing.T) {
	out, err := output.RenderMarkdown("# Title\n\nSome `code`.\n", false, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "code")
}
