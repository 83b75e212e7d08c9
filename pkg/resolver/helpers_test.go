package resolver_test

import (
	"testing"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/typeinfo"
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/stretchr/testify/require"
)

const (
	adminTag     = "sonata.admin"
	extensionTag = "sonata.admin.extension"
	mapParameter = "sonata.admin.extension.map"
)

// fixture is a small project: a catalog of model and admin types plus a
// container under construction
type fixture struct {
	t         *testing.T
	catalog   *typeinfo.Catalog
	container *container.Builder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := typeinfo.NewCatalog()
	require.NoError(t, catalog.DeclareAll([]typeinfo.Declaration{
		{Name: "InterfaceX", Kind: types.TypeInterface},
		{Name: "Timestampable", Kind: types.TypeTrait},
		{Name: "BaseModel", Uses: []string{"Timestampable"}},
		{Name: "ModelA", Parent: "BaseModel", Implements: []string{"InterfaceX"}},
		{Name: "ModelB"},
		{Name: "AbstractAdmin"},
		{Name: "PostAdmin", Parent: "AbstractAdmin"},
		{Name: "Extension"},
	}))
	return &fixture{t: t, catalog: catalog, container: container.NewBuilder()}
}

func (f *fixture) admin(id, class string, tags ...*types.Attributes) *fixture {
	f.t.Helper()
	def := container.NewDefinition(id, "PostAdmin")
	if len(tags) == 0 {
		tags = []*types.Attributes{types.NewAttributes(types.AttrModelClass, class)}
	}
	for _, tag := range tags {
		def.AddTag(adminTag, tag)
	}
	require.NoError(f.t, f.container.Register(def))
	return f
}

func (f *fixture) extension(id string, tags ...*types.Attributes) *fixture {
	f.t.Helper()
	def := container.NewDefinition(id, "Extension")
	for _, tag := range tags {
		def.AddTag(extensionTag, tag)
	}
	require.NoError(f.t, f.container.Register(def))
	return f
}

func (f *fixture) extensionMap(m map[string]any) *fixture {
	f.t.Helper()
	require.NoError(f.t, f.container.SetParameter(mapParameter, m))
	return f
}
