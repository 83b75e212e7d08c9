package container_test

import (
	"testing"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParamBuilder(t *testing.T) *container.Builder {
	t.Helper()
	b := container.NewBuilder()
	params := map[string]any{
		"app.model.post":  `App\Entity\Post`,
		"app.model.alias": "%app.model.post%",
		"app.namespace":   `App\Entity`,
		"app.page_size":   25,
		"app.models":      []any{"A", "B"},
	}
	for k, v := range params {
		require.NoError(t, b.SetParameter(k, v))
	}
	return b
}

func TestResolveValue(t *testing.T) {
	b := newParamBuilder(t)

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"plain string", `App\Entity\Post`, `App\Entity\Post`},
		{"whole reference", "%app.model.post%", `App\Entity\Post`},
		{"one level only", "%app.model.alias%", "%app.model.post%"},
		{"whole reference keeps type", "%app.page_size%", 25},
		{"whole reference to list", "%app.models%", []any{"A", "B"}},
		{"embedded", `%app.namespace%\Comment`, `App\Entity\Comment`},
		{"embedded number", "size-%app.page_size%", "size-25"},
		{"escaped percent", "100%% %app.page_size%", "100% 25"},
		{"non string", 42, 42},
		{"nil", nil, nil},
		{"list", []any{"%app.page_size%", "x"}, []any{25, "x"}},
		{"map", map[string]any{"k": "%app.model.post%"}, map[string]any{"k": `App\Entity\Post`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ResolveValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveValue_Errors(t *testing.T) {
	b := newParamBuilder(t)

	_, err := b.ResolveValue("%missing%")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParameterNotFound), "got %v", err)

	_, err = b.ResolveValue(`prefix-%missing%`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParameterNotFound), "got %v", err)

	_, err = b.ResolveValue([]any{"ok", "%missing%"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrParameterNotFound), "got %v", err)

	_, err = b.ResolveValue("models: %app.models%")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAttribute), "got %v", err)
}
