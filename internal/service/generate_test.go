package service

import (
	"context"
	"errors"
	"testing"

	v1 "confgen/api/v1"
	"confgen/pkg/render"
	mock_render "confgen/test/mocks/render"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateService(env *testEnv, engine render.Engine) GenerateService {
	return NewGenerateService(env.service, viper.New(), engine, env.templates, env.templateRepo)
}

func TestRenderPreview(t *testing.T) {
	env := newTestEnv(t)
	gen := newGenerateService(env, render.NewPongoEngine())
	ctx := context.Background()

	data, err := gen.RenderPreview(ctx, &v1.RenderRequest{
		Template:  "hostname {{ name }}",
		Variables: `{"name": "sw-01"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "hostname sw-01", data.Output)

	data, err = gen.RenderPreview(ctx, &v1.RenderRequest{
		Template:  "vlan {{ vlan }}",
		Variables: "vlan = 100",
	})
	require.NoError(t, err)
	assert.Equal(t, "vlan 100", data.Output)

	_, err = gen.RenderPreview(ctx, &v1.RenderRequest{
		Template: "{% for x in %}",
	})
	assert.Error(t, err)
}

func TestGenerateRequiresRows(t *testing.T) {
	env := newTestEnv(t)
	gen := newGenerateService(env, render.NewPongoEngine())

	_, err := gen.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, v1.ErrRowsMissing)
}

func TestGenerateMixedOutcomes(t *testing.T) {
	env := newTestEnv(t)
	env.seedMetadata(t)
	ctx := context.Background()

	_, err := env.templates.CreateTemplate(ctx, &v1.CreateTemplateRequest{
		Name:            "leaf-base",
		HostType:        "leaf",
		PortType:        "10G",
		SwitchOS:        "nxos",
		TemplateContent: "hostname {{ switch_name }} port {{ switch_port }}",
	})
	require.NoError(t, err)

	gen := newGenerateService(env, render.NewPongoEngine())

	data, err := gen.Generate(ctx, []map[string]string{
		{"switch_name": "sw-b", "eth_port": "1", "template": "leaf-base", "switch_port": "Port-02"},
		{"hostname": "sw-a", "port": "2", "template": "no-such"},
		{"switch_name": "sw-c", "template": "leaf-base"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, data.BatchId)
	assert.Equal(t, 1, data.SuccessRowCount)
	assert.Equal(t, 1, data.ErrorRowCount)
	assert.Equal(t, 1, data.SkippedRowCount)
	require.Len(t, data.Configs, 3)

	// Rows come back sorted by switch name.
	assert.Equal(t, "sw-a", data.Configs[0].Row["hostname"])
	assert.False(t, data.Configs[0].Success)
	assert.Contains(t, data.Configs[0].Error, "unknown template 'no-such'")

	assert.True(t, data.Configs[1].Success)
	assert.Equal(t, "leaf-base", data.Configs[1].TemplateName)
	assert.Equal(t, "hostname sw-b port 2", data.Configs[1].Config)
	// The Port- prefix and leading zeros were stripped in place.
	assert.Equal(t, "2", data.Configs[1].Row["switch_port"])

	assert.True(t, data.Configs[2].Skipped)
	assert.Equal(t, "missing required field", data.Configs[2].Error)
}

func TestGenerateUsesActiveVersionContent(t *testing.T) {
	env := newTestEnv(t)
	env.seedMetadata(t)
	ctx := context.Background()

	id, err := env.templates.CreateTemplate(ctx, &v1.CreateTemplateRequest{
		Name:            "versioned",
		HostType:        "leaf",
		PortType:        "10G",
		SwitchOS:        "nxos",
		TemplateContent: "old {{ switch_name }}",
	})
	require.NoError(t, err)
	_, err = env.templates.CreateVersion(ctx, id, &v1.CreateVersionRequest{
		VersionName:     "v2",
		TemplateContent: "new {{ switch_name }}",
	})
	require.NoError(t, err)
	require.NoError(t, env.templates.SetActiveVersion(ctx, id, 2))

	gen := newGenerateService(env, render.NewPongoEngine())
	data, err := gen.Generate(ctx, []map[string]string{
		{"switch_name": "sw-1", "eth_port": "1", "template": "versioned"},
	})
	require.NoError(t, err)
	require.Len(t, data.Configs, 1)
	assert.Equal(t, "new sw-1", data.Configs[0].Config)
}

func TestGenerateRendererFailureIsRowError(t *testing.T) {
	env := newTestEnv(t)
	env.seedMetadata(t)
	ctx := context.Background()

	_, err := env.templates.CreateTemplate(ctx, &v1.CreateTemplateRequest{
		Name:            "broken",
		HostType:        "leaf",
		PortType:        "10G",
		SwitchOS:        "nxos",
		TemplateContent: "x",
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := mock_render.NewMockEngine(ctrl)
	engine.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("template render error: boom"))

	gen := newGenerateService(env, engine)
	data, err := gen.Generate(ctx, []map[string]string{
		{"switch_name": "sw-1", "eth_port": "1", "template": "broken"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, data.ErrorRowCount)
	assert.Contains(t, data.Configs[0].Error, "boom")
}
