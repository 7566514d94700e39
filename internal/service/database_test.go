package service

import (
	"context"
	"strings"
	"testing"

	v1 "confgen/api/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestEnv(t)
	source.seedMetadata(t)
	ctx := context.Background()

	id := createTemplate(t, source, "portable")
	_, err := source.templates.CreateVersion(ctx, id, &v1.CreateVersionRequest{VersionName: "v2", TemplateContent: "b"})
	require.NoError(t, err)
	require.NoError(t, source.templates.SetActiveVersion(ctx, id, 2))

	raw, filename, err := NewDatabaseService(source.service, source.snapshotRepo).Export(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "confgen-snapshot-"))
	assert.True(t, strings.HasSuffix(filename, ".json"))

	target := newTestEnv(t)
	counts, err := NewDatabaseService(target.service, target.snapshotRepo).Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Templates)
	assert.Equal(t, 2, counts.Versions)
	assert.Equal(t, 2, counts.HostTypes)

	detail, err := target.templates.GetTemplate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "portable", detail.Name)
	assert.Equal(t, 2, detail.ActiveVersion)
	assert.Equal(t, "b", detail.TemplateContent)
}

func TestImportReplacesExistingData(t *testing.T) {
	env := newTestEnv(t)
	env.seedMetadata(t)
	ctx := context.Background()

	createTemplate(t, env, "will-be-replaced")

	empty := newTestEnv(t)
	raw, _, err := NewDatabaseService(empty.service, empty.snapshotRepo).Export(ctx)
	require.NoError(t, err)

	_, err = NewDatabaseService(env.service, env.snapshotRepo).Import(ctx, raw)
	require.NoError(t, err)

	list, err := env.templates.ListTemplates(ctx, &v1.ListTemplatesRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestImportRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDatabaseService(env.service, env.snapshotRepo)

	_, err := svc.Import(context.Background(), []byte("not json at all"))
	assert.ErrorIs(t, err, v1.ErrInvalidSnapshot)
}
