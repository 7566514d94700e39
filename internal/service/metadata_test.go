package service

import (
	"context"
	"testing"

	v1 "confgen/api/v1"
	"confgen/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataAddAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.metadata.Add(ctx, repository.CategoryHostType, "leaf", "access"))
	require.NoError(t, env.metadata.Add(ctx, repository.CategoryHostType, "border", ""))

	data, err := env.metadata.List(ctx, repository.CategoryHostType)
	require.NoError(t, err)
	assert.Equal(t, []string{"border", "leaf"}, data.List)

	// The three categories are independent sets.
	other, err := env.metadata.List(ctx, repository.CategoryPortType)
	require.NoError(t, err)
	assert.Empty(t, other.List)
}

func TestMetadataAddRejectsEmptyAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.metadata.Add(ctx, repository.CategoryPortType, "   ", ""), v1.ErrMetadataValueEmpty)

	require.NoError(t, env.metadata.Add(ctx, repository.CategoryPortType, "40G", ""))
	assert.ErrorIs(t, env.metadata.Add(ctx, repository.CategoryPortType, "40G", ""), v1.ErrMetadataValueTaken)
}

func TestMetadataRemoveIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.metadata.Add(ctx, repository.CategorySwitchOS, "eos", ""))
	require.NoError(t, env.metadata.Remove(ctx, repository.CategorySwitchOS, "eos"))
	require.NoError(t, env.metadata.Remove(ctx, repository.CategorySwitchOS, "eos"))
	require.NoError(t, env.metadata.Remove(ctx, repository.CategorySwitchOS, "never-existed"))
}

func TestMetadataRemoveDoesNotCascadeToTemplates(t *testing.T) {
	env := newTestEnv(t)
	env.seedMetadata(t)
	ctx := context.Background()

	id := createTemplate(t, env, "keeps-value")

	require.NoError(t, env.metadata.Remove(ctx, repository.CategoryPortType, "10G"))

	detail, err := env.templates.GetTemplate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "10G", detail.PortType)
}
