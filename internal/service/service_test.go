package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"confgen/internal/model"
	"confgen/internal/repository"
	"confgen/pkg/log"
	"confgen/pkg/sid"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	service      *Service
	templateRepo repository.TemplateRepository
	metadataRepo repository.MetadataRepository
	snapshotRepo repository.SnapshotRepository
	templates    TemplateService
	metadata     MetadataService
}

var testDBSeq atomic.Int64

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named in-memory database per call so pooled connections share it but
	// separate envs in one test stay isolated.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Template{},
		&model.TemplateVersion{},
		&model.HostType{},
		&model.PortType{},
		&model.SwitchOSType{},
	))

	logger := &log.Logger{Logger: zap.NewNop()}
	repo := repository.NewRepository(logger, db)
	svc := NewService(repository.NewTransaction(repo), logger, sid.NewSid())
	templateRepo := repository.NewTemplateRepository(repo)
	metadataRepo := repository.NewMetadataRepository(repo)

	return &testEnv{
		db:           db,
		service:      svc,
		templateRepo: templateRepo,
		metadataRepo: metadataRepo,
		snapshotRepo: repository.NewSnapshotRepository(repo),
		templates:    NewTemplateService(svc, templateRepo, metadataRepo),
		metadata:     NewMetadataService(svc, metadataRepo),
	}
}

func (e *testEnv) seedMetadata(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.metadata.Add(ctx, repository.CategoryHostType, "leaf", "access layer"))
	require.NoError(t, e.metadata.Add(ctx, repository.CategoryHostType, "spine", ""))
	require.NoError(t, e.metadata.Add(ctx, repository.CategoryPortType, "10G", ""))
	require.NoError(t, e.metadata.Add(ctx, repository.CategorySwitchOS, "nxos", ""))
}
