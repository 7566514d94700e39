package service

import (
	"context"
	"encoding/json"

	v1 "confgen/api/v1"
	"confgen/internal/model"
	"confgen/internal/repository"

	"go.uber.org/zap"
)

type DatabaseService interface {
	Export(ctx context.Context) ([]byte, string, error)
	Import(ctx context.Context, raw []byte) (*v1.ImportDatabaseResponseData, error)
}

func NewDatabaseService(
	service *Service,
	snapshotRepo repository.SnapshotRepository,
) DatabaseService {
	return &databaseService{
		Service:      service,
		snapshotRepo: snapshotRepo,
	}
}

type databaseService struct {
	*Service
	snapshotRepo repository.SnapshotRepository
}

// Export marshals the whole store as a JSON attachment and returns the
// payload plus a suggested filename.
func (s *databaseService) Export(ctx context.Context) ([]byte, string, error) {
	snap, err := s.snapshotRepo.Export(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("export snapshot failed", zap.Error(err))
		return nil, "", v1.ErrInternalServerError
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.WithContext(ctx).Error("marshal snapshot failed", zap.Error(err))
		return nil, "", v1.ErrInternalServerError
	}

	id, err := s.sid.GenString()
	if err != nil {
		s.logger.WithContext(ctx).Error("generate snapshot id failed", zap.Error(err))
		return nil, "", v1.ErrInternalServerError
	}
	return raw, "confgen-snapshot-" + id + ".json", nil
}

func (s *databaseService) Import(ctx context.Context, raw []byte) (*v1.ImportDatabaseResponseData, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, v1.ErrInvalidSnapshot
	}

	if err := s.snapshotRepo.Import(ctx, &snap); err != nil {
		s.logger.WithContext(ctx).Error("import snapshot failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	return &v1.ImportDatabaseResponseData{
		Templates: len(snap.Templates),
		Versions:  len(snap.Versions),
		HostTypes: len(snap.HostTypes),
		PortTypes: len(snap.PortTypes),
		SwitchOS:  len(snap.SwitchOSTypes),
	}, nil
}
