package service

import (
	"context"
	"strings"

	v1 "confgen/api/v1"
	"confgen/internal/repository"

	"go.uber.org/zap"
)

type MetadataService interface {
	List(ctx context.Context, category repository.MetadataCategory) (*v1.ListMetadataResponseData, error)
	Add(ctx context.Context, category repository.MetadataCategory, name, description string) error
	Remove(ctx context.Context, category repository.MetadataCategory, name string) error
}

func NewMetadataService(
	service *Service,
	metadataRepo repository.MetadataRepository,
) MetadataService {
	return &metadataService{
		Service:      service,
		metadataRepo: metadataRepo,
	}
}

type metadataService struct {
	*Service
	metadataRepo repository.MetadataRepository
}

func (s *metadataService) List(ctx context.Context, category repository.MetadataCategory) (*v1.ListMetadataResponseData, error) {
	names, err := s.metadataRepo.List(ctx, category)
	if err != nil {
		s.logger.WithContext(ctx).Error("list metadata failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if names == nil {
		names = []string{}
	}
	return &v1.ListMetadataResponseData{List: names}, nil
}

func (s *metadataService) Add(ctx context.Context, category repository.MetadataCategory, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return v1.ErrMetadataValueEmpty
	}

	exists, err := s.metadataRepo.Exists(ctx, category, name)
	if err != nil {
		s.logger.WithContext(ctx).Error("metadata lookup failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if exists {
		return v1.ErrMetadataValueTaken
	}

	if err := s.metadataRepo.Add(ctx, category, name, description); err != nil {
		s.logger.WithContext(ctx).Error("add metadata value failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

// Remove never cascades: templates referencing the value keep their now
// orphaned string, flagged (if at all) by the presentation layer.
func (s *metadataService) Remove(ctx context.Context, category repository.MetadataCategory, name string) error {
	if err := s.metadataRepo.Remove(ctx, category, name); err != nil {
		s.logger.WithContext(ctx).Error("remove metadata value failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}
