package repository

import (
	"context"
	"errors"

	"confgen/internal/model"

	"gorm.io/gorm"
)

// MetadataCategory selects one of the three value sets.
type MetadataCategory string

const (
	CategoryHostType MetadataCategory = "host_types"
	CategoryPortType MetadataCategory = "port_types"
	CategorySwitchOS MetadataCategory = "switch_os_types"
)

type MetadataRepository interface {
	List(ctx context.Context, category MetadataCategory) ([]string, error)
	Exists(ctx context.Context, category MetadataCategory, name string) (bool, error)
	Add(ctx context.Context, category MetadataCategory, name, description string) error
	Remove(ctx context.Context, category MetadataCategory, name string) error
	DeleteAll(ctx context.Context, category MetadataCategory) error
}

func NewMetadataRepository(r *Repository) MetadataRepository {
	return &metadataRepository{Repository: r}
}

type metadataRepository struct {
	*Repository
}

func (r *metadataRepository) modelFor(category MetadataCategory) interface{} {
	switch category {
	case CategoryPortType:
		return &model.PortType{}
	case CategorySwitchOS:
		return &model.SwitchOSType{}
	default:
		return &model.HostType{}
	}
}

func (r *metadataRepository) List(ctx context.Context, category MetadataCategory) ([]string, error) {
	var names []string
	if err := r.DB(ctx).
		Model(r.modelFor(category)).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *metadataRepository) Exists(ctx context.Context, category MetadataCategory, name string) (bool, error) {
	var count int64
	if err := r.DB(ctx).
		Model(r.modelFor(category)).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *metadataRepository) Add(ctx context.Context, category MetadataCategory, name, description string) error {
	switch category {
	case CategoryPortType:
		return r.DB(ctx).Create(&model.PortType{Name: name}).Error
	case CategorySwitchOS:
		return r.DB(ctx).Create(&model.SwitchOSType{Name: name}).Error
	default:
		return r.DB(ctx).Create(&model.HostType{Name: name, Description: description}).Error
	}
}

// Remove is an idempotent delete: removing an absent value is not an error,
// and values still referenced by templates are removed anyway (soft
// referential integrity).
func (r *metadataRepository) Remove(ctx context.Context, category MetadataCategory, name string) error {
	err := r.DB(ctx).Where("name = ?", name).Delete(r.modelFor(category)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *metadataRepository) DeleteAll(ctx context.Context, category MetadataCategory) error {
	return r.DB(ctx).Where("1 = 1").Delete(r.modelFor(category)).Error
}
