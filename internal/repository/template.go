package repository

import (
	"context"
	"errors"

	"confgen/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template) error
	Update(ctx context.Context, tpl *model.Template) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Template, error)
	GetByName(ctx context.Context, name string) (*model.Template, error)
	List(ctx context.Context, hostType, portType, switchOS string) ([]*model.Template, error)

	CreateVersion(ctx context.Context, v *model.TemplateVersion) error
	UpdateVersion(ctx context.Context, v *model.TemplateVersion) error
	DeleteVersion(ctx context.Context, templateID int64, version int) error
	DeleteVersionsByTemplateID(ctx context.Context, templateID int64) error
	GetVersion(ctx context.Context, templateID int64, version int) (*model.TemplateVersion, error)
	ListVersions(ctx context.Context, templateID int64) ([]*model.TemplateVersion, error)
	MaxVersion(ctx context.Context, templateID int64) (int, error)
	CountVersions(ctx context.Context, templateID int64) (int64, error)
}

func NewTemplateRepository(r *Repository) TemplateRepository {
	return &templateRepository{Repository: r}
}

type templateRepository struct {
	*Repository
}

func (r *templateRepository) Create(ctx context.Context, tpl *model.Template) error {
	return r.DB(ctx).Create(tpl).Error
}

func (r *templateRepository) Update(ctx context.Context, tpl *model.Template) error {
	return r.DB(ctx).Save(tpl).Error
}

func (r *templateRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Template{}).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*model.Template, error) {
	var tpl model.Template
	if err := r.DB(ctx).Where("id = ?", id).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

// GetByName matches case-insensitively; generation resolves template
// references from spreadsheet cells this way.
func (r *templateRepository) GetByName(ctx context.Context, name string) (*model.Template, error) {
	var tpl model.Template
	if err := r.DB(ctx).Where("LOWER(name) = LOWER(?)", name).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) List(ctx context.Context, hostType, portType, switchOS string) ([]*model.Template, error) {
	query := r.DB(ctx).Model(&model.Template{})
	if hostType != "" {
		query = query.Where("host_type = ?", hostType)
	}
	if portType != "" {
		query = query.Where("port_type = ?", portType)
	}
	if switchOS != "" {
		query = query.Where("switch_os = ?", switchOS)
	}

	var tpls []*model.Template
	if err := query.Order("host_type, port_type, switch_os, name").Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *templateRepository) CreateVersion(ctx context.Context, v *model.TemplateVersion) error {
	return r.DB(ctx).Create(v).Error
}

func (r *templateRepository) UpdateVersion(ctx context.Context, v *model.TemplateVersion) error {
	return r.DB(ctx).Save(v).Error
}

func (r *templateRepository) DeleteVersion(ctx context.Context, templateID int64, version int) error {
	return r.DB(ctx).
		Where("template_id = ? AND version = ?", templateID, version).
		Delete(&model.TemplateVersion{}).Error
}

func (r *templateRepository) DeleteVersionsByTemplateID(ctx context.Context, templateID int64) error {
	return r.DB(ctx).
		Where("template_id = ?", templateID).
		Delete(&model.TemplateVersion{}).Error
}

func (r *templateRepository) GetVersion(ctx context.Context, templateID int64, version int) (*model.TemplateVersion, error) {
	var v model.TemplateVersion
	if err := r.DB(ctx).Where("template_id = ? AND version = ?", templateID, version).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *templateRepository) ListVersions(ctx context.Context, templateID int64) ([]*model.TemplateVersion, error) {
	var versions []*model.TemplateVersion
	if err := r.DB(ctx).
		Where("template_id = ?", templateID).
		Order("version ASC").
		Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *templateRepository) MaxVersion(ctx context.Context, templateID int64) (int, error) {
	var max *int
	if err := r.DB(ctx).
		Model(&model.TemplateVersion{}).
		Where("template_id = ?", templateID).
		Select("MAX(version)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *templateRepository) CountVersions(ctx context.Context, templateID int64) (int64, error) {
	var count int64
	if err := r.DB(ctx).
		Model(&model.TemplateVersion{}).
		Where("template_id = ?", templateID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
