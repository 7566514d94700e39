package service

import (
	"context"
	"strings"
	"sync"
	"time"

	v1 "confgen/api/v1"
	"confgen/internal/model"
	"confgen/internal/repository"

	"go.uber.org/zap"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, req *v1.CreateTemplateRequest) (int64, error)
	UpdateTemplateMetadata(ctx context.Context, id int64, req *v1.UpdateTemplateRequest) error
	DeleteTemplate(ctx context.Context, id int64) error
	GetTemplate(ctx context.Context, id int64) (*v1.TemplateDetail, error)
	ListTemplates(ctx context.Context, req *v1.ListTemplatesRequest) (*v1.ListTemplatesResponseData, error)

	CreateVersion(ctx context.Context, templateID int64, req *v1.CreateVersionRequest) (int, error)
	UpdateVersion(ctx context.Context, templateID int64, version int, req *v1.UpdateVersionRequest) error
	DeleteVersion(ctx context.Context, templateID int64, version int) error
	SetActiveVersion(ctx context.Context, templateID int64, version int) error
	GetVersion(ctx context.Context, templateID int64, version int) (*v1.VersionItem, error)
	ListVersions(ctx context.Context, templateID int64) (*v1.ListVersionsResponseData, error)

	ResolveActiveContent(ctx context.Context, templateID int64) (*model.TemplateVersion, error)
	ResolveByName(ctx context.Context, name string) (*model.Template, error)
}

func NewTemplateService(
	service *Service,
	templateRepo repository.TemplateRepository,
	metadataRepo repository.MetadataRepository,
) TemplateService {
	return &templateService{
		Service:      service,
		templateRepo: templateRepo,
		metadataRepo: metadataRepo,
	}
}

type templateService struct {
	*Service
	templateRepo repository.TemplateRepository
	metadataRepo repository.MetadataRepository

	// Per-template locks serialize version-number allocation, activation and
	// deletion. Cross-template operations stay fully independent.
	locks sync.Map
}

func (s *templateService) lock(templateID int64) func() {
	v, _ := s.locks.LoadOrStore(templateID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *templateService) validateMetadataValues(ctx context.Context, hostType, portType, switchOS string) error {
	checks := []struct {
		category repository.MetadataCategory
		value    string
		err      error
	}{
		{repository.CategoryHostType, hostType, v1.ErrUnknownHostType},
		{repository.CategoryPortType, portType, v1.ErrUnknownPortType},
		{repository.CategorySwitchOS, switchOS, v1.ErrUnknownSwitchOS},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		ok, err := s.metadataRepo.Exists(ctx, c.category, c.value)
		if err != nil {
			s.logger.WithContext(ctx).Error("metadata lookup failed", zap.Error(err))
			return v1.ErrInternalServerError
		}
		if !ok {
			return c.err
		}
	}
	return nil
}

func (s *templateService) CreateTemplate(ctx context.Context, req *v1.CreateTemplateRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, v1.ErrTemplateNameEmpty
	}
	if strings.TrimSpace(req.TemplateContent) == "" {
		return 0, v1.ErrTemplateEmpty
	}

	existing, err := s.templateRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.WithContext(ctx).Error("template name lookup failed", zap.Error(err))
		return 0, v1.ErrInternalServerError
	}
	if existing != nil {
		return 0, v1.ErrTemplateNameTaken
	}

	if err := s.validateMetadataValues(ctx, req.HostType, req.PortType, req.SwitchOS); err != nil {
		return 0, err
	}

	now := time.Now()
	tpl := &model.Template{
		Name:          name,
		HostType:      req.HostType,
		PortType:      req.PortType,
		SwitchOS:      req.SwitchOS,
		ActiveVersion: 1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The template row and its version 1 are created atomically.
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.templateRepo.Create(ctx, tpl); err != nil {
			return err
		}
		return s.templateRepo.CreateVersion(ctx, &model.TemplateVersion{
			TemplateId:         tpl.Id,
			Version:            1,
			VersionName:        "v1",
			VersionDescription: req.VersionDescription,
			TemplateContent:    req.TemplateContent,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("create template failed", zap.Error(err))
		return 0, v1.ErrInternalServerError
	}
	return tpl.Id, nil
}

func (s *templateService) UpdateTemplateMetadata(ctx context.Context, id int64, req *v1.UpdateTemplateRequest) error {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if tpl == nil {
		return v1.ErrTemplateNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return v1.ErrTemplateNameEmpty
		}
		if !strings.EqualFold(name, tpl.Name) {
			other, err := s.templateRepo.GetByName(ctx, name)
			if err != nil {
				s.logger.WithContext(ctx).Error("template name lookup failed", zap.Error(err))
				return v1.ErrInternalServerError
			}
			if other != nil && other.Id != tpl.Id {
				return v1.ErrTemplateNameTaken
			}
		}
		tpl.Name = name
	}

	// Only values supplied by the request are checked against the current
	// registry; values already stored stay valid even if orphaned.
	var hostType, portType, switchOS string
	if req.HostType != nil {
		hostType = *req.HostType
	}
	if req.PortType != nil {
		portType = *req.PortType
	}
	if req.SwitchOS != nil {
		switchOS = *req.SwitchOS
	}
	if err := s.validateMetadataValues(ctx, hostType, portType, switchOS); err != nil {
		return err
	}
	if req.HostType != nil {
		tpl.HostType = *req.HostType
	}
	if req.PortType != nil {
		tpl.PortType = *req.PortType
	}
	if req.SwitchOS != nil {
		tpl.SwitchOS = *req.SwitchOS
	}
	tpl.UpdatedAt = time.Now()

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		s.logger.WithContext(ctx).Error("update template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, id int64) error {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if tpl == nil {
		return v1.ErrTemplateNotFound
	}

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.templateRepo.DeleteVersionsByTemplateID(ctx, id); err != nil {
			return err
		}
		return s.templateRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("delete template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) GetTemplate(ctx context.Context, id int64) (*v1.TemplateDetail, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}

	active, err := s.templateRepo.GetVersion(ctx, tpl.Id, tpl.ActiveVersion)
	if err != nil {
		s.logger.WithContext(ctx).Error("get active version failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if active == nil {
		return nil, v1.ErrActiveVersionMissing
	}

	return &v1.TemplateDetail{
		TemplateItem:       templateItem(tpl),
		VersionName:        active.VersionName,
		VersionDescription: active.VersionDescription,
		TemplateContent:    active.TemplateContent,
	}, nil
}

func (s *templateService) ListTemplates(ctx context.Context, req *v1.ListTemplatesRequest) (*v1.ListTemplatesResponseData, error) {
	tpls, err := s.templateRepo.List(ctx, req.HostType, req.PortType, req.SwitchOS)
	if err != nil {
		s.logger.WithContext(ctx).Error("list templates failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	data := &v1.ListTemplatesResponseData{
		Total: int64(len(tpls)),
		List:  make([]v1.TemplateItem, 0, len(tpls)),
	}
	for _, tpl := range tpls {
		data.List = append(data.List, templateItem(tpl))
	}
	return data, nil
}

func (s *templateService) CreateVersion(ctx context.Context, templateID int64, req *v1.CreateVersionRequest) (int, error) {
	unlock := s.lock(templateID)
	defer unlock()

	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return 0, v1.ErrInternalServerError
	}
	if tpl == nil {
		return 0, v1.ErrTemplateNotFound
	}

	var next int
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		max, err := s.templateRepo.MaxVersion(ctx, templateID)
		if err != nil {
			return err
		}
		next = max + 1
		now := time.Now()
		return s.templateRepo.CreateVersion(ctx, &model.TemplateVersion{
			TemplateId:         templateID,
			Version:            next,
			VersionName:        req.VersionName,
			VersionDescription: req.VersionDescription,
			TemplateContent:    req.TemplateContent,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("create version failed", zap.Error(err))
		return 0, v1.ErrInternalServerError
	}
	return next, nil
}

func (s *templateService) UpdateVersion(ctx context.Context, templateID int64, version int, req *v1.UpdateVersionRequest) error {
	v, err := s.templateRepo.GetVersion(ctx, templateID, version)
	if err != nil {
		s.logger.WithContext(ctx).Error("get version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if v == nil {
		return v1.ErrVersionNotFound
	}

	if req.VersionName != nil {
		v.VersionName = *req.VersionName
	}
	if req.VersionDescription != nil {
		v.VersionDescription = *req.VersionDescription
	}
	if req.TemplateContent != nil {
		v.TemplateContent = *req.TemplateContent
	}
	v.UpdatedAt = time.Now()

	if err := s.templateRepo.UpdateVersion(ctx, v); err != nil {
		s.logger.WithContext(ctx).Error("update version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

// DeleteVersion removes one version. The last remaining version of a
// template cannot be deleted; deleting the active version moves
// active_version to the highest remaining number.
func (s *templateService) DeleteVersion(ctx context.Context, templateID int64, version int) error {
	unlock := s.lock(templateID)
	defer unlock()

	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if tpl == nil {
		return v1.ErrTemplateNotFound
	}

	target, err := s.templateRepo.GetVersion(ctx, templateID, version)
	if err != nil {
		s.logger.WithContext(ctx).Error("get version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if target == nil {
		return v1.ErrVersionNotFound
	}

	count, err := s.templateRepo.CountVersions(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("count versions failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if count <= 1 {
		return v1.ErrOnlyVersion
	}

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.templateRepo.DeleteVersion(ctx, templateID, version); err != nil {
			return err
		}
		if tpl.ActiveVersion == version {
			max, err := s.templateRepo.MaxVersion(ctx, templateID)
			if err != nil {
				return err
			}
			tpl.ActiveVersion = max
			tpl.UpdatedAt = time.Now()
			return s.templateRepo.Update(ctx, tpl)
		}
		return nil
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("delete version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) SetActiveVersion(ctx context.Context, templateID int64, version int) error {
	unlock := s.lock(templateID)
	defer unlock()

	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if tpl == nil {
		return v1.ErrTemplateNotFound
	}

	v, err := s.templateRepo.GetVersion(ctx, templateID, version)
	if err != nil {
		s.logger.WithContext(ctx).Error("get version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if v == nil {
		return v1.ErrVersionNotFound
	}

	if tpl.ActiveVersion == version {
		return nil
	}
	tpl.ActiveVersion = version
	tpl.UpdatedAt = time.Now()

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		s.logger.WithContext(ctx).Error("set active version failed", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) GetVersion(ctx context.Context, templateID int64, version int) (*v1.VersionItem, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}

	v, err := s.templateRepo.GetVersion(ctx, templateID, version)
	if err != nil {
		s.logger.WithContext(ctx).Error("get version failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if v == nil {
		return nil, v1.ErrVersionNotFound
	}

	item := versionItem(v, tpl.ActiveVersion)
	return &item, nil
}

func (s *templateService) ListVersions(ctx context.Context, templateID int64) (*v1.ListVersionsResponseData, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}

	versions, err := s.templateRepo.ListVersions(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("list versions failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	data := &v1.ListVersionsResponseData{List: make([]v1.VersionItem, 0, len(versions))}
	for _, v := range versions {
		data.List = append(data.List, versionItem(v, tpl.ActiveVersion))
	}
	return data, nil
}

// ResolveActiveContent returns the version record pointed at by the
// template's active_version. A dangling pointer is surfaced as an error,
// never a crash.
func (s *templateService) ResolveActiveContent(ctx context.Context, templateID int64) (*model.TemplateVersion, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("get template failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}

	active, err := s.templateRepo.GetVersion(ctx, templateID, tpl.ActiveVersion)
	if err != nil {
		s.logger.WithContext(ctx).Error("get active version failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if active == nil {
		return nil, v1.ErrActiveVersionMissing
	}
	return active, nil
}

func (s *templateService) ResolveByName(ctx context.Context, name string) (*model.Template, error) {
	tpl, err := s.templateRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.WithContext(ctx).Error("template name lookup failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return tpl, nil
}

func templateItem(tpl *model.Template) v1.TemplateItem {
	return v1.TemplateItem{
		Id:            tpl.Id,
		Name:          tpl.Name,
		HostType:      tpl.HostType,
		PortType:      tpl.PortType,
		SwitchOS:      tpl.SwitchOS,
		ActiveVersion: tpl.ActiveVersion,
		CreatedAt:     tpl.CreatedAt,
		UpdatedAt:     tpl.UpdatedAt,
	}
}

func versionItem(v *model.TemplateVersion, activeVersion int) v1.VersionItem {
	return v1.VersionItem{
		TemplateId:         v.TemplateId,
		Version:            v.Version,
		VersionName:        v.VersionName,
		VersionDescription: v.VersionDescription,
		TemplateContent:    v.TemplateContent,
		IsActive:           v.Version == activeVersion,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
