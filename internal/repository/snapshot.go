package repository

import (
	"context"
	"time"

	"confgen/internal/model"
)

type SnapshotRepository interface {
	Export(ctx context.Context) (*model.Snapshot, error)
	Import(ctx context.Context, snap *model.Snapshot) error
}

func NewSnapshotRepository(r *Repository) SnapshotRepository {
	return &snapshotRepository{Repository: r}
}

type snapshotRepository struct {
	*Repository
}

func (r *snapshotRepository) Export(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{ExportedAt: time.Now()}
	db := r.DB(ctx)

	if err := db.Order("id").Find(&snap.Templates).Error; err != nil {
		return nil, err
	}
	if err := db.Order("template_id, version").Find(&snap.Versions).Error; err != nil {
		return nil, err
	}
	if err := db.Order("name").Find(&snap.HostTypes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("name").Find(&snap.PortTypes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("name").Find(&snap.SwitchOSTypes).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

// Import replaces the whole store with the snapshot contents in one
// transaction; ids are preserved so active_version pointers stay valid.
func (r *snapshotRepository) Import(ctx context.Context, snap *model.Snapshot) error {
	return r.Transaction(ctx, func(ctx context.Context) error {
		db := r.DB(ctx)

		for _, m := range []interface{}{
			&model.TemplateVersion{},
			&model.Template{},
			&model.HostType{},
			&model.PortType{},
			&model.SwitchOSType{},
		} {
			if err := db.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		if len(snap.Templates) > 0 {
			if err := db.Create(&snap.Templates).Error; err != nil {
				return err
			}
		}
		if len(snap.Versions) > 0 {
			if err := db.Create(&snap.Versions).Error; err != nil {
				return err
			}
		}
		if len(snap.HostTypes) > 0 {
			if err := db.Create(&snap.HostTypes).Error; err != nil {
				return err
			}
		}
		if len(snap.PortTypes) > 0 {
			if err := db.Create(&snap.PortTypes).Error; err != nil {
				return err
			}
		}
		if len(snap.SwitchOSTypes) > 0 {
			if err := db.Create(&snap.SwitchOSTypes).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
