package model

import "time"

// TemplateVersion is one content revision of a template, numbered per
// template starting at 1. (TemplateId, Version) is unique.
type TemplateVersion struct {
	Id                 int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TemplateId         int64     `json:"template_id" gorm:"column:template_id;not null;uniqueIndex:idx_template_version"`
	Version            int       `json:"version" gorm:"column:version;not null;uniqueIndex:idx_template_version"`
	VersionName        string    `json:"version_name" gorm:"column:version_name;not null"`
	VersionDescription string    `json:"version_description" gorm:"column:version_description"`
	TemplateContent    string    `json:"template_content" gorm:"column:template_content;not null"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (TemplateVersion) TableName() string {
	return "template_versions"
}
