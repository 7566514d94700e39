package v1

import "time"

type CreateVersionRequest struct {
	VersionName        string `json:"version_name" binding:"required" example:"v2"`
	VersionDescription string `json:"version_description"`
	TemplateContent    string `json:"template_content" binding:"required"`
}

type UpdateVersionRequest struct {
	VersionName        *string `json:"version_name,omitempty"`
	VersionDescription *string `json:"version_description,omitempty"`
	TemplateContent    *string `json:"template_content,omitempty"`
}

type VersionItem struct {
	TemplateId         int64     `json:"template_id"`
	Version            int       `json:"version"`
	VersionName        string    `json:"version_name"`
	VersionDescription string    `json:"version_description"`
	TemplateContent    string    `json:"template_content"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CreateVersionResponseData struct {
	Version int `json:"version"`
}

type ListVersionsResponseData struct {
	List []VersionItem `json:"list"`
}
