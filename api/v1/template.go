package v1

import "time"

// CreateTemplateRequest creates a template together with its first version.
type CreateTemplateRequest struct {
	Name               string `json:"name" binding:"required" example:"core-uplink"`
	HostType           string `json:"host_type" binding:"required" example:"SEG"`
	PortType           string `json:"port_type" binding:"required" example:"25G"`
	SwitchOS           string `json:"switch_os" binding:"required" example:"NXOS"`
	TemplateContent    string `json:"template_content" binding:"required"`
	VersionDescription string `json:"version_description"`
}

// UpdateTemplateRequest updates template metadata only; content lives on
// versions.
type UpdateTemplateRequest struct {
	Name     *string `json:"name,omitempty"`
	HostType *string `json:"host_type,omitempty"`
	PortType *string `json:"port_type,omitempty"`
	SwitchOS *string `json:"switch_os,omitempty"`
}

type ListTemplatesRequest struct {
	HostType string `form:"host_type"`
	PortType string `form:"port_type"`
	SwitchOS string `form:"switch_os"`
}

type TemplateItem struct {
	Id            int64     `json:"id"`
	Name          string    `json:"name"`
	HostType      string    `json:"host_type"`
	PortType      string    `json:"port_type"`
	SwitchOS      string    `json:"switch_os"`
	ActiveVersion int       `json:"active_version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListTemplatesResponseData struct {
	Total int64          `json:"total"`
	List  []TemplateItem `json:"list"`
}

// TemplateDetail is a template joined with its active version's content.
type TemplateDetail struct {
	TemplateItem
	VersionName        string `json:"version_name"`
	VersionDescription string `json:"version_description"`
	TemplateContent    string `json:"template_content"`
}

type CreateTemplateResponseData struct {
	Id int64 `json:"id"`
}
