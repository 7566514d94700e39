package model

import "time"

// Template is the versioned binding of (host_type, port_type, switch_os) to
// renderable content. Content itself lives on TemplateVersion rows;
// ActiveVersion points at the version used during generation.
//
// HostType/PortType/SwitchOS are plain strings, not foreign keys: removing a
// metadata value never cascades to templates already referencing it.
type Template struct {
	Id            int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"column:name;not null"`
	HostType      string    `json:"host_type" gorm:"column:host_type;not null"`
	PortType      string    `json:"port_type" gorm:"column:port_type;not null"`
	SwitchOS      string    `json:"switch_os" gorm:"column:switch_os;not null"`
	ActiveVersion int       `json:"active_version" gorm:"column:active_version;default:1"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Template) TableName() string {
	return "templates"
}
