package model

// Metadata value sets referenced by templates and rows. Each category is its
// own table of unique names; switch OS is a single global set.

type HostType struct {
	Id          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description string `json:"description" gorm:"column:description"`
}

func (HostType) TableName() string {
	return "host_types"
}

type PortType struct {
	Id   int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
}

func (PortType) TableName() string {
	return "port_types"
}

type SwitchOSType struct {
	Id   int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
}

func (SwitchOSType) TableName() string {
	return "switch_os_types"
}
