package models

// SystemSetting is a key/value row behind the super-admin settings screen.
type SystemSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
