package model

import "time"

// Setting is one key/value row of the persisted settings store. Settings
// are grouped; the storage platform selector lives under the "general"
// group.
type Setting struct {
	ID           uint      `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	SettingGroup string    `gorm:"column:setting_group;uniqueIndex:idx_setting_key" json:"setting_group,omitempty"`
	SettingKey   string    `gorm:"column:setting_key;uniqueIndex:idx_setting_key" json:"setting_key,omitempty"`
	SettingValue string    `gorm:"column:setting_value;type:text" json:"setting_value,omitempty"`
	Remark       string    `gorm:"column:remark;type:varchar(512)" json:"remark,omitempty"`
}

// TableName overrides gorm to use setting table.
func (Setting) TableName() string {
	return "setting"
}
