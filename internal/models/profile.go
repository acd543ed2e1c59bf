package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile is the nominee's public page. Content is a free-form JSON
// document whose effective shape depends on the tier; fields outside the
// tier's template are tolerated but never rendered.
type Profile struct {
	BaseModel
	UserID string        `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Tier   Tier          `gorm:"type:varchar(20);not null" json:"tier"`
	Status ProfileStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Slug   string        `gorm:"uniqueIndex;not null" json:"slug"`

	Content datatypes.JSON `gorm:"type:jsonb" json:"content"`
	Theme   datatypes.JSON `gorm:"type:jsonb" json:"theme"`

	PaymentStatus ProfilePaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PublishedAt   *time.Time           `json:"published_at,omitempty"`
	ViewCount     int64                `gorm:"default:0" json:"view_count"`

	// Relations
	Payments []Payment `gorm:"foreignKey:ProfileID" json:"-"`
}

// ThemeSettings is the typed view of Profile.Theme.
type ThemeSettings struct {
	ColorScheme string `json:"color_scheme,omitempty"`
	Layout      string `json:"layout,omitempty"`
	Typography  string `json:"typography,omitempty"`
	Variant     string `json:"variant,omitempty"`
}

func (p *Profile) GetTheme() ThemeSettings {
	var theme ThemeSettings
	if len(p.Theme) > 0 {
		_ = json.Unmarshal(p.Theme, &theme)
	}
	return theme
}

func (p *Profile) SetTheme(theme ThemeSettings) {
	data, _ := json.Marshal(theme)
	p.Theme = datatypes.JSON(data)
}
