package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Nomination is a public request to induct a nominee, reviewed by an admin.
type Nomination struct {
	BaseModel
	NominatorName  string `gorm:"not null" json:"nominator_name"`
	NominatorEmail string `gorm:"not null;index" json:"nominator_email"`
	NomineeName    string `gorm:"not null" json:"nominee_name"`
	NomineeEmail   string `gorm:"not null;index" json:"nominee_email"`
	Pitch          string `gorm:"type:text;not null" json:"pitch"`
	DesiredTier    Tier   `gorm:"type:varchar(20);not null" json:"desired_tier"`

	// SupportingLinks is a JSON array of at most 3 URLs.
	SupportingLinks datatypes.JSON `gorm:"type:jsonb" json:"supporting_links"`

	Status NominationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Review outcome. AssignedTier may differ from DesiredTier; both are
	// kept independently.
	AssignedTier *Tier      `gorm:"type:varchar(20)" json:"assigned_tier,omitempty"`
	AdminNotes   string     `gorm:"type:text" json:"admin_notes,omitempty"`
	FlagReason   string     `gorm:"type:text" json:"flag_reason,omitempty"`
	ReviewerID   *string    `gorm:"type:uuid" json:"reviewer_id,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

func (n *Nomination) GetSupportingLinks() []string {
	var links []string
	if len(n.SupportingLinks) > 0 {
		_ = json.Unmarshal(n.SupportingLinks, &links)
	}
	return links
}

func (n *Nomination) SetSupportingLinks(links []string) {
	data, _ := json.Marshal(links)
	n.SupportingLinks = datatypes.JSON(data)
}
