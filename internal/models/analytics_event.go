package models

import "gorm.io/datatypes"

// Event types recorded by the core. Reporting reads this table elsewhere;
// from the application's perspective it is append-only.
const (
	EventNominationSubmitted = "nomination_submitted"
	EventNominationApproved  = "nomination_approved"
	EventNominationRejected  = "nomination_rejected"
	EventProfilePublished    = "profile_published"
	EventProfileView         = "profile_view"
	EventUserRoleChanged     = "user_role_changed"
	EventUserStatusChanged   = "user_status_changed"
	EventImpersonationIssued = "impersonation_issued"
)

type AnalyticsEvent struct {
	BaseModel
	EventType string         `gorm:"type:varchar(64);not null;index" json:"event_type"`
	ProfileID *string        `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	UserID    *string        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
