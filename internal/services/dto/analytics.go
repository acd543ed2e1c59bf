package dto

import "time"

type AuditListRequest struct {
	EventType string `form:"event_type" validate:"omitempty,max=64"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

type AuditEventResponse struct {
	ID        string                 `json:"id"`
	EventType string                 `json:"event_type"`
	ProfileID *string                `json:"profile_id,omitempty"`
	UserID    *string                `json:"user_id,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditListResponse struct {
	Events     []*AuditEventResponse `json:"events"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UpdateSettingRequest struct {
	Key   string `json:"key" validate:"required,max=128"`
	Value string `json:"value" validate:"max=4000"`
}
