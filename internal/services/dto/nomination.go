package dto

import (
	"time"

	"iconsherald/internal/models"
)

// SubmitNominationRequest is the public intake form. Website is the
// hidden honeypot field; legitimate clients always send it empty.
type SubmitNominationRequest struct {
	NominatorName  string   `json:"nominator_name" validate:"required,max=200"`
	NominatorEmail string   `json:"nominator_email" validate:"required,email"`
	NomineeName    string   `json:"nominee_name" validate:"required,max=200"`
	NomineeEmail   string   `json:"nominee_email" validate:"required,email"`
	Pitch          string   `json:"pitch" validate:"required,max=5000"`
	DesiredTier    string   `json:"desired_tier" validate:"required,is-tier"`
	SupportingURLs []string `json:"supporting_urls" validate:"max=3,dive,url"`
	Consent        bool     `json:"consent" validate:"eq=true"`
	Website        string   `json:"website"`
}

// SubmitNominationResponse deliberately omits the internal id.
type SubmitNominationResponse struct {
	Message string `json:"message"`
}

type NominationListRequest struct {
	Status   string `form:"status" validate:"omitempty,is-nomination-status"`
	Tier     string `form:"tier" validate:"omitempty,is-tier"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	SortBy   string `form:"sort_by" validate:"omitempty,oneof=date name"`
	SortDir  string `form:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type NominationResponse struct {
	ID              string       `json:"id"`
	NominatorName   string       `json:"nominator_name"`
	NominatorEmail  string       `json:"nominator_email"`
	NomineeName     string       `json:"nominee_name"`
	NomineeEmail    string       `json:"nominee_email"`
	Pitch           string       `json:"pitch"`
	DesiredTier     models.Tier  `json:"desired_tier"`
	SupportingLinks []string     `json:"supporting_links"`
	Status          string       `json:"status"`
	AssignedTier    *models.Tier `json:"assigned_tier,omitempty"`
	AdminNotes      string       `json:"admin_notes,omitempty"`
	FlagReason      string       `json:"flag_reason,omitempty"`
	ReviewerID      *string      `json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// NominationListResponse carries the filtered page plus the overall
// pending count for the review-queue badge.
type NominationListResponse struct {
	Nominations []*NominationResponse `json:"nominations"`
	Total       int64                 `json:"total"`
	Pending     int64                 `json:"pending"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalPages  int                   `json:"total_pages"`
}

type ApproveNominationRequest struct {
	AssignedTier string `json:"assigned_tier" validate:"required,is-tier"`
	AdminNotes   string `json:"admin_notes" validate:"max=2000"`
	TempPassword string `json:"temp_password" validate:"omitempty,min=8"`
}

type RejectNominationRequest struct {
	AdminNotes string `json:"admin_notes" validate:"required,max=2000"`
}

type FlagNominationRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// BulkNominationRequest applies one action uniformly. Bulk approval uses
// a single default tier for the whole selection.
type BulkNominationRequest struct {
	IDs          []string `json:"ids" validate:"required,min=1"`
	Action       string   `json:"action" validate:"required,oneof=approve reject flag"`
	AssignedTier string   `json:"assigned_tier" validate:"omitempty,is-tier"`
	AdminNotes   string   `json:"admin_notes" validate:"max=2000"`
	Reason       string   `json:"reason" validate:"max=2000"`
}

type BulkNominationResponse struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}
