package dto

import (
	"time"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
)

type StartProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

type SaveDraftRequest struct {
	Content content.Document `json:"content" validate:"required"`
}

type UpdateThemeRequest struct {
	ColorScheme string `json:"color_scheme" validate:"omitempty,max=64"`
	Layout      string `json:"layout" validate:"omitempty,max=64"`
	Typography  string `json:"typography" validate:"omitempty,max=64"`
	Variant     string `json:"variant" validate:"omitempty,max=64"`
}

type ProfileResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	Tier          models.Tier          `json:"tier"`
	Status        models.ProfileStatus `json:"status"`
	Slug          string               `json:"slug"`
	Content       *content.Document    `json:"content"`
	Theme         models.ThemeSettings `json:"theme"`
	PaymentStatus string               `json:"payment_status"`
	PublishedAt   *time.Time           `json:"published_at,omitempty"`
	ViewCount     int64                `json:"view_count"`
	Completion    int                  `json:"completion"`
	Missing       []string             `json:"missing,omitempty"`
	Steps         []content.StepStatus `json:"steps,omitempty"`
	Limits        map[string]int       `json:"limits,omitempty"`
	Sections      []string             `json:"sections,omitempty"`
}

// StepsResponse is the builder progress view: completion percentage,
// the tier-required fields still empty, and per-step validity.
type StepsResponse struct {
	Completion int                  `json:"completion"`
	Missing    []string             `json:"missing,omitempty"`
	Steps      []content.StepStatus `json:"steps"`
}

// AddEntryRequest creates a list entry; order and visibility are assigned
// server-side.
type AddEntryRequest struct {
	Title       string `json:"title" validate:"omitempty,max=300"`
	Subtitle    string `json:"subtitle" validate:"omitempty,max=300"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	URL         string `json:"url" validate:"omitempty,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Date        string `json:"date" validate:"omitempty,max=64"`
	Author      string `json:"author" validate:"omitempty,max=200"`
}

type EditEntryRequest struct {
	content.EntryPatch
}

type ReorderEntryRequest struct {
	NewIndex int `json:"new_index" validate:"min=0"`
}

// ListMutationResponse reports the list after a mutation. Notice is set
// when an Add hit the tier cap and nothing changed.
type ListMutationResponse struct {
	Kind    string          `json:"kind"`
	Entries []content.Entry `json:"entries"`
	Notice  string          `json:"notice,omitempty"`
}
