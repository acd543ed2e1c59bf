package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"iconsherald/internal/logger"
	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
)

// trackEvent appends an analytics event. Recording is best-effort: a
// failed append is logged and swallowed, never surfaced to the caller.
func trackEvent(repo repositories.AnalyticsRepository, eventType string, profileID, userID *string, metadata map[string]interface{}) {
	var raw datatypes.JSON
	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			raw = datatypes.JSON(data)
		}
	}
	event := &models.AnalyticsEvent{
		EventType: eventType,
		ProfileID: profileID,
		UserID:    userID,
		Metadata:  raw,
	}
	if err := repo.Append(event); err != nil {
		logger.WithError(err).Warn("failed to append analytics event", "event_type", eventType)
	}
}

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func calculateTotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
