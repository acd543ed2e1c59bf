package repositories

import (
	"gorm.io/gorm"

	"iconsherald/internal/models"
)

// AnalyticsRepository is append-mostly: the core writes events; the only
// read surface is the super-admin audit screen.
type AnalyticsRepository interface {
	Append(event *models.AnalyticsEvent) error
	FindRecent(eventType string, limit, offset int) ([]models.AnalyticsEvent, int64, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) Append(event *models.AnalyticsEvent) error {
	return r.db.Create(event).Error
}

func (r *AnalyticsRepositoryImpl) FindRecent(eventType string, limit, offset int) ([]models.AnalyticsEvent, int64, error) {
	var events []models.AnalyticsEvent
	query := r.db.Model(&models.AnalyticsEvent{})

	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
