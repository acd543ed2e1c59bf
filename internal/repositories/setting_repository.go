package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"iconsherald/internal/models"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingRepository interface {
	FindAll() ([]models.SystemSetting, error)
	Upsert(key, value string) error
}

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) FindAll() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepositoryImpl) Upsert(key, value string) error {
	var existing models.SystemSetting
	err := r.db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.SystemSetting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"value":      value,
		"updated_at": time.Now(),
	}).Error
}
