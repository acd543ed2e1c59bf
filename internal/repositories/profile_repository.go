package repositories

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"iconsherald/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrSlugTaken            = errors.New("slug already taken")
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	FindByUserID(userID string) (*models.Profile, error)
	FindBySlug(slug string) (*models.Profile, error)
	SlugExists(slug string) (bool, error)
	UpdateContent(profileID string, content datatypes.JSON) error
	UpdateTheme(profileID string, theme datatypes.JSON) error
	MarkPublished(profileID string, publishedAt time.Time) error
	MarkPaymentFailed(profileID string) error
	IncrementViews(profileID string) error
	FindWithFilter(criteria ProfileFilter) ([]models.Profile, int64, error)
}

type ProfileFilter struct {
	Status   models.ProfileStatus
	Tier     models.Tier
	Page     int
	PageSize int
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	var existing models.Profile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	if err := r.db.Where("slug = ?", profile.Slug).First(&existing).Error; err == nil {
		return ErrSlugTaken
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindBySlug(slug string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepositoryImpl) UpdateContent(profileID string, content datatypes.JSON) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"content":    content,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateTheme(profileID string, theme datatypes.JSON) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"theme":      theme,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// MarkPublished flips the profile to published with a completed payment in
// one update, so a successful gateway callback is a single write.
func (r *ProfileRepositoryImpl) MarkPublished(profileID string, publishedAt time.Time) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"status":         models.ProfileStatusPublished,
		"payment_status": models.ProfilePaymentCompleted,
		"published_at":   publishedAt,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// MarkPaymentFailed records the failed payment status; the profile itself
// stays draft.
func (r *ProfileRepositoryImpl) MarkPaymentFailed(profileID string) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"payment_status": models.ProfilePaymentFailed,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) IncrementViews(profileID string) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", profileID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *ProfileRepositoryImpl) FindWithFilter(criteria ProfileFilter) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	query := r.db.Model(&models.Profile{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Tier != "" {
		query = query.Where("tier = ?", criteria.Tier)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}
