package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"iconsherald/internal/models"
)

var ErrNominationNotFound = errors.New("nomination not found")

// NominationFilter drives the admin review list. Search matches nominee
// and nominator name/email plus the pitch text.
type NominationFilter struct {
	Status   models.NominationStatus
	Tier     models.Tier
	Search   string
	SortBy   string // "date" (default) or "name"
	SortDesc bool
	Page     int
	PageSize int
}

// ReviewOutcome is the mutation applied by approve/reject/flag.
type ReviewOutcome struct {
	Status       models.NominationStatus
	AssignedTier *models.Tier
	AdminNotes   string
	FlagReason   string
	ReviewerID   string
}

type NominationRepository interface {
	Create(nomination *models.Nomination) error
	FindByID(id string) (*models.Nomination, error)
	FindWithFilter(criteria NominationFilter) ([]models.Nomination, int64, error)
	FindLatestApprovedByNomineeEmail(email string) (*models.Nomination, error)
	ApplyReview(id string, outcome ReviewOutcome) error
	CountByStatus(status models.NominationStatus) (int64, error)
}

type NominationRepositoryImpl struct {
	db *gorm.DB
}

func NewNominationRepository(db *gorm.DB) NominationRepository {
	return &NominationRepositoryImpl{db: db}
}

func (r *NominationRepositoryImpl) Create(nomination *models.Nomination) error {
	return r.db.Create(nomination).Error
}

func (r *NominationRepositoryImpl) FindByID(id string) (*models.Nomination, error) {
	var nomination models.Nomination
	err := r.db.First(&nomination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNominationNotFound
		}
		return nil, err
	}
	return &nomination, nil
}

func (r *NominationRepositoryImpl) FindWithFilter(criteria NominationFilter) ([]models.Nomination, int64, error) {
	var nominations []models.Nomination
	query := r.db.Model(&models.Nomination{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Tier != "" {
		query = query.Where("desired_tier = ? OR assigned_tier = ?", criteria.Tier, criteria.Tier)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where(
			"nominee_name ILIKE ? OR nominee_email ILIKE ? OR nominator_name ILIKE ? OR nominator_email ILIKE ? OR pitch ILIKE ?",
			search, search, search, search, search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at"
	if criteria.SortBy == "name" {
		order = "nominee_name"
	}
	if criteria.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order(order).Limit(limit).Offset(offset).Find(&nominations).Error
	return nominations, total, err
}

// FindLatestApprovedByNomineeEmail returns the most recent approved
// nomination for a nominee. The assigned tier on that row decides the
// tier of the profile the member may build.
func (r *NominationRepositoryImpl) FindLatestApprovedByNomineeEmail(email string) (*models.Nomination, error) {
	var nomination models.Nomination
	err := r.db.
		Where("nominee_email = ? AND status = ?", email, models.NominationStatusApproved).
		Order("reviewed_at DESC").
		First(&nomination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNominationNotFound
		}
		return nil, err
	}
	return &nomination, nil
}

// ApplyReview records the review outcome together with reviewer identity
// and timestamp in a single update.
func (r *NominationRepositoryImpl) ApplyReview(id string, outcome ReviewOutcome) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      outcome.Status,
		"reviewer_id": outcome.ReviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}
	if outcome.AssignedTier != nil {
		updates["assigned_tier"] = *outcome.AssignedTier
	}
	if outcome.AdminNotes != "" {
		updates["admin_notes"] = outcome.AdminNotes
	}
	if outcome.FlagReason != "" {
		updates["flag_reason"] = outcome.FlagReason
	}

	result := r.db.Model(&models.Nomination{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNominationNotFound
	}
	return nil
}

func (r *NominationRepositoryImpl) CountByStatus(status models.NominationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Nomination{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
