package services

import (
	"encoding/json"

	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
	"iconsherald/internal/services/dto"
	"iconsherald/pkg/apperrors"
)

// AnalyticsService is the read surface over the event log plus the
// system settings screen. Both are super-admin only.
type AnalyticsService interface {
	ListEvents(req *dto.AuditListRequest) (*dto.AuditListResponse, error)
	ListSettings() ([]*dto.SettingResponse, error)
	UpdateSetting(req *dto.UpdateSettingRequest) error
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	settingRepo   repositories.SettingRepository
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	settingRepo repositories.SettingRepository,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		settingRepo:   settingRepo,
	}
}

func (s *analyticsService) ListEvents(req *dto.AuditListRequest) (*dto.AuditListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	events, total, err := s.analyticsRepo.FindRecent(req.EventType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.AuditEventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, buildAuditEventResponse(&events[i]))
	}

	return &dto.AuditListResponse{
		Events:     responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

func (s *analyticsService) ListSettings() ([]*dto.SettingResponse, error) {
	settings, err := s.settingRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, &dto.SettingResponse{Key: setting.Key, Value: setting.Value})
	}
	return responses, nil
}

func (s *analyticsService) UpdateSetting(req *dto.UpdateSettingRequest) error {
	if err := s.settingRepo.Upsert(req.Key, req.Value); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildAuditEventResponse(e *models.AnalyticsEvent) *dto.AuditEventResponse {
	var metadata map[string]interface{}
	if len(e.Metadata) > 0 {
		_ = json.Unmarshal(e.Metadata, &metadata)
	}
	return &dto.AuditEventResponse{
		ID:        e.ID,
		EventType: e.EventType,
		ProfileID: e.ProfileID,
		UserID:    e.UserID,
		Metadata:  metadata,
		CreatedAt: e.CreatedAt,
	}
}
