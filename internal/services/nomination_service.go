package services

import (
	"iconsherald/internal/auth"
	"iconsherald/internal/email"
	"iconsherald/internal/logger"
	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
	"iconsherald/internal/services/dto"
	"iconsherald/pkg/apperrors"
)

// submitReceivedMessage is returned for every accepted submission,
// including honeypot drops, so the two cases are indistinguishable to the
// caller.
const submitReceivedMessage = "Thank you. Your nomination has been received and will be reviewed by our editorial board."

type NominationService interface {
	Submit(req *dto.SubmitNominationRequest) (*dto.SubmitNominationResponse, error)
	GetNomination(id string) (*dto.NominationResponse, error)
	ListNominations(req *dto.NominationListRequest) (*dto.NominationListResponse, error)
	Approve(reviewerID, nominationID string, req *dto.ApproveNominationRequest) (*dto.NominationResponse, error)
	Reject(reviewerID, nominationID string, req *dto.RejectNominationRequest) (*dto.NominationResponse, error)
	Flag(reviewerID, nominationID string, req *dto.FlagNominationRequest) (*dto.NominationResponse, error)
	Bulk(reviewerID string, req *dto.BulkNominationRequest) (*dto.BulkNominationResponse, error)
	CountPending() (int64, error)
}

type nominationService struct {
	nominationRepo repositories.NominationRepository
	userRepo       repositories.UserRepository
	analyticsRepo  repositories.AnalyticsRepository
	emailSender    email.Sender
}

func NewNominationService(
	nominationRepo repositories.NominationRepository,
	userRepo repositories.UserRepository,
	analyticsRepo repositories.AnalyticsRepository,
	emailSender email.Sender,
) NominationService {
	return &nominationService{
		nominationRepo: nominationRepo,
		userRepo:       userRepo,
		analyticsRepo:  analyticsRepo,
		emailSender:    emailSender,
	}
}

// Submit records a public nomination. A filled honeypot field short-
// circuits into the same success response without touching storage.
func (s *nominationService) Submit(req *dto.SubmitNominationRequest) (*dto.SubmitNominationResponse, error) {
	if req.Website != "" {
		logger.Warn("nomination dropped by honeypot", "nominator_email", req.NominatorEmail)
		return &dto.SubmitNominationResponse{Message: submitReceivedMessage}, nil
	}

	nomination := &models.Nomination{
		NominatorName:  req.NominatorName,
		NominatorEmail: req.NominatorEmail,
		NomineeName:    req.NomineeName,
		NomineeEmail:   req.NomineeEmail,
		Pitch:          req.Pitch,
		DesiredTier:    models.Tier(req.DesiredTier),
		Status:         models.NominationStatusPending,
	}
	nomination.SetSupportingLinks(req.SupportingURLs)

	if err := s.nominationRepo.Create(nomination); err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventNominationSubmitted, nil, nil, map[string]interface{}{
		"nomination_id": nomination.ID,
		"desired_tier":  req.DesiredTier,
	})

	return &dto.SubmitNominationResponse{Message: submitReceivedMessage}, nil
}

func (s *nominationService) GetNomination(id string) (*dto.NominationResponse, error) {
	nomination, err := s.nominationRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNominationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildNominationResponse(nomination), nil
}

func (s *nominationService) ListNominations(req *dto.NominationListRequest) (*dto.NominationListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	criteria := repositories.NominationFilter{
		Status:   models.NominationStatus(req.Status),
		Tier:     models.Tier(req.Tier),
		Search:   req.Search,
		SortBy:   req.SortBy,
		SortDesc: req.SortDir != "asc",
		Page:     page,
		PageSize: pageSize,
	}

	nominations, total, err := s.nominationRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NominationResponse, 0, len(nominations))
	for i := range nominations {
		responses = append(responses, buildNominationResponse(&nominations[i]))
	}

	pending, err := s.CountPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NominationListResponse{
		Nominations: responses,
		Total:       total,
		Pending:     pending,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  calculateTotalPages(total, pageSize),
	}, nil
}

// Approve finalizes a nomination, creates (or upgrades) the nominee's
// member account and fires the invitation email in the background.
func (s *nominationService) Approve(reviewerID, nominationID string, req *dto.ApproveNominationRequest) (*dto.NominationResponse, error) {
	nomination, err := s.reviewable(nominationID)
	if err != nil {
		return nil, err
	}

	tier := models.Tier(req.AssignedTier)

	tempPassword := req.TempPassword
	if tempPassword == "" {
		tempPassword = auth.GenerateTempPassword()
	}

	user, err := s.ensureMemberAccount(nomination, tempPassword)
	if err != nil {
		return nil, err
	}

	outcome := repositories.ReviewOutcome{
		Status:       models.NominationStatusApproved,
		AssignedTier: &tier,
		AdminNotes:   req.AdminNotes,
		ReviewerID:   reviewerID,
	}
	if err := s.nominationRepo.ApplyReview(nominationID, outcome); err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventNominationApproved, nil, &user.ID, map[string]interface{}{
		"nomination_id": nominationID,
		"assigned_tier": req.AssignedTier,
		"reviewer_id":   reviewerID,
	})

	// Invitation delivery must never block or fail the approval.
	go func(to, name string, tier models.Tier, password string) {
		if err := s.emailSender.SendInvitation(to, name, tier, password); err != nil {
			logger.WithError(err).Error("failed to send invitation email", "to", to)
		}
	}(nomination.NomineeEmail, nomination.NomineeName, tier, tempPassword)

	return s.GetNomination(nominationID)
}

func (s *nominationService) Reject(reviewerID, nominationID string, req *dto.RejectNominationRequest) (*dto.NominationResponse, error) {
	if _, err := s.reviewable(nominationID); err != nil {
		return nil, err
	}

	outcome := repositories.ReviewOutcome{
		Status:     models.NominationStatusRejected,
		AdminNotes: req.AdminNotes,
		ReviewerID: reviewerID,
	}
	if err := s.nominationRepo.ApplyReview(nominationID, outcome); err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventNominationRejected, nil, nil, map[string]interface{}{
		"nomination_id": nominationID,
		"reviewer_id":   reviewerID,
	})

	return s.GetNomination(nominationID)
}

// Flag parks the nomination for a second opinion. Flagged is not
// terminal; it can still be approved or rejected later.
func (s *nominationService) Flag(reviewerID, nominationID string, req *dto.FlagNominationRequest) (*dto.NominationResponse, error) {
	if _, err := s.reviewable(nominationID); err != nil {
		return nil, err
	}

	outcome := repositories.ReviewOutcome{
		Status:     models.NominationStatusFlagged,
		FlagReason: req.Reason,
		ReviewerID: reviewerID,
	}
	if err := s.nominationRepo.ApplyReview(nominationID, outcome); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetNomination(nominationID)
}

// Bulk applies one action to a selection. Failures are per-item; one bad
// nomination never aborts the rest.
func (s *nominationService) Bulk(reviewerID string, req *dto.BulkNominationRequest) (*dto.BulkNominationResponse, error) {
	if req.Action == "approve" && req.AssignedTier == "" {
		return nil, apperrors.ErrInvalidOperation("nomination", "Bulk approval requires a default tier")
	}

	result := &dto.BulkNominationResponse{
		Succeeded: []string{},
		Failed:    map[string]string{},
	}

	for _, id := range req.IDs {
		var err error
		switch req.Action {
		case "approve":
			_, err = s.Approve(reviewerID, id, &dto.ApproveNominationRequest{
				AssignedTier: req.AssignedTier,
				AdminNotes:   req.AdminNotes,
			})
		case "reject":
			notes := req.AdminNotes
			if notes == "" {
				notes = "Rejected in bulk review"
			}
			_, err = s.Reject(reviewerID, id, &dto.RejectNominationRequest{AdminNotes: notes})
		case "flag":
			reason := req.Reason
			if reason == "" {
				reason = "Flagged in bulk review"
			}
			_, err = s.Flag(reviewerID, id, &dto.FlagNominationRequest{Reason: reason})
		}

		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}

func (s *nominationService) CountPending() (int64, error) {
	return s.nominationRepo.CountByStatus(models.NominationStatusPending)
}

// reviewable loads the nomination and refuses terminal states.
func (s *nominationService) reviewable(id string) (*models.Nomination, error) {
	nomination, err := s.nominationRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNominationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if nomination.Status.IsTerminal() {
		return nil, apperrors.ErrNominationFinalized
	}
	return nomination, nil
}

// ensureMemberAccount creates the nominee's account with role member and
// a temporary credential. An existing account is reused: its role is
// raised to member if below, its password left alone.
func (s *nominationService) ensureMemberAccount(nomination *models.Nomination, tempPassword string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(nomination.NomineeEmail)
	if err == nil {
		if !existing.Role.IsStaff() && existing.Role != models.UserRoleMember {
			if err := s.userRepo.UpdateRole(existing.ID, models.UserRoleMember); err != nil {
				return nil, apperrors.InternalError(err)
			}
			existing.Role = models.UserRoleMember
		}
		return existing, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:              nomination.NomineeEmail,
		Name:               nomination.NomineeName,
		PasswordHash:       hash,
		Role:               models.UserRoleMember,
		Status:             models.UserStatusActive,
		MustChangePassword: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return s.userRepo.FindByEmail(nomination.NomineeEmail)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func buildNominationResponse(n *models.Nomination) *dto.NominationResponse {
	return &dto.NominationResponse{
		ID:              n.ID,
		NominatorName:   n.NominatorName,
		NominatorEmail:  n.NominatorEmail,
		NomineeName:     n.NomineeName,
		NomineeEmail:    n.NomineeEmail,
		Pitch:           n.Pitch,
		DesiredTier:     n.DesiredTier,
		SupportingLinks: n.GetSupportingLinks(),
		Status:          string(n.Status),
		AssignedTier:    n.AssignedTier,
		AdminNotes:      n.AdminNotes,
		FlagReason:      n.FlagReason,
		ReviewerID:      n.ReviewerID,
		ReviewedAt:      n.ReviewedAt,
		CreatedAt:       n.CreatedAt,
	}
}
