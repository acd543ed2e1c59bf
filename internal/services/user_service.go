package services

import (
	"time"

	"iconsherald/internal/auth"
	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
	"iconsherald/internal/services/dto"
	"iconsherald/pkg/apperrors"
)

type UserService interface {
	GetUser(id string) (*dto.UserResponse, error)
	ListUsers(req *dto.UserListRequest) (*dto.UserListResponse, error)
	UpdateStatus(actorID, targetID string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error)
	UpdateRole(actorID string, actorRole models.UserRole, targetID string, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error)

	// Impersonate mints a short-lived token acting as the target user.
	// Super admin only; the grant lives inside the token, never in
	// server state.
	Impersonate(adminID, targetID string) (*dto.ImpersonationResponse, error)
}

type userService struct {
	userRepo      repositories.UserRepository
	analyticsRepo repositories.AnalyticsRepository
	tokens        *auth.TokenIssuer
}

func NewUserService(
	userRepo repositories.UserRepository,
	analyticsRepo repositories.AnalyticsRepository,
	tokens *auth.TokenIssuer,
) UserService {
	return &userService{
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		tokens:        tokens,
	}
}

func (s *userService) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) ListUsers(req *dto.UserListRequest) (*dto.UserListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(req.Role),
		Status:   models.UserStatus(req.Status),
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

func (s *userService) UpdateStatus(actorID, targetID string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	if actorID == targetID {
		return nil, apperrors.ErrCannotModifySelf
	}
	if _, err := s.mustFind(targetID); err != nil {
		return nil, err
	}

	status := models.UserStatus(req.Status)
	if err := s.userRepo.UpdateStatus(targetID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventUserStatusChanged, nil, &targetID, map[string]interface{}{
		"actor_id": actorID,
		"status":   req.Status,
	})

	return s.GetUser(targetID)
}

// UpdateRole changes a user's role. Promotions into staff roles are
// restricted to super admins.
func (s *userService) UpdateRole(actorID string, actorRole models.UserRole, targetID string, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	if actorID == targetID {
		return nil, apperrors.ErrCannotModifySelf
	}

	newRole := models.UserRole(req.Role)
	if newRole.IsStaff() && actorRole != models.UserRoleSuperAdmin {
		return nil, apperrors.ErrAccessRestricted
	}

	target, err := s.mustFind(targetID)
	if err != nil {
		return nil, err
	}
	// Demoting another staff member is also a super-admin action.
	if target.Role.IsStaff() && actorRole != models.UserRoleSuperAdmin {
		return nil, apperrors.ErrAccessRestricted
	}

	if err := s.userRepo.UpdateRole(targetID, newRole); err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventUserRoleChanged, nil, &targetID, map[string]interface{}{
		"actor_id": actorID,
		"role":     req.Role,
	})

	return s.GetUser(targetID)
}

func (s *userService) Impersonate(adminID, targetID string) (*dto.ImpersonationResponse, error) {
	if adminID == targetID {
		return nil, apperrors.ErrCannotModifySelf
	}

	target, err := s.mustFind(targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == models.UserRoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("Super admin accounts cannot be impersonated")
	}
	if target.Status != models.UserStatusActive {
		return nil, apperrors.ErrInvalidStatus("user", "Only active accounts can be impersonated")
	}

	token, err := s.tokens.IssueImpersonation(adminID, targetID, target.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	trackEvent(s.analyticsRepo, models.EventImpersonationIssued, nil, &targetID, map[string]interface{}{
		"admin_id": adminID,
	})

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expiresAt := time.Now().Add(30 * time.Minute)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &dto.ImpersonationResponse{
		Token:     token,
		TargetID:  targetID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *userService) mustFind(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func buildUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
