package dto

import (
	"time"

	"iconsherald/internal/models"
)

type UserListRequest struct {
	Role     string `form:"role" validate:"omitempty,is-user-role"`
	Status   string `form:"status" validate:"omitempty,is-user-status"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,is-user-status"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

type ImpersonationResponse struct {
	Token     string    `json:"token"`
	TargetID  string    `json:"target_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
