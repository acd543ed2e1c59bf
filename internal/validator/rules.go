package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"iconsherald/internal/models"
)

// registerCustomRules installs the enum validation tags backed by the
// status types in internal/models. Empty values pass; 'required' owns
// presence checks.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration; do not run half-validated.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-tier", validateTier)
	mustRegister("is-nomination-status", validateNominationStatus)
	mustRegister("is-profile-status", validateProfileStatus)
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-user-status", validateUserStatus)
}

func validateTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Tier(value).Valid()
}

func validateNominationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.NominationStatus(value) {
	case models.NominationStatusPending, models.NominationStatusApproved,
		models.NominationStatusRejected, models.NominationStatusFlagged:
		return true
	default:
		return false
	}
}

func validateProfileStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProfileStatus(value) {
	case models.ProfileStatusDraft, models.ProfileStatusPublished, models.ProfileStatusArchived:
		return true
	default:
		return false
	}
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleVisitor, models.UserRoleApplicant, models.UserRoleMember,
		models.UserRoleAdmin, models.UserRoleSuperAdmin:
		return true
	default:
		return false
	}
}

func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserStatus(value) {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned:
		return true
	default:
		return false
	}
}
