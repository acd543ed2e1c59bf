package models

type UserRole string
type UserStatus string
type NominationStatus string
type ProfileStatus string
type ProfilePaymentStatus string
type PaymentStatus string

const (
	UserRoleVisitor    UserRole = "visitor"
	UserRoleApplicant  UserRole = "applicant"
	UserRoleMember     UserRole = "member"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	NominationStatusPending  NominationStatus = "pending"
	NominationStatusApproved NominationStatus = "approved"
	NominationStatusRejected NominationStatus = "rejected"
	NominationStatusFlagged  NominationStatus = "flagged"

	ProfileStatusDraft     ProfileStatus = "draft"
	ProfileStatusPublished ProfileStatus = "published"
	ProfileStatusArchived  ProfileStatus = "archived"

	ProfilePaymentPending   ProfilePaymentStatus = "pending"
	ProfilePaymentCompleted ProfilePaymentStatus = "completed"
	ProfilePaymentFailed    ProfilePaymentStatus = "failed"

	// Payment rows track the gateway lifecycle.
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// IsTerminal reports whether a nomination can no longer be reviewed.
// Flagged nominations return to the queue; approved and rejected do not.
func (s NominationStatus) IsTerminal() bool {
	return s == NominationStatusApproved || s == NominationStatusRejected
}

// IsStaff reports whether the role may access admin screens.
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}
