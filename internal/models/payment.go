package models

import "time"

// Payment is one payment attempt tied to a profile and tier. Rows are
// created when publish is attempted and updated by the gateway callback.
type Payment struct {
	BaseModel
	ProfileID string  `gorm:"type:uuid;not null;index" json:"profile_id"`
	Tier      Tier    `gorm:"type:varchar(20);not null" json:"tier"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Currency  string  `gorm:"type:varchar(8);not null" json:"currency"`

	// OrderID is the identifier handed to the gateway; its callbacks
	// reference it.
	OrderID          string        `gorm:"uniqueIndex;not null" json:"order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	GatewaySignature string        `json:"-"`
	Status           PaymentStatus `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	FailureReason    string        `gorm:"type:text" json:"failure_reason,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`

	// Relations
	Profile *Profile `gorm:"foreignKey:ProfileID" json:"-"`
}
