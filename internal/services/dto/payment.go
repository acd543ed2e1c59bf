package dto

import (
	"time"

	"iconsherald/internal/models"
)

type PublishResponse struct {
	PaymentID  string  `json:"payment_id"`
	OrderID    string  `json:"order_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	PaymentURL string  `json:"payment_url"`
}

// PaymentCallbackRequest is the gateway webhook payload.
type PaymentCallbackRequest struct {
	OrderID          string  `json:"order_id" form:"InvId" validate:"required"`
	Amount           float64 `json:"amount" form:"OutSum" validate:"required"`
	Status           string  `json:"status" form:"Status" validate:"required"`
	GatewayPaymentID string  `json:"gateway_payment_id" form:"PaymentId"`
	Signature        string  `json:"signature" form:"SignatureValue" validate:"required"`
	FailureReason    string  `json:"failure_reason" form:"FailureReason"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	ProfileID     string               `json:"profile_id"`
	Tier          models.Tier          `json:"tier"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	OrderID       string               `json:"order_id"`
	Status        models.PaymentStatus `json:"status"`
	FailureReason string               `json:"failure_reason,omitempty"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}
