package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"iconsherald/internal/content"
	"iconsherald/internal/logger"
	"iconsherald/internal/models"
	"iconsherald/internal/payments"
	"iconsherald/internal/repositories"
	"iconsherald/internal/services/dto"
	"iconsherald/internal/tiers"
	"iconsherald/pkg/apperrors"
)

type PaymentService interface {
	// Publish gates the draft on completion, creates the payment row and
	// returns the signed checkout link.
	Publish(userID string) (*dto.PublishResponse, error)

	// HandleCallback processes a gateway webhook. It is idempotent: a
	// repeated callback for a settled payment is a no-op.
	HandleCallback(req *dto.PaymentCallbackRequest) error

	GetPayment(id string) (*dto.PaymentResponse, error)
	ListProfilePayments(userID string) ([]*dto.PaymentResponse, error)
}

type paymentService struct {
	paymentRepo   repositories.PaymentRepository
	profileRepo   repositories.ProfileRepository
	userRepo      repositories.UserRepository
	analyticsRepo repositories.AnalyticsRepository
	gateway       *payments.Gateway
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	analyticsRepo repositories.AnalyticsRepository,
	gateway *payments.Gateway,
) PaymentService {
	return &paymentService{
		paymentRepo:   paymentRepo,
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		gateway:       gateway,
	}
}

func (s *paymentService) Publish(userID string) (*dto.PublishResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	switch profile.Status {
	case models.ProfileStatusArchived:
		return nil, apperrors.ErrProfileArchived
	case models.ProfileStatusPublished:
		return nil, apperrors.ErrInvalidStatus("profile", "Profile is already published")
	}

	doc, err := content.Parse(profile.Content)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !content.ReadyToPublish(doc, profile.Tier) {
		percent, missing := content.Completion(doc, profile.Tier)
		return nil, apperrors.ErrCompletionTooLow(map[string]interface{}{
			"completion": percent,
			"threshold":  content.PublishThreshold,
			"missing":    missing,
		})
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	price := tiers.PriceFor(profile.Tier)
	orderID := uuid.NewString()

	payment := &models.Payment{
		ProfileID: profile.ID,
		Tier:      profile.Tier,
		Amount:    price.Amount,
		Currency:  price.Currency,
		OrderID:   orderID,
		Status:    models.PaymentStatusCreated,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	description := fmt.Sprintf("Icons Herald %s profile publication", profile.Tier)
	checkoutURL := s.gateway.PaymentURL(orderID, price.Amount, description, user.Email)

	return &dto.PublishResponse{
		PaymentID:  payment.ID,
		OrderID:    orderID,
		Amount:     price.Amount,
		Currency:   price.Currency,
		PaymentURL: checkoutURL,
	}, nil
}

func (s *paymentService) HandleCallback(req *dto.PaymentCallbackRequest) error {
	if !s.gateway.VerifyCallbackSignature(req.Amount, req.OrderID, req.Signature) {
		logger.Warn("payment callback signature mismatch", "order_id", req.OrderID)
		return apperrors.ErrGatewaySignature
	}

	payment, err := s.paymentRepo.FindByOrderID(req.OrderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if payment.Amount != req.Amount {
		return apperrors.ErrInvalidPaymentAmount
	}

	// Settled payments ignore further callbacks.
	if payment.Status == models.PaymentStatusCaptured || payment.Status == models.PaymentStatusRefunded {
		return nil
	}

	status, known := payments.MapStatus(req.Status)
	failureReason := req.FailureReason
	if !known && failureReason == "" {
		failureReason = fmt.Sprintf("unrecognized gateway status %q", req.Status)
	}

	var paidAt *time.Time
	if status == models.PaymentStatusCaptured {
		now := time.Now()
		paidAt = &now
	}

	if err := s.paymentRepo.UpdateStatus(payment.ID, status, req.GatewayPaymentID, failureReason, paidAt); err != nil {
		return apperrors.InternalError(err)
	}

	switch status {
	case models.PaymentStatusCaptured:
		if err := s.profileRepo.MarkPublished(payment.ProfileID, *paidAt); err != nil {
			return apperrors.InternalError(err)
		}
		trackEvent(s.analyticsRepo, models.EventProfilePublished, &payment.ProfileID, nil, map[string]interface{}{
			"payment_id": payment.ID,
			"order_id":   payment.OrderID,
			"tier":       string(payment.Tier),
			"amount":     payment.Amount,
		})
		logger.Info("profile published", "profile_id", payment.ProfileID, "order_id", payment.OrderID)

	case models.PaymentStatusFailed:
		if err := s.profileRepo.MarkPaymentFailed(payment.ProfileID); err != nil {
			return apperrors.InternalError(err)
		}
		logger.Info("payment failed", "profile_id", payment.ProfileID, "order_id", payment.OrderID, "reason", failureReason)
	}

	return nil
}

func (s *paymentService) GetPayment(id string) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildPaymentResponse(payment), nil
}

// ListProfilePayments returns the member's own payment history.
func (s *paymentService) ListProfilePayments(userID string) ([]*dto.PaymentResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	records, err := s.paymentRepo.FindByProfileID(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PaymentResponse, 0, len(records))
	for i := range records {
		responses = append(responses, buildPaymentResponse(&records[i]))
	}
	return responses, nil
}

func buildPaymentResponse(p *models.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		ProfileID:     p.ProfileID,
		Tier:          p.Tier,
		Amount:        p.Amount,
		Currency:      p.Currency,
		OrderID:       p.OrderID,
		Status:        p.Status,
		FailureReason: p.FailureReason,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}
