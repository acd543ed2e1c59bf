package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
	"iconsherald/internal/payments"
	"iconsherald/internal/services/dto"
	"iconsherald/internal/tiers"
	"iconsherald/pkg/apperrors"
)

type paymentFixture struct {
	svc       PaymentService
	payments  *fakePaymentRepo
	profiles  *fakeProfileRepo
	users     *fakeUserRepo
	analytics *fakeAnalyticsRepo
	gateway   *payments.Gateway
}

func newPaymentFixture() *paymentFixture {
	paymentRepo := newFakePaymentRepo()
	profileRepo := newFakeProfileRepo()
	userRepo := newFakeUserRepo()
	analyticsRepo := newFakeAnalyticsRepo()
	gateway := &payments.Gateway{
		MerchantLogin: "iconsherald",
		Password1:     "pw1",
		Password2:     "pw2",
		BaseURL:       "https://gateway.example.com/pay",
		Currency:      "USD",
	}
	return &paymentFixture{
		svc:       NewPaymentService(paymentRepo, profileRepo, userRepo, analyticsRepo, gateway),
		payments:  paymentRepo,
		profiles:  profileRepo,
		users:     userRepo,
		analytics: analyticsRepo,
		gateway:   gateway,
	}
}

// seedCompleteDraft creates a member with a draft that clears the
// completion threshold for the rising tier.
func (f *paymentFixture) seedCompleteDraft(t *testing.T) (userID, profileID string) {
	t.Helper()

	user := &models.User{
		Email:        "amara@example.com",
		Name:         "Amara Okafor",
		PasswordHash: "x",
		Role:         models.UserRoleMember,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, f.users.Create(user))

	doc := &content.Document{
		BasicInfo: content.BasicInfo{
			Name:     "Amara Okafor",
			Headline: "Architect",
			Bio:      "A pioneer in sustainable architecture.",
			PhotoURL: "https://example.com/amara.jpg",
			Location: "Lagos",
		},
		Achievements: []content.Entry{{ID: "a1", IsVisible: true, Title: "Aga Khan Award"}},
		Links:        []content.Entry{{ID: "l1", IsVisible: true, Title: "Site", URL: "https://example.com"}},
		Milestones:   []content.Entry{{ID: "m1", IsVisible: true, Title: "First practice"}},
	}
	raw, err := doc.Encode()
	require.NoError(t, err)

	profile := &models.Profile{
		UserID:        user.ID,
		Tier:          models.TierRising,
		Status:        models.ProfileStatusDraft,
		Slug:          "amara-okafor",
		Content:       raw,
		PaymentStatus: models.ProfilePaymentPending,
	}
	require.NoError(t, f.profiles.Create(profile))

	return user.ID, profile.ID
}

func callbackSignature(amount float64, orderID, password2 string) string {
	plain := fmt.Sprintf("%.2f:%s:%s", amount, orderID, password2)
	hash := md5.Sum([]byte(plain))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

func TestPublishCreatesPayment(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	resp, err := f.svc.Publish(userID)
	require.NoError(t, err)

	price := tiers.PriceFor(models.TierRising)
	assert.Equal(t, price.Amount, resp.Amount)
	assert.Equal(t, price.Currency, resp.Currency)
	assert.NotEmpty(t, resp.OrderID)
	assert.Contains(t, resp.PaymentURL, "https://gateway.example.com/pay?")
	assert.Contains(t, resp.PaymentURL, "InvId="+resp.OrderID)

	payment, err := f.payments.FindByOrderID(resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, profileID, payment.ProfileID)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)
}

func TestPublishBelowThreshold(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	// Hollow out the draft so it no longer clears the gate.
	doc := &content.Document{BasicInfo: content.BasicInfo{Name: "Amara Okafor"}}
	raw, err := doc.Encode()
	require.NoError(t, err)
	require.NoError(t, f.profiles.UpdateContent(profileID, raw))

	_, err = f.svc.Publish(userID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, details["missing"])

	// No payment row exists below the gate.
	records, err := f.payments.FindByProfileID(profileID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCallbackPublishesProfile(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	published, err := f.svc.Publish(userID)
	require.NoError(t, err)

	err = f.svc.HandleCallback(&dto.PaymentCallbackRequest{
		OrderID:          published.OrderID,
		Amount:           published.Amount,
		Status:           "paid",
		GatewayPaymentID: "gw-123",
		Signature:        callbackSignature(published.Amount, published.OrderID, "pw2"),
	})
	require.NoError(t, err)

	profile, err := f.profiles.FindByID(profileID)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileStatusPublished, profile.Status)
	assert.Equal(t, models.ProfilePaymentCompleted, profile.PaymentStatus)
	assert.NotNil(t, profile.PublishedAt)

	payment, err := f.payments.FindByOrderID(published.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCaptured, payment.Status)
	assert.Equal(t, "gw-123", payment.GatewayPaymentID)
	assert.NotNil(t, payment.PaidAt)

	assert.Contains(t, f.analytics.eventTypes(), models.EventProfilePublished)
}

func TestCallbackBadSignature(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	published, err := f.svc.Publish(userID)
	require.NoError(t, err)

	err = f.svc.HandleCallback(&dto.PaymentCallbackRequest{
		OrderID:   published.OrderID,
		Amount:    published.Amount,
		Status:    "paid",
		Signature: "DEADBEEF",
	})
	assert.ErrorIs(t, err, apperrors.ErrGatewaySignature)

	profile, err := f.profiles.FindByID(profileID)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileStatusDraft, profile.Status)
}

func TestCallbackAmountMismatch(t *testing.T) {
	f := newPaymentFixture()
	userID, _ := f.seedCompleteDraft(t)

	published, err := f.svc.Publish(userID)
	require.NoError(t, err)

	wrong := published.Amount + 1
	err = f.svc.HandleCallback(&dto.PaymentCallbackRequest{
		OrderID:   published.OrderID,
		Amount:    wrong,
		Status:    "paid",
		Signature: callbackSignature(wrong, published.OrderID, "pw2"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)
}

func TestCallbackFailureKeepsDraft(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	published, err := f.svc.Publish(userID)
	require.NoError(t, err)

	err = f.svc.HandleCallback(&dto.PaymentCallbackRequest{
		OrderID:       published.OrderID,
		Amount:        published.Amount,
		Status:        "declined",
		FailureReason: "insufficient funds",
		Signature:     callbackSignature(published.Amount, published.OrderID, "pw2"),
	})
	require.NoError(t, err)

	profile, err := f.profiles.FindByID(profileID)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileStatusDraft, profile.Status)
	assert.Equal(t, models.ProfilePaymentFailed, profile.PaymentStatus)

	payment, err := f.payments.FindByOrderID(published.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Equal(t, "insufficient funds", payment.FailureReason)
}

func TestCallbackIdempotentAfterCapture(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	published, err := f.svc.Publish(userID)
	require.NoError(t, err)

	callback := &dto.PaymentCallbackRequest{
		OrderID:   published.OrderID,
		Amount:    published.Amount,
		Status:    "paid",
		Signature: callbackSignature(published.Amount, published.OrderID, "pw2"),
	}
	require.NoError(t, f.svc.HandleCallback(callback))

	profile, err := f.profiles.FindByID(profileID)
	require.NoError(t, err)
	firstPublishedAt := profile.PublishedAt
	require.NotNil(t, firstPublishedAt)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, f.svc.HandleCallback(callback))

	profile, err = f.profiles.FindByID(profileID)
	require.NoError(t, err)
	assert.Equal(t, *firstPublishedAt, *profile.PublishedAt)
}

func TestPublishAlreadyPublished(t *testing.T) {
	f := newPaymentFixture()
	userID, profileID := f.seedCompleteDraft(t)

	require.NoError(t, f.profiles.MarkPublished(profileID, time.Now()))

	_, err := f.svc.Publish(userID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}
