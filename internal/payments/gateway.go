// Package payments talks to the external payment gateway. The wire
// contract is MD5-signed form parameters: we sign outgoing payment links
// with password1 and verify callback signatures with password2. The
// gateway's status vocabulary is mapped into the application's
// created/authorized/captured/refunded/failed set here and nowhere else.
package payments

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"iconsherald/internal/config"
	"iconsherald/internal/models"
)

type Gateway struct {
	MerchantLogin string
	Password1     string
	Password2     string
	BaseURL       string
	Currency      string
}

func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		MerchantLogin: cfg.Payment.MerchantLogin,
		Password1:     cfg.Payment.Password1,
		Password2:     cfg.Payment.Password2,
		BaseURL:       cfg.Payment.BaseURL,
		Currency:      cfg.Payment.Currency,
	}
}

// PaymentURL builds the signed checkout link the member is redirected to.
func (g *Gateway) PaymentURL(orderID string, amount float64, description, email string) string {
	signature := g.requestSignature(orderID, amount)
	params := url.Values{}

	params.Set("MrchLogin", g.MerchantLogin)
	params.Set("OutSum", fmt.Sprintf("%.2f", amount))
	params.Set("InvId", orderID)
	params.Set("Desc", description)
	params.Set("SignatureValue", signature)
	params.Set("Email", email)
	params.Set("IncCurrLabel", g.Currency)

	return fmt.Sprintf("%s?%s", g.BaseURL, params.Encode())
}

func (g *Gateway) requestSignature(orderID string, amount float64) string {
	plain := fmt.Sprintf("%s:%.2f:%s:%s", g.MerchantLogin, amount, orderID, g.Password1)
	hash := md5.Sum([]byte(plain))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// VerifyCallbackSignature checks a webhook's signature against password2.
func (g *Gateway) VerifyCallbackSignature(amount float64, orderID, receivedSig string) bool {
	plain := fmt.Sprintf("%.2f:%s:%s", amount, orderID, g.Password2)
	hash := md5.Sum([]byte(plain))
	expectedSig := strings.ToUpper(hex.EncodeToString(hash[:]))
	return strings.EqualFold(expectedSig, receivedSig)
}

// MapStatus translates a gateway status string into the application's
// payment vocabulary. Unknown statuses map to failed with the raw value
// preserved as the reason.
func MapStatus(gatewayStatus string) (models.PaymentStatus, bool) {
	switch strings.ToLower(gatewayStatus) {
	case "created", "pending":
		return models.PaymentStatusCreated, true
	case "authorized", "hold":
		return models.PaymentStatusAuthorized, true
	case "captured", "paid", "success", "completed":
		return models.PaymentStatusCaptured, true
	case "refunded", "reversed":
		return models.PaymentStatusRefunded, true
	case "failed", "declined", "cancelled", "expired":
		return models.PaymentStatusFailed, true
	default:
		return models.PaymentStatusFailed, false
	}
}
