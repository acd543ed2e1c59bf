package payments

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconsherald/internal/models"
)

func testGateway() *Gateway {
	return &Gateway{
		MerchantLogin: "iconsherald",
		Password1:     "pw1",
		Password2:     "pw2",
		BaseURL:       "https://gateway.example.com/pay",
		Currency:      "USD",
	}
}

func TestPaymentURL(t *testing.T) {
	g := testGateway()

	link := g.PaymentURL("order-42", 249, "Elite profile publication", "amara@example.com")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "gateway.example.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "iconsherald", q.Get("MrchLogin"))
	assert.Equal(t, "249.00", q.Get("OutSum"))
	assert.Equal(t, "order-42", q.Get("InvId"))
	assert.Equal(t, "amara@example.com", q.Get("Email"))
	assert.Equal(t, "USD", q.Get("IncCurrLabel"))

	// Signature is MD5 over login:amount:order:password1, upper hex.
	plain := fmt.Sprintf("%s:%.2f:%s:%s", "iconsherald", 249.0, "order-42", "pw1")
	sum := md5.Sum([]byte(plain))
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(sum[:])), q.Get("SignatureValue"))
}

func TestVerifyCallbackSignature(t *testing.T) {
	g := testGateway()

	plain := fmt.Sprintf("%.2f:%s:%s", 249.0, "order-42", "pw2")
	sum := md5.Sum([]byte(plain))
	sig := hex.EncodeToString(sum[:])

	assert.True(t, g.VerifyCallbackSignature(249, "order-42", strings.ToUpper(sig)))
	// Case-insensitive compare.
	assert.True(t, g.VerifyCallbackSignature(249, "order-42", sig))

	assert.False(t, g.VerifyCallbackSignature(249, "order-42", "WRONG"))
	assert.False(t, g.VerifyCallbackSignature(250, "order-42", strings.ToUpper(sig)))
	assert.False(t, g.VerifyCallbackSignature(249, "order-43", strings.ToUpper(sig)))
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		in    string
		want  models.PaymentStatus
		known bool
	}{
		{"created", models.PaymentStatusCreated, true},
		{"pending", models.PaymentStatusCreated, true},
		{"hold", models.PaymentStatusAuthorized, true},
		{"PAID", models.PaymentStatusCaptured, true},
		{"success", models.PaymentStatusCaptured, true},
		{"refunded", models.PaymentStatusRefunded, true},
		{"declined", models.PaymentStatusFailed, true},
		{"expired", models.PaymentStatusFailed, true},
		{"quantum", models.PaymentStatusFailed, false},
	}

	for _, tc := range cases {
		got, known := MapStatus(tc.in)
		assert.Equal(t, tc.want, got, "status %q", tc.in)
		assert.Equal(t, tc.known, known, "status %q", tc.in)
	}
}
