package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"iconsherald/internal/models"
)

// Claims are the token payload the application trusts. Tokens are issued
// by the auth boundary (or by the impersonation grant below); the core
// takes Role at face value.
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`

	// Impersonation fields are set only on tokens minted through the
	// super-admin impersonation grant.
	ImpersonatedBy string `json:"impersonated_by,omitempty"`

	jwt.RegisteredClaims
}

// TokenIssuer signs and parses application tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Issue creates a token for the user.
func (t *TokenIssuer) Issue(userID string, role models.UserRole) (string, error) {
	return t.issue(Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// IssueImpersonation creates a short-lived token acting as the target
// user, recording the issuing super admin. The grant is a value inside
// the token, threaded into request context by the middleware; there is no
// ambient impersonation state anywhere.
func (t *TokenIssuer) IssueImpersonation(adminID, targetID string, targetRole models.UserRole) (string, error) {
	ttl := t.ttl
	if ttl > 30*time.Minute {
		ttl = 30 * time.Minute
	}
	return t.issue(Claims{
		UserID:         targetID,
		Role:           targetRole,
		ImpersonatedBy: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

func (t *TokenIssuer) issue(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates the token signature and expiry and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// ImpersonationGrant is the explicit session value placed into request
// context when a token carries an impersonation claim.
type ImpersonationGrant struct {
	AdminID   string
	TargetID  string
	ExpiresAt time.Time
}

// Expired checks the grant's expiry against now.
func (g ImpersonationGrant) Expired(now time.Time) bool {
	return !g.ExpiresAt.IsZero() && now.After(g.ExpiresAt)
}
