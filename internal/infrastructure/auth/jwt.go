package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing user_id in claims")
)

// Claims represents the claims carried by access tokens minted by the
// identity service. Pricing only consumes them.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
}

// TokenValidator verifies access tokens issued by the identity service.
// This service never mints tokens itself.
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a token validator from JWT configuration
func NewTokenValidator(cfg config.JWTConfig) *TokenValidator {
	return &TokenValidator{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// ValidateAccessToken validates an access token and returns its claims
func (v *TokenValidator) ValidateAccessToken(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// Actor converts validated claims into the actor attached to mutations
// and audit entries.
func (c *Claims) Actor() (pricing.Actor, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return pricing.Actor{}, ErrInvalidClaims
	}
	return pricing.Actor{
		UserID: userID,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
	}, nil
}
