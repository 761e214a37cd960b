package jwtToken

import (
	"errors"
	"fmt"
	"time"

	"github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minSecretKeySize = 32

type claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTMaker is a JSON Web Token maker signing with HS256
type JWTMaker struct {
	secretKey []byte
}

// NewJWTMaker creates a new JWTMaker
func NewJWTMaker(secretKey string) (tokenAuth.Maker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minSecretKeySize)
	}
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

// CreateToken creates a new token for a specific user and duration
func (maker *JWTMaker) CreateToken(userID int64, email string, duration time.Duration) (string, error) {
	payload, err := tokenAuth.NewPayload(userID, email, duration)
	if err != nil {
		return "", err
	}

	c := claims{
		UserID: payload.UserID,
		Email:  payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        payload.ID.String(),
			IssuedAt:  jwt.NewNumericDate(payload.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(payload.ExpiredAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(maker.secretKey)
}

// VerifyToken checks if the token is valid or not
func (maker *JWTMaker) VerifyToken(token string) (*tokenAuth.Payload, error) {
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, tokenAuth.ErrInvalidToken
		}
		return maker.secretKey, nil
	}

	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, tokenAuth.ErrExpiredToken
		}
		return nil, tokenAuth.ErrInvalidToken
	}

	tokenID, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, tokenAuth.ErrInvalidToken
	}

	payload := &tokenAuth.Payload{
		ID:     tokenID,
		UserID: c.UserID,
		Email:  c.Email,
	}
	if c.IssuedAt != nil {
		payload.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		payload.ExpiredAt = c.ExpiresAt.Time
	}
	return payload, nil
}
