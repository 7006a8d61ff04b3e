package services

import (
	"pawsitter/config"
	"pawsitter/internal/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies the bearer tokens gating every
// authenticated operation. Tokens are HS256 JWTs whose subject is the user id.
type TokenService struct {
	secret []byte
	expiry time.Duration
	log    logger.Logger
}

func NewTokenService(config config.Config) *TokenService {
	return &TokenService{
		secret: []byte(config.JWTSecret),
		expiry: time.Duration(config.JWTExpiryHours) * time.Hour,
		log:    logger.New("tokenService"),
	}
}

func (s *TokenService) Generate(userID uuid.UUID) (string, error) {
	log := s.log.Function("Generate")

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign token", err, "userID", userID)
	}

	return signed, nil
}

// Verify parses and validates a token and returns the user id it was issued
// for. Any malformed, expired, or forged token is rejected.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	log := s.log.Function("Verify")

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, log.Err("token subject is not a user id", err, "subject", claims.Subject)
	}

	return userID, nil
}
