package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// Claims is the bearer identity token payload
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an identity token for the caller
func GenerateToken(identity models.Identity, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID: identity.UserID.String(),
		Email:  identity.Email,
		Name:   identity.Name,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt.Unix(), nil
}

// ValidateToken verifies signature, expiry and issuer and returns the caller
func ValidateToken(tokenString string, cfg models.JWTConfig) (models.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return models.Identity{}, err
	}
	if !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return models.Identity{}, errors.New("invalid token issuer")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	if claims.Role == "" {
		return models.Identity{}, errors.New("missing role claim")
	}

	return models.Identity{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}, nil
}
