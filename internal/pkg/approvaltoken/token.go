// Package approvaltoken issues and verifies the signed links a manager uses
// to decide a trip. One token id is shared by the approve, approve_solo and
// reject links of a trip, so using any of them spends all three.
package approvaltoken

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/constants"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// usedMarkerGrace keeps the used marker around a little past expiry so a
// late click still reports reuse rather than expiry.
const usedMarkerGrace = time.Hour

// Claims are the verified contents of an approval link
type Claims struct {
	TokenID   string
	TripID    uuid.UUID
	Action    string
	ExpiresAt time.Time
}

// Issued is the set of links minted for one trip
type Issued struct {
	TokenID   string
	ExpiresAt time.Time
	// Tokens maps each manager action to its signed token
	Tokens map[string]string
}

type tokenClaims struct {
	TripID string `json:"trip_id"`
	Action string `json:"action"`
	jwt.RegisteredClaims
}

// Service signs approval tokens and tracks spent token ids in redis
type Service struct {
	secret  []byte
	issuer  string
	linkURL string
	redis   *database.RedisClient
	now     func() time.Time
}

// NewService creates a token service
func NewService(cfg models.ApprovalTokenConfig, redis *database.RedisClient) *Service {
	return &Service{
		secret:  []byte(cfg.Secret),
		issuer:  cfg.Issuer,
		linkURL: strings.TrimRight(cfg.LinkURL, "/"),
		redis:   redis,
		now:     time.Now,
	}
}

// Issue mints one token per manager action, all sharing a fresh token id
func (s *Service) Issue(tripID uuid.UUID, expiresAt time.Time) (Issued, error) {
	return s.Sign(tripID, uuid.NewString(), expiresAt)
}

// Sign mints the manager links for an existing token id. The links carry
// everything needed to rebuild them from the stored trip after commit.
func (s *Service) Sign(tripID uuid.UUID, tokenID string, expiresAt time.Time) (Issued, error) {
	issued := Issued{
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		Tokens:    make(map[string]string, len(approval.ManagerActions)),
	}

	for _, action := range approval.ManagerActions {
		claims := tokenClaims{
			TripID: tripID.String(),
			Action: action,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        tokenID,
				Issuer:    s.issuer,
				IssuedAt:  jwt.NewNumericDate(s.now()),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
		if err != nil {
			return Issued{}, fmt.Errorf("failed to sign approval token: %w", err)
		}
		issued.Tokens[action] = signed
	}

	return issued, nil
}

// Links maps each action of issued to its public URL
func (s *Service) Links(issued Issued) map[string]string {
	links := make(map[string]string, len(issued.Tokens))
	for action, token := range issued.Tokens {
		links[action] = s.Link(token)
	}
	return links
}

// Link returns the public URL for a token
func (s *Service) Link(token string) string {
	return s.linkURL + "/" + url.PathEscape(token)
}

// Verify checks signature, expiry and the used marker. It does not spend
// the token; call MarkUsed once the decision is committed.
func (s *Service) Verify(ctx context.Context, token string) (Claims, error) {
	var tc tokenClaims
	parser := jwt.Parser{
		ValidMethods: []string{jwt.SigningMethodHS256.Alg()},
	}
	_, err := parser.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors == jwt.ValidationErrorExpired {
			return Claims{}, apperror.TokenError{Kind: apperror.TokenExpired, Err: err}
		}
		return Claims{}, apperror.TokenError{Kind: apperror.TokenInvalid, Err: err}
	}

	claims, err := s.toClaims(tc)
	if err != nil {
		return Claims{}, apperror.TokenError{Kind: apperror.TokenInvalid, Err: err}
	}
	if claims.ExpiresAt.Before(s.now()) {
		return Claims{}, apperror.TokenError{Kind: apperror.TokenExpired}
	}

	used, err := s.redis.Exists(ctx, usedKey(claims.TokenID))
	if err != nil {
		return Claims{}, apperror.TransientError{Op: "check approval token", Err: err}
	}
	if used {
		return Claims{}, apperror.TokenError{Kind: apperror.TokenReused}
	}

	return claims, nil
}

func (s *Service) toClaims(tc tokenClaims) (Claims, error) {
	if s.issuer != "" && tc.Issuer != s.issuer {
		return Claims{}, errors.New("unexpected issuer")
	}
	if tc.ID == "" || tc.ExpiresAt == nil {
		return Claims{}, errors.New("missing jti or exp")
	}
	tripID, err := uuid.Parse(tc.TripID)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid trip_id: %w", err)
	}
	if _, ok := approval.ManagerEvent(tc.Action); !ok {
		return Claims{}, fmt.Errorf("unknown action %q", tc.Action)
	}
	return Claims{
		TokenID:   tc.ID,
		TripID:    tripID,
		Action:    tc.Action,
		ExpiresAt: tc.ExpiresAt.Time,
	}, nil
}

// MarkUsed records the token id as spent. A second call for the same id
// returns a reused TokenError.
func (s *Service) MarkUsed(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now()) + usedMarkerGrace
	if ttl < usedMarkerGrace {
		ttl = usedMarkerGrace
	}

	set, err := s.redis.SetNX(ctx, usedKey(tokenID), s.now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return apperror.TransientError{Op: "mark approval token used", Err: err}
	}
	if !set {
		return apperror.TokenError{Kind: apperror.TokenReused}
	}
	return nil
}

func usedKey(tokenID string) string {
	return fmt.Sprintf(constants.KeyApprovalTokenUsed, tokenID)
}
