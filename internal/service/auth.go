// Package service implements business logic on top of ports.
package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentfold/rentfold/internal/adapter/otel"
	"github.com/rentfold/rentfold/internal/config"
	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/owner"
	"github.com/rentfold/rentfold/internal/port/database"
)

const (
	tokenAudience = "rentfold"
	tokenIssuer   = "rentfold-api"
)

// ErrInvalidCredentials is returned for any credential failure. It is
// deliberately indistinguishable between unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication and access tokens.
type AuthService struct {
	store   database.Store
	cfg     *config.Auth
	secret  []byte
	metrics *otel.Metrics
}

// NewAuthService creates a new authentication service.
func NewAuthService(store database.Store, cfg *config.Auth, metrics *otel.Metrics) *AuthService {
	return &AuthService{
		store:   store,
		cfg:     cfg,
		secret:  []byte(cfg.TokenSecret),
		metrics: metrics,
	}
}

// Register creates a new owner with a bcrypt-hashed password. Owner
// creation is an administrative action; the admin gate lives at the HTTP
// and CLI entry points.
func (s *AuthService) Register(ctx context.Context, req *owner.CreateRequest) (*owner.Owner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	o := &owner.Owner{
		Email:        strings.ToLower(req.Email),
		Name:         req.Name,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	}

	if err := s.store.CreateOwner(ctx, o); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	return o, nil
}

// Login authenticates an owner and returns an access token.
func (s *AuthService) Login(ctx context.Context, req owner.LoginRequest) (*owner.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	o, err := s.store.GetOwnerByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(o)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.store.TouchLastLogin(ctx, o.ID); err != nil {
		slog.Warn("failed to record last login", "owner_id", o.ID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.Logins.Add(ctx, 1)
	}

	return &owner.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(s.cfg.AccessTokenExpiry.Seconds()),
		Owner:       *o,
	}, nil
}

// ResetPassword hashes and stores a new password for the owner.
func (s *AuthService) ResetPassword(ctx context.Context, ownerID int64, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.UpdateOwnerPassword(ctx, ownerID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Me returns the owner record behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, ownerID int64) (*owner.Owner, error) {
	return s.store.GetOwner(ctx, ownerID)
}

// ListOwners returns all owner accounts. Admin gated at the entry points.
func (s *AuthService) ListOwners(ctx context.Context) ([]owner.Owner, error) {
	return s.store.ListOwners(ctx)
}

// ValidateAccessToken verifies a token and returns its claims.
func (s *AuthService) ValidateAccessToken(tokenStr string) (*owner.TokenClaims, error) {
	return s.verifyToken(tokenStr)
}

// --- token implementation (HS256 with stdlib) ---

// tokenHeader is the fixed base64url-encoded header for HS256.
var tokenHeader = base64URLEncode([]byte(`{"alg":"HS256","typ":"JWT"}`))

func (s *AuthService) signToken(o *owner.Owner) (string, error) {
	now := time.Now()
	claims := owner.TokenClaims{
		OwnerID:  o.ID,
		Email:    o.Email,
		IsAdmin:  o.IsAdmin,
		IssuedAt: now.Unix(),
		Expiry:   now.Add(s.cfg.AccessTokenExpiry).Unix(),
		Audience: tokenAudience,
		Issuer:   tokenIssuer,
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	signingInput := tokenHeader + "." + base64URLEncode(payload)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(signingInput))
	sig := base64URLEncode(mac.Sum(nil))

	return signingInput + "." + sig, nil
}

func (s *AuthService) verifyToken(tokenStr string) (*owner.TokenClaims, error) {
	parts := strings.SplitN(tokenStr, ".", 3)
	if len(parts) != 3 {
		return nil, errors.New("malformed token")
	}

	signingInput := parts[0] + "." + parts[1]
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(signingInput))
	expectedSig := base64URLEncode(mac.Sum(nil))

	if !hmac.Equal([]byte(parts[2]), []byte(expectedSig)) {
		return nil, errors.New("invalid signature")
	}

	payload, err := base64URLDecode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var claims owner.TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal claims: %w", err)
	}

	if time.Now().Unix() > claims.Expiry {
		return nil, errors.New("token expired")
	}
	if claims.Audience != tokenAudience {
		return nil, errors.New("invalid token audience")
	}
	if claims.Issuer != tokenIssuer {
		return nil, errors.New("invalid token issuer")
	}

	return &claims, nil
}

func base64URLEncode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}
	return base64.URLEncoding.DecodeString(s)
}
