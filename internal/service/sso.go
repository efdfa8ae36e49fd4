package service

import (
	"context"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/paperstack/backend/internal/config"
	"github.com/paperstack/backend/internal/db"
	"github.com/paperstack/backend/internal/model"
	"golang.org/x/oauth2"
)

// SSOService logs users in through an external OIDC provider. The
// verified email doubles as the local username; first-time SSO users
// get an account with a random password they can never type.
type SSOService struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
	store    AccountStore
	hasher   *PasswordHasher
	tokens   *TokenService
	enabled  bool
}

func NewSSOService(ctx context.Context, cfg config.SSOConfig, store AccountStore, hasher *PasswordHasher, tokens *TokenService) (*SSOService, error) {
	if cfg.IssuerURL == "" || cfg.ClientID == "" {
		return &SSOService{}, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	return &SSOService{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		enabled:  true,
	}, nil
}

func (s *SSOService) Enabled() bool {
	return s.enabled
}

func (s *SSOService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, verifies the ID
// token, and issues a local bearer token for the mapped account.
func (s *SSOService) HandleCallback(ctx context.Context, code string) (string, string, error) {
	exchanged, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	rawIDToken, ok := exchanged.Extra("id_token").(string)
	if !ok {
		return "", "", ErrInvalidToken
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	var claims struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" {
		return "", "", ErrInvalidToken
	}

	user, err := s.store.FindUserByUsername(ctx, claims.Email)
	if err != nil {
		if !db.IsNoRows(err) {
			return "", "", err
		}
		user, err = s.provisionUser(ctx, claims.Email, claims.GivenName, claims.FamilyName)
		if err != nil {
			return "", "", err
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}

func (s *SSOService) provisionUser(ctx context.Context, email, name, lastName string) (*model.User, error) {
	hash, err := s.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     email,
		PasswordHash: hash,
		Name:         name,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		// Lost a race with a concurrent first login for the same email.
		if isUniqueViolation(err) {
			return s.store.FindUserByUsername(ctx, email)
		}
		return nil, err
	}
	return user, nil
}
