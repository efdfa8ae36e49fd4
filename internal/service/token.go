package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/paperstack/backend/internal/config"
	"github.com/paperstack/backend/internal/db"
	"github.com/paperstack/backend/internal/model"
)

const tokenTTL = 7 * 24 * time.Hour

// legacyDefaultSecret matches deployments that predate JWT_SECRET being
// mandatory. It is only honored when AUTH_ALLOW_INSECURE_DEFAULT=true.
const legacyDefaultSecret = "this is my custom Secret key for authentication"

type TokenClaims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	store  AccountStore
}

func NewTokenService(cfg config.AuthConfig, store AccountStore) (*TokenService, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		allowInsecure, _ := strconv.ParseBool(cfg.AllowInsecureDefault)
		if !allowInsecure {
			return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
		}
		secret = legacyDefaultSecret
	}

	return &TokenService{
		secret: []byte(secret),
		store:  store,
	}, nil
}

// Issue signs a 7-day HS256 token carrying the account id as subject
// and the username as a name claim.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks the signature and the declared algorithm but not the
// expiration: Refresh must accept expired tokens. Anything that gates
// access on a token has to check expiry itself (ParseAccessToken does).
func (s *TokenService) Validate(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseAccessToken is the auth-gate variant of Validate: same signature
// and algorithm checks, plus expiry and subject sanity.
func (s *TokenService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims, err := s.Validate(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}
	if uuid.Validate(claims.Subject) != nil {
		return nil, ErrInvalidToken
	}
	return &model.AuthUser{
		ID:       claims.Subject,
		Username: claims.Username,
	}, nil
}

// Refresh exchanges any correctly-signed token, expired or not, for a
// fresh one, provided the account it names still exists. It never
// re-checks the password.
func (s *TokenService) Refresh(ctx context.Context, tokenStr string) (string, string, error) {
	claims, err := s.Validate(tokenStr)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if uuid.Validate(claims.Subject) != nil {
		return "", "", ErrInvalidToken
	}

	user, err := s.store.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if db.IsNoRows(err) {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}

	token, err := s.Issue(user)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}
