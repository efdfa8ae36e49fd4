package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paperstack/backend/internal/db"
	"github.com/paperstack/backend/internal/model"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so login failures never reveal which half was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrMisconfigured      = errors.New("auth config invalid")
)

// AccountStore is the persistence contract the auth services need,
// implemented by db.Postgres. Absent rows surface as pgx.ErrNoRows.
type AccountStore interface {
	InsertUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
	PageUsers(ctx context.Context, offset, limit int) ([]model.User, error)
}

type AuthService struct {
	store  AccountStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(store AccountStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates an account and logs it in. The username pre-check is
// racy on its own; the unique constraint on users.username is the real
// arbiter, so a constraint violation maps to ErrUsernameTaken too.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, string, error) {
	_, err := s.store.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return "", "", ErrUsernameTaken
	}
	if !db.IsNoRows(err) {
		return "", "", err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		LastName:     req.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return "", "", ErrUsernameTaken
		}
		return "", "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}

func (s *AuthService) DeleteAccount(ctx context.Context, id string) error {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrUserNotFound
		}
		return err
	}
	return s.store.DeleteUser(ctx, user.ID)
}

// Logout has no server-side effect: tokens are stateless and die only
// by client discard or expiry. There is no revocation list.
func (s *AuthService) Logout() {}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
