package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paperstack/backend/internal/config"
	"github.com/paperstack/backend/internal/model"
	"github.com/paperstack/backend/internal/service"
)

type emptyAccountStore struct{}

func (emptyAccountStore) InsertUser(ctx context.Context, user *model.User) error { return nil }
func (emptyAccountStore) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (emptyAccountStore) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (emptyAccountStore) DeleteUser(ctx context.Context, id string) error { return nil }
func (emptyAccountStore) CountUsers(ctx context.Context) (int, error)     { return 0, nil }
func (emptyAccountStore) PageUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	return []model.User{}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := service.NewTokenService(config.AuthConfig{JWTSecret: "test-secret"}, emptyAccountStore{})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		user := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"accountId": user.ID})
	})
	return router, tokens
}

func TestAuthMiddleware(t *testing.T) {
	router, tokens := newTestRouter(t)

	user := &model.User{ID: uuid.NewString(), Username: "alice"}
	valid, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expiredClaims := service.TokenClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no-header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not-bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty-bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage-token", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized},
		{name: "expired-token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "valid-token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
