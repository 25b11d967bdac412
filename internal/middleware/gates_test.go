package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
)

type fakeUsers struct {
	byID map[string]*models.User
}

func (f *fakeUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	return nil
}

type fakeSessions struct {
	byToken map[string]*models.AuthSession
}

func (f *fakeSessions) Create(ctx context.Context, session *models.AuthSession) error {
	f.byToken[session.Token] = session
	return nil
}

func (f *fakeSessions) FindByToken(ctx context.Context, token string) (*models.AuthSession, error) {
	session, ok := f.byToken[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return session, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context, now time.Time) error {
	return nil
}

func newGateAuthService(users *fakeUsers, sessions *fakeSessions) *service.AuthService {
	return service.NewAuthService(users, sessions, service.NewStaticCredentialStore(nil), nil, zap.NewNop(), service.AuthConfig{
		SessionTTL: time.Hour,
		JWTSecret:  "secret",
	})
}

func performRequest(t *testing.T, handlers []gin.HandlerFunc, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	chain := append(handlers, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/probe", chain...)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if mutate != nil {
		mutate(req)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	auth := newGateAuthService(&fakeUsers{byID: map[string]*models.User{}}, &fakeSessions{byToken: map[string]*models.AuthSession{}})

	w := performRequest(t, []gin.HandlerFunc{RequireAuth(auth)}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestRequireAuthRejectsMissingUserRow(t *testing.T) {
	auth := newGateAuthService(&fakeUsers{byID: map[string]*models.User{}}, &fakeSessions{byToken: map[string]*models.AuthSession{}})

	identify := func(c *gin.Context) { c.Set(ContextUserIDKey, "ghost") }
	w := performRequest(t, []gin.HandlerFunc{identify, RequireAuth(auth)}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthLoadsUser(t *testing.T) {
	users := &fakeUsers{byID: map[string]*models.User{"u1": {ID: "u1", Role: models.RoleStudent}}}
	auth := newGateAuthService(users, &fakeSessions{byToken: map[string]*models.AuthSession{}})

	var loaded *models.User
	capture := func(c *gin.Context) {
		if value, ok := c.Get(ContextUserKey); ok {
			loaded = value.(*models.User)
		}
	}
	identify := func(c *gin.Context) { c.Set(ContextUserIDKey, "u1") }
	w := performRequest(t, []gin.HandlerFunc{identify, RequireAuth(auth), capture}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, loaded)
	assert.Equal(t, "u1", loaded.ID)
}

func TestRequireAdminRejectsStudents(t *testing.T) {
	identify := func(c *gin.Context) {
		c.Set(ContextUserKey, &models.User{ID: "u1", Role: models.RoleStudent})
	}
	w := performRequest(t, []gin.HandlerFunc{identify, RequireAdmin()}, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden: Admin access required"}`, w.Body.String())
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	identify := func(c *gin.Context) {
		c.Set(ContextUserKey, &models.User{ID: "a1", Role: models.RoleAdmin})
	}
	w := performRequest(t, []gin.HandlerFunc{identify, RequireAdmin()}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentitySessionCookieWinsOverBearer(t *testing.T) {
	users := &fakeUsers{byID: map[string]*models.User{}}
	sessions := &fakeSessions{byToken: map[string]*models.AuthSession{
		"live-token": {Token: "live-token", UserID: "cookie-user", ExpiresAt: time.Now().Add(time.Hour)},
	}}
	auth := newGateAuthService(users, sessions)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "bearer-user"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	var resolved string
	capture := func(c *gin.Context) {
		if value, ok := c.Get(ContextUserIDKey); ok {
			resolved = value.(string)
		}
	}
	chain := []gin.HandlerFunc{Identity(NewSessionResolver(auth, "sid"), NewBearerResolver(auth)), capture}
	w := performRequest(t, chain, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "sid", Value: "live-token"})
		req.Header.Set("Authorization", "Bearer "+signed)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-user", resolved)
}

func TestIdentityFallsBackToBearer(t *testing.T) {
	auth := newGateAuthService(&fakeUsers{byID: map[string]*models.User{}}, &fakeSessions{byToken: map[string]*models.AuthSession{}})

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "bearer-user"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	var resolved string
	capture := func(c *gin.Context) {
		if value, ok := c.Get(ContextUserIDKey); ok {
			resolved = value.(string)
		}
	}
	chain := []gin.HandlerFunc{Identity(NewSessionResolver(auth, "sid"), NewBearerResolver(auth)), capture}
	w := performRequest(t, chain, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bearer-user", resolved)
}

func TestIdentityLeavesAnonymousRequestsAlone(t *testing.T) {
	auth := newGateAuthService(&fakeUsers{byID: map[string]*models.User{}}, &fakeSessions{byToken: map[string]*models.AuthSession{}})

	resolved := false
	capture := func(c *gin.Context) {
		_, resolved = c.Get(ContextUserIDKey)
	}
	chain := []gin.HandlerFunc{Identity(NewSessionResolver(auth, "sid"), NewBearerResolver(auth)), capture}
	w := performRequest(t, chain, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resolved)
}
