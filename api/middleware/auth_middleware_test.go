package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compogen/internal/entity"
	"compogen/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func newGateFixture(t *testing.T) (AuthMiddleware, *utils.JWTManager, *entity.User) {
	t.Helper()
	manager := &utils.JWTManager{Secret: []byte("gate-secret"), TokenTTL: 7 * 24 * time.Hour}
	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com"}
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	return AuthMiddleware{JWT: manager, Users: repo}, manager, user
}

func runGate(gate AuthMiddleware, request *http.Request) (*httptest.ResponseRecorder, *entity.User) {
	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	var attached *entity.User
	handler := gate.RequireAuth(func(c echo.Context) error {
		attached, _ = UserFromContext(c)
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return recorder, attached
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestRequireAuth_NoToken(t *testing.T) {
	t.Parallel()

	gate, _, _ := newGateFixture(t)
	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	recorder, _ := runGate(gate, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Not authorized, no token", decodeMessage(t, recorder))
}

func TestRequireAuth_BadBearerToken(t *testing.T) {
	t.Parallel()

	gate, _, _ := newGateFixture(t)
	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer garbage")

	recorder, _ := runGate(gate, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Not authorized, token failed", decodeMessage(t, recorder))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	gate, _, user := newGateFixture(t)
	expired := utils.JWTManager{Secret: []byte("gate-secret"), TokenTTL: -time.Minute}
	token, _, err := expired.IssueToken(user.ID.String())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder, _ := runGate(gate, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Not authorized, token failed", decodeMessage(t, recorder))
}

func TestRequireAuth_HeaderTokenAttachesUser(t *testing.T) {
	t.Parallel()

	gate, manager, user := newGateFixture(t)
	token, _, err := manager.IssueToken(user.ID.String())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder, attached := runGate(gate, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, attached)
	assert.Equal(t, user.ID, attached.ID)
}

func TestRequireAuth_CookieTokenAttachesUser(t *testing.T) {
	t.Parallel()

	gate, manager, user := newGateFixture(t)
	token, _, err := manager.IssueToken(user.ID.String())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

	recorder, attached := runGate(gate, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, attached)
	assert.Equal(t, user.ID, attached.ID)
}

func TestRequireAuth_ValidTokenVanishedUser(t *testing.T) {
	t.Parallel()

	gate, manager, _ := newGateFixture(t)
	token, _, err := manager.IssueToken(uuid.New().String())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder, _ := runGate(gate, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Not authorized, token failed", decodeMessage(t, recorder))
}
