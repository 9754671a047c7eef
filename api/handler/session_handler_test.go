package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compogen/api/middleware"
	"compogen/internal/entity"
	"compogen/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessionRepo keeps everything, active or not, so soft-delete
// visibility can be asserted against actual storage.
type memorySessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, s *entity.Session) error {
	s.ID = uuid.New()
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *memorySessionRepo) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]entity.Session, error) {
	var result []entity.Session
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *memorySessionRepo) FindActive(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Session, error) {
	s, ok := r.sessions[id]
	if !ok || !s.IsActive || s.UserID != userID {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *memorySessionRepo) Save(_ context.Context, s *entity.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func newSessionFixture() (*SessionHandler, *memorySessionRepo, *entity.User) {
	repo := newMemorySessionRepo()
	svc := service.NewSessionService(repo, service.RealClock{})
	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com"}
	return NewSessionHandler(svc, validator.New()), repo, user
}

func sessionRequest(user *entity.User, method string, body string, sessionID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	request := httptest.NewRequest(method, "/api/session", strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	if sessionID != "" {
		c.SetParamNames("id")
		c.SetParamValues(sessionID)
	}
	middleware.SetAuthUser(c, user)
	return c, recorder
}

func createSession(t *testing.T, h *SessionHandler, user *entity.User, body string) uuid.UUID {
	t.Helper()
	c, recorder := sessionRequest(user, http.MethodPost, body, "")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response struct {
		Data entity.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response.Data.ID
}

func TestCreateSession_DefaultTitleAnd201(t *testing.T) {
	t.Parallel()

	h, repo, user := newSessionFixture()
	id := createSession(t, h, user, `{}`)

	stored := repo.sessions[id]
	require.NotNil(t, stored)
	assert.Equal(t, "New Session", stored.Title)
	assert.Equal(t, user.ID, stored.UserID)
	assert.True(t, stored.IsActive)
}

// Cross-user access is always a 404, never a 403: the response must not
// reveal that the session exists at all.
func TestGetSession_ForeignIs404(t *testing.T) {
	t.Parallel()

	h, _, owner := newSessionFixture()
	id := createSession(t, h, owner, `{"title":"private"}`)

	intruder := &entity.User{ID: uuid.New(), Name: "Eve", Email: "eve@x.com"}
	c, recorder := sessionRequest(intruder, http.MethodGet, "", id.String())
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Session not found")
}

func TestGetSession_MalformedIDIs404(t *testing.T) {
	t.Parallel()

	h, _, user := newSessionFixture()
	c, recorder := sessionRequest(user, http.MethodGet, "", "not-a-uuid")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteSession_SoftDeleteHidesButKeeps(t *testing.T) {
	t.Parallel()

	h, repo, user := newSessionFixture()
	id := createSession(t, h, user, `{"title":"doomed"}`)

	c, recorder := sessionRequest(user, http.MethodDelete, "", id.String())
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Session deleted successfully")

	// Still in storage, invisible to reads.
	stored := repo.sessions[id]
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	c, recorder = sessionRequest(user, http.MethodGet, "", id.String())
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Second delete is a 404: the session is no longer active.
	c, recorder = sessionRequest(user, http.MethodDelete, "", id.String())
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateSession_EmptyValueStillApplied(t *testing.T) {
	t.Parallel()

	h, repo, user := newSessionFixture()
	id := createSession(t, h, user, `{"title":"original","description":"desc"}`)

	c, recorder := sessionRequest(user, http.MethodPut, `{"title":""}`, id.String())
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	stored := repo.sessions[id]
	assert.Equal(t, "", stored.Title)
	assert.Equal(t, "desc", stored.Description)
}

func TestAppendChat_GrowsHistory(t *testing.T) {
	t.Parallel()

	h, repo, user := newSessionFixture()
	id := createSession(t, h, user, `{}`)

	c, recorder := sessionRequest(user, http.MethodPost, `{"role":"user","content":"hi"}`, id.String())
	require.NoError(t, h.AppendChat(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	stored := repo.sessions[id]
	require.Len(t, stored.ChatHistory, 1)
	assert.Equal(t, entity.ChatRoleUser, stored.ChatHistory[0].Role)
	assert.Equal(t, "hi", stored.ChatHistory[0].Content)
}

func TestAppendChat_BadRoleIs400(t *testing.T) {
	t.Parallel()

	h, _, user := newSessionFixture()
	id := createSession(t, h, user, `{}`)

	c, recorder := sessionRequest(user, http.MethodPost, `{"role":"system","content":"hi"}`, id.String())
	require.NoError(t, h.AppendChat(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListSessions_OnlyOwnActive(t *testing.T) {
	t.Parallel()

	h, _, user := newSessionFixture()
	createSession(t, h, user, `{"title":"mine"}`)

	other := &entity.User{ID: uuid.New(), Name: "Bea", Email: "bea@x.com"}
	createSession(t, h, other, `{"title":"theirs"}`)

	c, recorder := sessionRequest(user, http.MethodGet, "", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool             `json:"success"`
		Count   int              `json:"count"`
		Data    []entity.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "mine", response.Data[0].Title)
}
