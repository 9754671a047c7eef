package handler

import (
	"net/http"

	"compogen/api/middleware"
	"compogen/internal/dto"
	"compogen/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	Service  *service.SessionService
	Validate *validator.Validate
}

func NewSessionHandler(svc *service.SessionService, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{Service: svc, Validate: validate}
}

func (h *SessionHandler) List(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}

	sessions, err := h.Service.List(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondList(c, len(sessions), sessions)
}

func (h *SessionHandler) Get(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}
	id, err := parseSessionID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	session, err := h.Service.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondData(c, http.StatusOK, session)
}

func (h *SessionHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}

	var req dto.CreateSessionRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid input")
	}

	session, err := h.Service.Create(c.Request().Context(), user.ID, service.CreateSessionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondData(c, http.StatusCreated, session)
}

func (h *SessionHandler) Update(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}
	id, err := parseSessionID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	var req dto.UpdateSessionRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid input")
	}

	session, err := h.Service.Update(c.Request().Context(), user.ID, id, service.SessionUpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		ChatHistory:   req.ChatHistory,
		GeneratedCode: req.GeneratedCode,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondData(c, http.StatusOK, session)
}

func (h *SessionHandler) Delete(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}
	id, err := parseSessionID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	if err := h.Service.Delete(c.Request().Context(), user.ID, id); err != nil {
		return writeServiceError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Session deleted successfully")
}

func (h *SessionHandler) AppendChat(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}
	id, err := parseSessionID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	var req dto.AppendChatRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid input")
	}

	session, err := h.Service.AppendChat(c.Request().Context(), user.ID, id, req.Role, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondData(c, http.StatusOK, session)
}

func (h *SessionHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

// parseSessionID treats a malformed id the same as an unknown one so the
// response never hints at id format or existence.
func parseSessionID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
