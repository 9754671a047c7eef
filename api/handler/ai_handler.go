package handler

import (
	"net/http"

	"compogen/internal/dto"
	"compogen/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AIHandler proxies generation requests. The service layer guarantees a
// usable result (mock fallback), so these handlers never surface upstream
// failures to the client.
type AIHandler struct {
	Service  *service.AIService
	Validate *validator.Validate
}

func NewAIHandler(svc *service.AIService, validate *validator.Validate) *AIHandler {
	return &AIHandler{Service: svc, Validate: validate}
}

func (h *AIHandler) Generate(c echo.Context) error {
	var req dto.GenerateRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Prompt is required")
	}

	result := h.Service.Generate(c.Request().Context(), req.Prompt, req.Context)
	return respondData(c, http.StatusOK, result)
}

func (h *AIHandler) Chat(c echo.Context) error {
	var req dto.AIChatRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Message is required")
	}

	reply := h.Service.Chat(c.Request().Context(), req.Message, req.History)
	return respondData(c, http.StatusOK, reply)
}

func (h *AIHandler) Refine(c echo.Context) error {
	var req dto.RefineRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, "Current code and instructions are required")
	}

	result := h.Service.Refine(c.Request().Context(), req.CurrentCode, req.Instructions)
	return respondData(c, http.StatusOK, result)
}

func (h *AIHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
