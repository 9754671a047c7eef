package handler

import (
	"net/http"

	"compogen/internal/dto"
	"compogen/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Service  *service.ContactService
	Validate *validator.Validate
}

func NewContactHandler(svc *service.ContactService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{Service: svc, Validate: validate}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return respondError(c, http.StatusBadRequest, "Name, email and message are required")
		}
	}

	err := h.Service.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Message sent successfully")
}
