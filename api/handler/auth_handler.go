package handler

import (
	"errors"
	"net/http"
	"time"

	"compogen/api/middleware"
	"compogen/internal/dto"
	"compogen/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service       *service.AuthService
	Validate      *validator.Validate
	CookieName    string
	CookieDomain  string
	SecureCookies bool
	SameSite      http.SameSite
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		Validate:      validate,
		CookieName:    middleware.TokenCookieName,
		SecureCookies: true,
		SameSite:      http.SameSiteNoneMode,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, validationMessage(err))
	}

	result, err := h.Service.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	h.setTokenCookie(c, result.Token, result.ExpiresIn)
	return respondData(c, http.StatusCreated, dto.AuthResponse{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, validationMessage(err))
	}

	result, err := h.Service.Login(c.Request().Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	h.setTokenCookie(c, result.Token, result.ExpiresIn)
	return respondData(c, http.StatusOK, dto.AuthResponse{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}
	return respondData(c, http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	}

	var req dto.ProfileUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate(req); err != nil {
		return respondError(c, http.StatusBadRequest, validationMessage(err))
	}

	updated, err := h.Service.UpdateProfile(c.Request().Context(), user.ID, service.ProfileUpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return respondData(c, http.StatusOK, dto.UserResponseFromEntity(updated))
}

// Logout clears the auth cookie. Tokens are not revoked server-side, so a
// copy the client kept stays valid until natural expiry; the operation is
// idempotent and always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearTokenCookie(c)
	return respondMessage(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string, expiresIn int64) {
	if token == "" {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     h.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(expiresIn),
		Expires:  time.Now().Add(time.Duration(expiresIn) * time.Second),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid input"
	}
	fe := fieldErrors[0]
	switch {
	case fe.Tag() == "required":
		return "All fields are required"
	case fe.Tag() == "email":
		return "Please enter a valid email address"
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 6 characters long"
	default:
		return "Invalid input"
	}
}
