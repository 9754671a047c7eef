package middleware

import (
	"net/http"
	"strings"

	"compogen/internal/dto"
	"compogen/internal/repository"
	"compogen/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TokenCookieName is the HTTP-only cookie carrying the auth token for
	// browser clients.
	TokenCookieName = "token"

	msgNoToken     = "Not authorized, no token"
	msgTokenFailed = "Not authorized, token failed"
)

// AuthMiddleware resolves a bearer token (Authorization header first, then
// the token cookie) to a user record and attaches it to the request.
// Failure is terminal per request: there is no retry or fallback beyond
// the cookie check.
type AuthMiddleware struct {
	JWT   *utils.JWTManager
	Users repository.UserRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractBearerToken(c.Request())
		if token == "" {
			token = extractCookieToken(c)
		}
		if token == "" {
			return unauthorized(c, msgNoToken)
		}

		if m.JWT == nil || m.Users == nil {
			return unauthorized(c, msgTokenFailed)
		}

		userIDString, err := m.JWT.ParseToken(token)
		if err != nil {
			return unauthorized(c, msgTokenFailed)
		}
		userID, err := uuid.Parse(userIDString)
		if err != nil {
			return unauthorized(c, msgTokenFailed)
		}

		// A valid token for a vanished account gets the same rejection as
		// a bad token.
		user, err := m.Users.FindByID(c.Request().Context(), userID)
		if err != nil || user == nil {
			return unauthorized(c, msgTokenFailed)
		}

		SetAuthUser(c, user)
		return next(c)
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, dto.Response{Success: false, Message: message})
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func extractCookieToken(c echo.Context) string {
	cookie, err := c.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
