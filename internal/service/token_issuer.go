package service

import (
	"time"

	"compogen/internal/utils"
)

// JWTTokenIssuer adapts the JWT manager to the service-level TokenIssuer
// interface.
type JWTTokenIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTTokenIssuer) Issue(userID string) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.IssueToken(userID)
}
