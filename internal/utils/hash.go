package utils

import "strings"

// NormalizeEmail lowercases and trims an email so lookups and the unique
// index behave case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
