package domain

import (
	"fmt"
	"strings"
)

// UserKey builds the storage key for a platform user.
// Telegram ids are used bare so existing per-user files stay addressable.
func UserKey(platform, platformID string) string {
	if platform == PlatformTelegram || platform == "" {
		return platformID
	}
	return platform + "-" + platformID
}

// ValidateUserKey rejects keys that cannot be used as storage identifiers
func ValidateUserKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: user id %q", ErrInvalidInput, key)
	}
	return nil
}
