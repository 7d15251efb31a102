package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	// ValidPlayerIDRegex validates external player identifiers
	ValidPlayerIDRegex = regexp.MustCompile(`^[a-zA-Z0-9\-_:.]{1,64}$`)

	// ValidIDRegex validates court and mission identifiers
	ValidIDRegex = regexp.MustCompile(`^[a-zA-Z0-9\-_]{1,64}$`)

	// MaxReasonLength caps admin correction reasons
	MaxReasonLength = 500

	// MaxClockSkew is how far in the future an event timestamp may sit
	// before it is rejected as a client clock problem.
	MaxClockSkew = 5 * time.Minute
)

// ValidatePlayerID checks an external player identifier. Returns a
// details map suitable for SendBadRequest, or nil when valid.
func ValidatePlayerID(id string) map[string]string {
	if strings.TrimSpace(id) == "" {
		return map[string]string{"player_id": "required"}
	}
	if !ValidPlayerIDRegex.MatchString(id) {
		return map[string]string{"player_id": "must be 1-64 characters of a-z, A-Z, 0-9, -_:."}
	}
	return nil
}

// ValidateEntityID checks an optional court or mission identifier.
func ValidateEntityID(field, id string, required bool) map[string]string {
	if strings.TrimSpace(id) == "" {
		if required {
			return map[string]string{field: "required"}
		}
		return nil
	}
	if !ValidIDRegex.MatchString(id) {
		return map[string]string{field: "must be 1-64 characters of a-z, A-Z, 0-9, -_"}
	}
	return nil
}

// ValidateEventTime rejects timestamps too far ahead of the server
// clock. Past timestamps are fine; the progression engine decides
// whether they are stale.
func ValidateEventTime(t *time.Time) map[string]string {
	if t == nil {
		return nil
	}
	if t.After(time.Now().Add(MaxClockSkew)) {
		return map[string]string{"occurred_at": "timestamp is in the future"}
	}
	return nil
}

// ValidateAdjustXP checks an admin XP correction request.
func ValidateAdjustXP(delta int64, reason string) map[string]string {
	if delta == 0 {
		return map[string]string{"delta": "must be non-zero"}
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return map[string]string{"reason": "required"}
	}
	if len(reason) > MaxReasonLength {
		return map[string]string{"reason": "too long"}
	}
	return nil
}
