package errors

import (
	"errors"
	"net/http"
)

// Is re-exports errors.Is so callers importing this package keep a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// Order matters: the first sentinel found in the chain wins.
var mappings = []mapping{
	{ErrUnauthenticated, http.StatusUnauthorized, "Invalid or expired token"},
	{ErrIdentityNotFound, http.StatusUnauthorized, "User not found"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{ErrNotAMember, http.StatusForbidden, "You are not a member of this room"},
	{ErrInviteCodeRequired, http.StatusForbidden, "Invite code required for private rooms"},
	{ErrForbidden, http.StatusForbidden, "Forbidden"},
	{ErrNotFound, http.StatusNotFound, "Not found"},
	{ErrEmptyContent, http.StatusBadRequest, "Message cannot be empty"},
	{ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
	{ErrUsernameTaken, http.StatusBadRequest, "Username already taken"},
	{ErrAlreadyMember, http.StatusBadRequest, "You are already a member of this room"},
	{ErrValidationFailed, http.StatusBadRequest, "Validation failed"},
	{ErrCoordinatorStopped, http.StatusServiceUnavailable, "Service is shutting down"},
	{ErrSessionClosed, http.StatusGone, "Connection is closed"},
	{ErrInvalidPayload, http.StatusBadRequest, "Invalid payload"},
	{ErrUnknownEvent, http.StatusBadRequest, "Unknown event"},
}

// Status maps an error chain to the HTTP status exposed at the boundary.
func Status(err error) int {
	if m, ok := lookup(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// Message returns the stable user-facing message for an error chain.
// Wrapped context is kept for validation, forbidden and not-found errors since the
// wrapping site names the offending field or entity.
func Message(err error) string {
	m, ok := lookup(err)
	if !ok {
		return "Internal server error"
	}
	switch m.sentinel {
	case ErrValidationFailed, ErrForbidden, ErrNotFound:
		if detail := detailOf(err, m.sentinel); detail != "" {
			return detail
		}
	}
	return m.message
}

func lookup(err error) (mapping, bool) {
	if err == nil {
		return mapping{}, false
	}
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			return m, true
		}
	}
	return mapping{}, false
}

// detailOf extracts the text a wrapping site appended after "<sentinel>: ".
func detailOf(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return ""
}
