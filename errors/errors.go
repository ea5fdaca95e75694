package errors

import "fmt"

var (
	ErrUnauthenticated    = fmt.Errorf("unauthenticated")
	ErrIdentityNotFound   = fmt.Errorf("identity not found")
	ErrNotAMember         = fmt.Errorf("not a member of this room")
	ErrForbidden          = fmt.Errorf("forbidden")
	ErrNotFound           = fmt.Errorf("not found")
	ErrValidationFailed   = fmt.Errorf("validation failed")
	ErrEmptyContent       = fmt.Errorf("empty content")
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrUsernameTaken      = fmt.Errorf("username already taken")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrAlreadyMember      = fmt.Errorf("already a member")
	ErrInviteCodeRequired = fmt.Errorf("invite code required")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrSupervisorStopped  = fmt.Errorf("supervisor is not running")
	ErrCoordinatorStopped = fmt.Errorf("coordinator is stopped")
	ErrSessionClosed      = fmt.Errorf("session is closed")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrUnknownEvent       = fmt.Errorf("unknown event")
	ErrDeliveryTimeout    = fmt.Errorf("delivery timeout")
)
