package auth

import (
	"chat-hub/errors"
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate        = newValidator()
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateRoomRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsPrivate   bool    `json:"isPrivate"`
}

type JoinRoomRequest struct {
	RoomID     string `json:"roomId" validate:"required_without=InviteCode,omitempty,uuid"`
	InviteCode string `json:"inviteCode" validate:"required_without=RoomID"`
}

type PostMessageRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
	RoomID  string `json:"roomId" validate:"required,uuid"`
}

type EditMessageRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so messages match what the client sent
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return passwordCharset.MatchString(s) && hasLetter.MatchString(s) && hasDigit.MatchString(s)
	})
	return v
}

// Validate checks a request struct and aggregates every violation
// into a single ErrValidationFailed.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", errors.ErrValidationFailed, err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}
	return fmt.Errorf("%w: %s", errors.ErrValidationFailed, strings.Join(messages, ", "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return "roomId or inviteCode is required"
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "alphanum":
		return fmt.Sprintf("%s must only contain alpha-numeric characters", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid GUID", field)
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
	case "password":
		return "Password must contain at least one letter and one number"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
