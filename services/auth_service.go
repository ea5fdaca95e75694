package services

import (
	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (AuthResult, error)
	Login(ctx context.Context, req auth.LoginRequest) (AuthResult, error)
	Profile(ctx context.Context, userID string) (domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

type AuthResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

type AuthService struct {
	log   *slog.Logger
	users repositories.IUserRepository
	token *auth.TokenManager
	now   func() time.Time
}

func NewAuthService(log *slog.Logger, users repositories.IUserRepository, token *auth.TokenManager) *AuthService {
	return &AuthService{
		log:   log,
		users: users,
		token: token,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (AuthResult, error) {
	// 1. Validate business rules (email format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.Validate(req); err != nil {
		return AuthResult{}, err
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	now := s.now()
	user, err := s.users.CreateUser(ctx, domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(req.Email),
		Username:     req.Username,
		PasswordHash: hashedPassword,
		LastSeen:     now,
		CreatedAt:    now,
	})
	if err != nil {
		return AuthResult{}, err
	}

	// 4. Generate the initial session token
	token, err := s.token.Generate(user.Identity())
	if err != nil {
		return AuthResult{}, err
	}
	s.log.Info("User registered", "user_id", user.ID)
	return AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (AuthResult, error) {
	if err := auth.Validate(req); err != nil {
		return AuthResult{}, err
	}

	// 1. Retrieve user by email from storage
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			// Generic error to prevent user enumeration attacks
			return AuthResult{}, errors.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return AuthResult{}, errors.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.users.TouchLastSeen(ctx, user.ID, now); err != nil {
		s.log.Warn("Unable to update last seen", "user_id", user.ID, "error", err)
	} else {
		user.LastSeen = now
	}

	// 3. Issue the JWT token
	token, err := s.token.Generate(user.Identity())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.User{}, errors.ErrIdentityNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// Authenticate verifies a bearer credential and that its subject still exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	identity, err := s.token.Validate(token)
	if err != nil {
		return domain.Identity{}, err
	}
	user, err := s.Profile(ctx, identity.UserID)
	if err != nil {
		return domain.Identity{}, err
	}
	return user.Identity(), nil
}
