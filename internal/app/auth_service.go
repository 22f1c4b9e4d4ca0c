package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/platform/validation"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

var (
	errInvalidCredentials = fmt.Errorf("%w: invalid username or password", domain.ErrNotAuthenticated)
	errUsernameTaken      = fmt.Errorf("%w: username already exists", domain.ErrConflict)
)

// AuthService implements ports.AuthService over the user store and a
// password hasher.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	logger *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(users ports.UserStore, hasher ports.PasswordHasher, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		logger: logging.OrDiscard(logger),
	}
}

// Register validates the input, rejects taken usernames and stores the new
// account with a hashed password.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*user.User, error) {
	s.logger.InfoContext(ctx, "registering user",
		slog.String("username", in.Username),
		slog.String("role", in.Role.String()),
	)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if _, taken := s.users.GetUserByUsername(ctx, in.Username); taken {
		return nil, errUsernameTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created, err := s.users.CreateUser(ctx, user.User{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		Language:     user.DefaultLanguage,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.String("username", in.Username),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &created, nil
}

// Login checks the credentials and the claimed role. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*user.User, error) {
	s.logger.InfoContext(ctx, "login attempt",
		slog.String("username", in.Username),
		slog.String("role", in.Role.String()),
	)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, ok := s.users.GetUserByUsername(ctx, in.Username)
	if !ok {
		return nil, errInvalidCredentials
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		s.logger.WarnContext(ctx, "login rejected",
			slog.String("operation", "Login"),
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return nil, errInvalidCredentials
	}

	if u.Role != in.Role {
		return nil, fmt.Errorf("%w: this account is registered as %s", domain.ErrRoleMismatch, u.Role)
	}

	return &u, nil
}

// CurrentUser returns the session's user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	return loadActor(ctx, s.users, userID)
}
