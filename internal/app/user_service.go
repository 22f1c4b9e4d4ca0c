package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserStore, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logging.OrDiscard(logger)}
}

// ListMaids returns every maid. Any authenticated user may call it.
func (s *UserService) ListMaids(ctx context.Context, actorID string) ([]user.User, error) {
	if _, err := loadActor(ctx, s.users, actorID); err != nil {
		return nil, err
	}
	return s.users.ListMaids(ctx), nil
}

// UpdateLanguage changes the actor's own language preference.
func (s *UserService) UpdateLanguage(ctx context.Context, actorID string, lang user.Language) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating language",
		slog.String("user_id", actorID),
		slog.String("language", lang.String()),
	)

	if !lang.IsValid() {
		return nil, domain.NewValidationError("language", fmt.Sprintf("unsupported: %q", lang))
	}
	if _, err := loadActor(ctx, s.users, actorID); err != nil {
		return nil, err
	}

	updated, ok := s.users.UpdateUserLanguage(ctx, actorID, lang)
	if !ok {
		s.logger.ErrorContext(ctx, "user vanished during language update",
			slog.String("operation", "UpdateLanguage"),
			slog.String("user_id", actorID),
		)
		return nil, errSessionUserGone
	}
	forgetActor(ctx, actorID)

	return &updated, nil
}
