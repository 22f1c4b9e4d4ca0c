package app

import (
	"context"
	"fmt"

	appctx "github.com/jsamuelsen11/household-tasks/internal/app/context"
	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// errSessionUserGone is returned when a session outlives its user record.
var errSessionUserGone = fmt.Errorf("%w: session user no longer exists", domain.ErrNotAuthenticated)

func actorKey(id string) string {
	return "user:" + id
}

// loadActor resolves the acting user, memoized for the current request.
func loadActor(ctx context.Context, users ports.UserStore, id string) (*user.User, error) {
	u, err := appctx.GetOrFetch(ctx, actorKey(id), func(ctx context.Context) (user.User, error) {
		u, ok := users.GetUser(ctx, id)
		if !ok {
			return user.User{}, errSessionUserGone
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// forgetActor drops the memoized actor after the user record changed.
func forgetActor(ctx context.Context, id string) {
	if rc := appctx.FromContext(ctx); rc != nil {
		rc.Invalidate(actorKey(id))
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordTaskEvent(context.Context, string)          {}
func (noopRecorder) RecordNotifications(context.Context, string, int) {}
