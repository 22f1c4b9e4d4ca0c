package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

const (
	ownerID = "owner-1"
	maidID  = "maid-1"
)

var testTime = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withActor attaches an authenticated session for userID.
func withActor(r *http.Request, userID string) *http.Request {
	s := ports.Session{Token: "tok-" + userID, UserID: userID}
	return r.WithContext(middleware.WithSession(r.Context(), s))
}

func validUser(id string, role user.Role) user.User {
	return user.User{
		ID:           id,
		Username:     id,
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuuOe7bUjvYQ0u0FzS4xZ3yq8mDq9d6f2e",
		Name:         "Test " + id,
		Role:         role,
		Language:     user.LanguageEnglish,
	}
}

func validTask() task.Task {
	assignee := maidID
	return task.Task{
		ID:         "task-1",
		Title:      "Clean living room",
		Status:     task.StatusPending,
		Priority:   task.PriorityHigh,
		AssignedTo: &assignee,
		CreatedBy:  ownerID,
		Deadline:   &testTime,
	}
}

func validNotification() notification.Notification {
	n := notification.Assigned(maidID, "Clean living room", testTime)
	n.ID = "notif-1"
	return n
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// sessionCookie returns the sid cookie set on the response, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}
