// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
)

// UserResponse is the public view of a user. It never carries the password
// hash.
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Language  string  `json:"language"`
	AvatarURL *string `json:"avatarUrl"`
}

// UserEnvelope wraps a user for the auth endpoints.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		Language:  string(u.Language),
		AvatarURL: u.AvatarURL,
	}
}

// ToUserEnvelope converts a domain User to the auth response body.
func ToUserEnvelope(u *user.User) UserEnvelope {
	return UserEnvelope{User: ToUserResponse(u)}
}

// ToUserListResponse converts a slice of domain Users.
func ToUserListResponse(users []user.User) []UserResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return items
}

// LanguageResponse reports the caller's language after an update.
type LanguageResponse struct {
	Language string `json:"language"`
}

// TaskResponse represents a single task in HTTP responses. Nullable fields
// are always present and encode as null when unset.
type TaskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	AssignedTo    *string    `json:"assignedTo"`
	CreatedBy     string     `json:"createdBy"`
	Deadline      *Timestamp `json:"deadline"`
	CompletedAt   *Timestamp `json:"completedAt"`
	PhotoEvidence *string    `json:"photoEvidence"`
	Notes         *string    `json:"notes"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status.String(),
		Priority:      t.Priority.String(),
		AssignedTo:    t.AssignedTo,
		CreatedBy:     t.CreatedBy,
		Deadline:      stampPtr(t.Deadline),
		CompletedAt:   stampPtr(t.CompletedAt),
		PhotoEvidence: t.PhotoEvidence,
		Notes:         t.Notes,
	}
}

// ToTaskListResponse converts a slice of domain Tasks, keeping their order.
func ToTaskListResponse(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// NotificationResponse represents a single notification in HTTP responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt Timestamp `json:"createdAt"`
}

// ToNotificationResponse converts a domain Notification to an HTTP response DTO.
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type.String(),
		Read:      n.Read,
		CreatedAt: Timestamp(n.CreatedAt),
	}
}

// ToNotificationListResponse converts a slice of domain Notifications.
func ToNotificationListResponse(ns []notification.Notification) []NotificationResponse {
	items := make([]NotificationResponse, len(ns))
	for i := range ns {
		items[i] = ToNotificationResponse(&ns[i])
	}
	return items
}

// UnreadCountResponse reports the caller's unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MessageResponse is a confirmation body for operations with no entity to
// return.
type MessageResponse struct {
	Message string `json:"message"`
}

// MarkAllReadResponse confirms a bulk read and reports how many
// notifications changed.
type MarkAllReadResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}
