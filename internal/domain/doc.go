// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/task,
// domain/notification) and the role-based rules live in domain/access.
// This root package holds the error taxonomy shared by every layer.
package domain
