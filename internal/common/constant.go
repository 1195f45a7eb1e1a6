// Package common contains shared constants and helpers used across the
// emergency help client.
package common

// Header names attached to every outbound backend request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// Keys under which session data is persisted in the local metadata table.
const (
	MetadataKeyToken = "token"
	MetadataKeyRole  = "role"
)

// RoleAdmin is the role claim that unlocks the directory management view.
const RoleAdmin = "admin"
