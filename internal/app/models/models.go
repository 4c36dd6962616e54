package models

// RoleType defines the role carried in an access token
type RoleType string

const (
	// RoleAdmin may change course assignments when authentication is enabled
	RoleAdmin RoleType = "ADMIN"
)
