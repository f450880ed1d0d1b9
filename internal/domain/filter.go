package domain

import "strings"

// FilterAll disables a role or status filter.
const FilterAll = "all"

// UserFilter holds admin user-list filtering parameters.
type UserFilter struct {
	// Search is a case-insensitive substring matched against name and e-mail.
	Search string
	// Role is "admin", "client", "all" or empty.
	Role string
	// Status is "active", "inactive", "all" or empty.
	Status string
}

// Normalize trims whitespace and lower-cases the enum-like fields.
func (f UserFilter) Normalize() UserFilter {
	return UserFilter{
		Search: strings.TrimSpace(f.Search),
		Role:   strings.ToLower(strings.TrimSpace(f.Role)),
		Status: strings.ToLower(strings.TrimSpace(f.Status)),
	}
}

// ActiveOnly returns the is_active value to filter on, or nil when the status
// filter is "all", empty or unrecognised.
func (f UserFilter) ActiveOnly() *bool {
	var v bool
	switch f.Status {
	case "active":
		v = true
	case "inactive":
		v = false
	default:
		return nil
	}
	return &v
}

// RoleOnly returns the role to keep, or false when no role filter applies.
func (f UserFilter) RoleOnly() (UserRole, bool) {
	if f.Role == "" || f.Role == FilterAll {
		return "", false
	}
	return UserRole(f.Role), true
}

// CacheKey renders the filter as a stable cache-key suffix.
func (f UserFilter) CacheKey() string {
	return f.Search + ":" + f.Role + ":" + f.Status
}
