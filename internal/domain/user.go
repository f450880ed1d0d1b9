package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the credential record behind a profile.
type AuthUser struct {
	ID               uuid.UUID  `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	EmailConfirmedAt *time.Time `db:"email_confirmed_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// IsConfirmed returns true once the user has verified their e-mail address.
func (u *AuthUser) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// Profile is a platform user's account record.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileWithRole is a profile joined with its effective role.
type ProfileWithRole struct {
	Profile
	Role UserRole `json:"role"`
}

// RoleAssignment is a single user_roles row. A user may have several rows;
// see ResolveRoles for how they collapse into one effective role.
type RoleAssignment struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      UserRole  `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// ResolveRoles builds a per-user role lookup from raw role rows. Any admin row
// makes the user an admin regardless of row order; otherwise the user is a
// client. Users without rows are absent from the map.
func ResolveRoles(rows []RoleAssignment) map[uuid.UUID]UserRole {
	roles := make(map[uuid.UUID]UserRole, len(rows))
	for _, r := range rows {
		if r.Role == UserRoleAdmin {
			roles[r.UserID] = UserRoleAdmin
			continue
		}
		if _, ok := roles[r.UserID]; !ok {
			roles[r.UserID] = UserRoleClient
		}
	}
	return roles
}

// EffectiveRole returns the role for userID from a resolved lookup,
// defaulting to client.
func EffectiveRole(roles map[uuid.UUID]UserRole, userID uuid.UUID) UserRole {
	if r, ok := roles[userID]; ok {
		return r
	}
	return UserRoleClient
}

// Session is the authenticated identity carried through a request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}

// IsAdmin reports whether the session belongs to an admin.
func (s Session) IsAdmin() bool {
	return s.Role.IsAdmin()
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// AuthToken is a hashed one-time token for e-mail verification or password reset.
type AuthToken struct {
	ID        uuid.UUID    `db:"id"`
	UserID    uuid.UUID    `db:"user_id"`
	Purpose   TokenPurpose `db:"purpose"`
	TokenHash string       `db:"token_hash"`
	ExpiresAt time.Time    `db:"expires_at"`
	UsedAt    *time.Time   `db:"used_at"`
	CreatedAt time.Time    `db:"created_at"`
}

// IsUsable returns true if the token has not been redeemed and has not expired.
func (t *AuthToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}
