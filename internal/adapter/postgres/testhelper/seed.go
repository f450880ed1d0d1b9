package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeededUser bundles the rows created by SeedUser.
type SeededUser struct {
	Auth    domain.AuthUser
	Profile domain.Profile
}

// SeedUser creates a confirmed auth user and an active profile, with no role rows.
func SeedUser(t *testing.T, pool *pgxpool.Pool) SeededUser {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := SeededUser{
		Auth: domain.AuthUser{
			ID:               uuid.New(),
			Email:            "testuser-" + suffix + "@example.com",
			PasswordHash:     "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
			EmailConfirmedAt: &now,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
	u.Profile = domain.Profile{
		ID:        uuid.New(),
		UserID:    u.Auth.ID,
		FullName:  "Test User " + suffix,
		Email:     u.Auth.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO auth_users (id, email, password_hash, email_confirmed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.Auth.ID, u.Auth.Email, u.Auth.PasswordHash, u.Auth.EmailConfirmedAt, u.Auth.CreatedAt, u.Auth.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert auth_user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id, full_name, email, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.Profile.ID, u.Profile.UserID, u.Profile.FullName, u.Profile.Email, u.Profile.IsActive, u.Profile.CreatedAt, u.Profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return u
}

// SeedRole inserts one role row for userID. Call it more than once to create duplicates.
func SeedRole(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, role domain.UserRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_roles (id, user_id, role, created_at) VALUES ($1, $2, $3, now())`,
		uuid.New(), userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}
}

// CountRoles returns how many role rows exist for userID.
func CountRoles(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM user_roles WHERE user_id = $1`, userID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRoles: %v", err)
	}
	return n
}
