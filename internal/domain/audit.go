package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminLogEntry is an append-only record of a privileged action.
type AdminLogEntry struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	AdminID     uuid.UUID      `json:"admin_id" db:"admin_id"`
	Action      AdminAction    `json:"action" db:"action"`
	TargetID    *uuid.UUID     `json:"target_id" db:"target_id"`
	TargetTable *string        `json:"target_table" db:"target_table"`
	Details     map[string]any `json:"details" db:"details"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// AuditLogView is an AdminLogEntry enriched with the actor's identity for
// display. ActorEmail and ActorName are empty when the actor has no profile.
type AuditLogView struct {
	AdminLogEntry
	ActorEmail string `json:"actor_email,omitempty"`
	ActorName  string `json:"actor_name,omitempty"`
}

// NewAdminLogEntry builds a log entry for an action against a target row.
func NewAdminLogEntry(adminID uuid.UUID, action AdminAction, targetID uuid.UUID, targetTable string, details map[string]any) AdminLogEntry {
	table := targetTable
	return AdminLogEntry{
		ID:          uuid.New(),
		AdminID:     adminID,
		Action:      action,
		TargetID:    &targetID,
		TargetTable: &table,
		Details:     details,
		CreatedAt:   time.Now().UTC(),
	}
}
