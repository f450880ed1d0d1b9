package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleClient UserRole = "client"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleClient:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AdminAction names a privileged mutation recorded in admin_logs.
type AdminAction string

const (
	AdminActionActivateUser   AdminAction = "activate_user"
	AdminActionDeactivateUser AdminAction = "deactivate_user"
	AdminActionChangeRole     AdminAction = "change_role"
)

func (a AdminAction) String() string { return string(a) }

func (a AdminAction) IsValid() bool {
	switch a {
	case AdminActionActivateUser, AdminActionDeactivateUser, AdminActionChangeRole:
		return true
	}
	return false
}

// StatusActionFor returns the action recorded when a profile's active flag
// is set to newStatus.
func StatusActionFor(newStatus bool) AdminAction {
	if newStatus {
		return AdminActionActivateUser
	}
	return AdminActionDeactivateUser
}

// TokenPurpose identifies what a one-time auth token may be redeemed for.
type TokenPurpose string

const (
	TokenPurposeEmailVerification TokenPurpose = "email_verification"
	TokenPurposePasswordReset     TokenPurpose = "password_reset"
)

func (p TokenPurpose) String() string { return string(p) }

func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPurposeEmailVerification, TokenPurposePasswordReset:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a marketing campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) String() string { return string(s) }

// Tables referenced by admin_logs.target_table.
const (
	TableProfiles  = "profiles"
	TableUserRoles = "user_roles"
)
