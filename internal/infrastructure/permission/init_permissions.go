package permission

import (
	"fmt"

	"toolvault/internal/shared/logger"
)

// InitCatalogPermissions seeds the moderation and catalog management policies.
func InitCatalogPermissions(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - moderation queue and catalog curation
		{"admin", "tool", "approve"},
		{"admin", "tool", "reject"},
		{"admin", "tool", "feature"},
		{"admin", "tool", "read_pending"},
		{"admin", "review", "approve"},
		{"admin", "review", "read_pending"},
		{"admin", "category", "create"},

		// User permissions - submit and manage own content
		{"user", "tool", "submit"},
		{"user", "review", "create"},
		{"user", "favorite", "manage"},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add catalog permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	// Admins inherit everything a regular user may do.
	if err := enforcer.AddRoleForUser("admin", "user"); err != nil {
		return fmt.Errorf("failed to link admin role: %w", err)
	}

	log.Info("catalog permissions initialized successfully")
	return nil
}
