package usecases

import "context"

// ModerationMailer notifies submitters about moderation outcomes.
type ModerationMailer interface {
	SendToolApproved(ctx context.Context, toEmail, toolName, toolSlug string) error
	SendToolRejected(ctx context.Context, toEmail, toolName string) error
}
