package review

import "context"

// Repository is the persistence port for reviews.
type Repository interface {
	Create(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	ExistsByToolAndUser(ctx context.Context, toolID, userID uint) (bool, error)

	// ListApprovedByTool returns approved reviews for a tool, newest first,
	// plus the total approved count.
	ListApprovedByTool(ctx context.Context, toolID uint, limit, offset int) ([]*Review, int64, error)
	ListPending(ctx context.Context) ([]*Review, error)
}
