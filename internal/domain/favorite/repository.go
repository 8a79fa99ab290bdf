package favorite

import "context"

// Repository is the persistence port for favorites. Add must be idempotent:
// re-adding an existing pair succeeds without creating a duplicate row.
type Repository interface {
	Add(ctx context.Context, fav *Favorite) error
	Remove(ctx context.Context, userID, toolID uint) error
	Exists(ctx context.Context, userID, toolID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]*Favorite, error)
}
