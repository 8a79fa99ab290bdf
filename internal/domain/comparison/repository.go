package comparison

import "context"

// Repository persists comparison usage records.
type Repository interface {
	Create(ctx context.Context, cmp *Comparison) error
	ListByUser(ctx context.Context, userID uint) ([]*Comparison, error)
}
