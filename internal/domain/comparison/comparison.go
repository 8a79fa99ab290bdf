package comparison

import (
	"time"

	"toolvault/internal/shared/biztime"
)

// Comparison records a compare request made by an authenticated user. The
// comparison itself is resolved from the request payload; rows exist only as
// a usage trail.
type Comparison struct {
	id        uint
	userID    uint
	toolIDs   []uint
	createdAt time.Time
}

func NewComparison(userID uint, toolIDs []uint) *Comparison {
	return &Comparison{
		userID:    userID,
		toolIDs:   toolIDs,
		createdAt: biztime.NowUTC(),
	}
}

func ReconstructComparison(id, userID uint, toolIDs []uint, createdAt time.Time) *Comparison {
	return &Comparison{
		id:        id,
		userID:    userID,
		toolIDs:   toolIDs,
		createdAt: createdAt,
	}
}

func (c *Comparison) SetID(id uint) {
	c.id = id
}

func (c *Comparison) ID() uint             { return c.id }
func (c *Comparison) UserID() uint         { return c.userID }
func (c *Comparison) ToolIDs() []uint      { return c.toolIDs }
func (c *Comparison) CreatedAt() time.Time { return c.createdAt }
