package favorite

import (
	"time"

	"toolvault/internal/shared/biztime"
)

// Favorite bookmarks a tool for a user. The (user, tool) pair is unique in
// the store; saving the same pair twice is a no-op.
type Favorite struct {
	id        uint
	userID    uint
	toolID    uint
	createdAt time.Time
}

func NewFavorite(userID, toolID uint) *Favorite {
	return &Favorite{
		userID:    userID,
		toolID:    toolID,
		createdAt: biztime.NowUTC(),
	}
}

func ReconstructFavorite(id, userID, toolID uint, createdAt time.Time) *Favorite {
	return &Favorite{
		id:        id,
		userID:    userID,
		toolID:    toolID,
		createdAt: createdAt,
	}
}

func (f *Favorite) SetID(id uint) {
	f.id = id
}

func (f *Favorite) ID() uint             { return f.id }
func (f *Favorite) UserID() uint         { return f.userID }
func (f *Favorite) ToolID() uint         { return f.toolID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
