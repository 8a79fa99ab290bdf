package review

import (
	"fmt"
	"strings"
	"time"

	"toolvault/internal/shared/biztime"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is user feedback on a tool. Every review starts unapproved and is
// hidden from public listings until an admin approves it.
type Review struct {
	id           uint
	toolID       uint
	userID       uint
	rating       int
	experience   string
	dislikes     string
	improvements string
	isApproved   bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReview creates an unapproved review. The approval flag is not a caller
// input; submissions cannot self-approve.
func NewReview(toolID, userID uint, rating int, experience, dislikes, improvements string) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	experience = strings.TrimSpace(experience)
	if experience == "" {
		return nil, fmt.Errorf("review experience cannot be empty")
	}

	now := biztime.NowUTC()
	return &Review{
		toolID:       toolID,
		userID:       userID,
		rating:       rating,
		experience:   experience,
		dislikes:     strings.TrimSpace(dislikes),
		improvements: strings.TrimSpace(improvements),
		isApproved:   false,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReview(id, toolID, userID uint, rating int, experience, dislikes, improvements string, isApproved bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		toolID:       toolID,
		userID:       userID,
		rating:       rating,
		experience:   experience,
		dislikes:     dislikes,
		improvements: improvements,
		isApproved:   isApproved,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Approve makes the review publicly visible.
func (r *Review) Approve() error {
	if r.isApproved {
		return fmt.Errorf("review is already approved")
	}
	r.isApproved = true
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Review) SetID(id uint) {
	r.id = id
}

func (r *Review) ID() uint             { return r.id }
func (r *Review) ToolID() uint         { return r.toolID }
func (r *Review) UserID() uint         { return r.userID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Experience() string   { return r.experience }
func (r *Review) Dislikes() string     { return r.dislikes }
func (r *Review) Improvements() string { return r.improvements }
func (r *Review) IsApproved() bool     { return r.isApproved }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
