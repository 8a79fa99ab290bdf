package dto

import (
	"toolvault/internal/domain/review"
	"toolvault/internal/shared/biztime"
)

// ReviewDTO is the API shape of a review.
type ReviewDTO struct {
	ID           uint   `json:"id"`
	ToolID       uint   `json:"toolId"`
	UserID       uint   `json:"userId"`
	Rating       int    `json:"rating"`
	Experience   string `json:"experience"`
	Dislikes     string `json:"dislikes,omitempty"`
	Improvements string `json:"improvements,omitempty"`
	IsApproved   bool   `json:"isApproved"`
	CreatedAt    string `json:"createdAt"`
}

func ReviewToDTO(r *review.Review) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:           r.ID(),
		ToolID:       r.ToolID(),
		UserID:       r.UserID(),
		Rating:       r.Rating(),
		Experience:   r.Experience(),
		Dislikes:     r.Dislikes(),
		Improvements: r.Improvements(),
		IsApproved:   r.IsApproved(),
		CreatedAt:    biztime.FormatAPI(r.CreatedAt()),
	}
}

func ReviewsToDTO(reviews []*review.Review) []*ReviewDTO {
	out := make([]*ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewToDTO(r))
	}
	return out
}
