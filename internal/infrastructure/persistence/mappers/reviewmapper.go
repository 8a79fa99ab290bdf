package mappers

import (
	"toolvault/internal/domain/review"
	"toolvault/internal/infrastructure/persistence/models"
)

func ReviewToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:           r.ID(),
		ToolID:       r.ToolID(),
		UserID:       r.UserID(),
		Rating:       r.Rating(),
		Experience:   r.Experience(),
		Dislikes:     r.Dislikes(),
		Improvements: r.Improvements(),
		IsApproved:   r.IsApproved(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func ReviewToDomain(m *models.ReviewModel) *review.Review {
	return review.ReconstructReview(
		m.ID, m.ToolID, m.UserID, m.Rating,
		m.Experience, m.Dislikes, m.Improvements,
		m.IsApproved, m.CreatedAt, m.UpdatedAt,
	)
}

func ReviewsToDomain(ms []*models.ReviewModel) []*review.Review {
	out := make([]*review.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, ReviewToDomain(m))
	}
	return out
}
