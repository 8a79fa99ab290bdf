package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview_ForcesUnapproved(t *testing.T) {
	r, err := NewReview(1, 2, 5, "great for drafting", "", "")
	require.NoError(t, err)

	assert.False(t, r.IsApproved())
	assert.Equal(t, uint(1), r.ToolID())
	assert.Equal(t, uint(2), r.UserID())
}

func TestNewReview_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := NewReview(1, 2, rating, "text", "", "")
		assert.Error(t, err, "rating %d should be rejected", rating)
	}
	for rating := MinRating; rating <= MaxRating; rating++ {
		_, err := NewReview(1, 2, rating, "text", "", "")
		assert.NoError(t, err)
	}
}

func TestNewReview_RequiresExperience(t *testing.T) {
	_, err := NewReview(1, 2, 4, "   ", "", "")
	assert.Error(t, err)
}

func TestReview_Approve(t *testing.T) {
	r, err := NewReview(1, 2, 4, "solid", "", "")
	require.NoError(t, err)

	require.NoError(t, r.Approve())
	assert.True(t, r.IsApproved())

	assert.Error(t, r.Approve(), "double approval should fail")
}
