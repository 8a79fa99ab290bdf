package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/catalog/valueobjects"
)

func newTestTool(t *testing.T, premium bool) *Tool {
	t.Helper()
	tool, err := NewTool(NewToolParams{
		Name:             "ChatGPT",
		Slug:             "chatgpt",
		ShortDescription: "Conversational AI assistant",
		Website:          "https://chat.openai.com",
		PricingModel:     valueobjects.PricingFreemium,
		DifficultyLevel:  valueobjects.DifficultyBeginner,
	}, 42, premium)
	require.NoError(t, err)
	return tool
}

func TestNewTool_StartsPending(t *testing.T) {
	tool := newTestTool(t, false)

	assert.Equal(t, valueobjects.StatusPending, tool.Status())
	assert.False(t, tool.IsFeatured())
	assert.Equal(t, uint(0), tool.Views())
	require.NotNil(t, tool.SubmittedBy())
	assert.Equal(t, uint(42), *tool.SubmittedBy())
}

func TestNewTool_SnapshotsSubmitterPremium(t *testing.T) {
	free := newTestTool(t, false)
	assert.False(t, free.IsVerified())
	assert.False(t, free.IsPremiumListing())

	premium := newTestTool(t, true)
	assert.True(t, premium.IsVerified())
	assert.True(t, premium.IsPremiumListing())
}

func TestNewTool_RequiredFields(t *testing.T) {
	_, err := NewTool(NewToolParams{Slug: "x", Website: "https://x.dev"}, 1, false)
	assert.Error(t, err)

	_, err = NewTool(NewToolParams{Name: "X", Website: "https://x.dev"}, 1, false)
	assert.Error(t, err)

	_, err = NewTool(NewToolParams{Name: "X", Slug: "x"}, 1, false)
	assert.Error(t, err)
}

func TestTool_ApproveRejectTransitions(t *testing.T) {
	tool := newTestTool(t, false)

	require.NoError(t, tool.Approve())
	assert.Equal(t, valueobjects.StatusLive, tool.Status())

	assert.Error(t, tool.Approve(), "live is terminal")
	assert.Error(t, tool.Reject(), "live is terminal")

	rejected := newTestTool(t, false)
	require.NoError(t, rejected.Reject())
	assert.Equal(t, valueobjects.StatusRejected, rejected.Status())
	assert.Error(t, rejected.Approve(), "rejected is terminal")
}

func TestTool_SetFeatured_LiveOnly(t *testing.T) {
	tool := newTestTool(t, false)

	assert.Error(t, tool.SetFeatured(true))
	assert.False(t, tool.IsFeatured())

	require.NoError(t, tool.Approve())
	require.NoError(t, tool.SetFeatured(true))
	assert.True(t, tool.IsFeatured())

	require.NoError(t, tool.SetFeatured(false))
	assert.False(t, tool.IsFeatured())
}

func TestTool_SetScores(t *testing.T) {
	tool := newTestTool(t, false)

	scores, err := valueobjects.NewEvaluationScores(8, 9, 7, 6, 8)
	require.NoError(t, err)

	tool.SetScores(scores)
	require.NotNil(t, tool.OverallScore())
	assert.InDelta(t, 7.6, *tool.OverallScore(), 0.001)

	tool.SetScores(nil)
	assert.Nil(t, tool.OverallScore())
}

func TestEvaluationScores_Bounds(t *testing.T) {
	_, err := valueobjects.NewEvaluationScores(0, 5, 5, 5, 5)
	assert.Error(t, err)

	_, err = valueobjects.NewEvaluationScores(5, 11, 5, 5, 5)
	assert.Error(t, err)

	_, err = valueobjects.NewEvaluationScores(1, 10, 5, 5, 5)
	assert.NoError(t, err)
}
