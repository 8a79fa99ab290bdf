package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/comparison"
	"toolvault/internal/shared/constants"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

// CompareToolsCommand selects 1-3 tools by id. Duplicate ids collapse before
// the bound check; ids of unknown or non-live tools are dropped from the
// result without error. UserID is nil for anonymous callers.
type CompareToolsCommand struct {
	ToolIDs []uint
	UserID  *uint
}

type CompareToolsUseCase struct {
	toolRepo       catalog.ToolRepository
	comparisonRepo comparison.Repository
	logger         logger.Interface
}

func NewCompareToolsUseCase(
	toolRepo catalog.ToolRepository,
	comparisonRepo comparison.Repository,
	logger logger.Interface,
) *CompareToolsUseCase {
	return &CompareToolsUseCase{
		toolRepo:       toolRepo,
		comparisonRepo: comparisonRepo,
		logger:         logger,
	}
}

func (uc *CompareToolsUseCase) Execute(ctx context.Context, cmd CompareToolsCommand) ([]*catalog.Tool, error) {
	ids := dedupIDs(cmd.ToolIDs)
	if len(ids) < constants.MinCompareTools || len(ids) > constants.MaxCompareTools {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"comparison requires between %d and %d distinct tools",
			constants.MinCompareTools, constants.MaxCompareTools))
	}

	tools, err := uc.toolRepo.ListLiveByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load comparison tools", "error", err)
		return nil, fmt.Errorf("failed to load comparison tools: %w", err)
	}

	if cmd.UserID != nil {
		record := comparison.NewComparison(*cmd.UserID, ids)
		if err := uc.comparisonRepo.Create(ctx, record); err != nil {
			// Usage trail only; never fail the comparison over it.
			uc.logger.Warnw("failed to record comparison", "error", err, "user_id", *cmd.UserID)
		}
	}

	return tools, nil
}

func dedupIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
