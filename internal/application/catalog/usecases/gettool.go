package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/services/markdown"
)

type GetToolQuery struct {
	Slug string
}

type GetToolResult struct {
	Tool                *catalog.Tool
	LongDescriptionHTML string
}

type GetToolUseCase struct {
	toolRepo catalog.ToolRepository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetToolUseCase(
	toolRepo catalog.ToolRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetToolUseCase {
	return &GetToolUseCase{
		toolRepo: toolRepo,
		markdown: markdown,
		logger:   logger,
	}
}

// Execute reads one live tool by slug, counting the view. The increment is a
// storage-level atomic update; the returned snapshot reflects the state
// before this request's view.
func (uc *GetToolUseCase) Execute(ctx context.Context, query GetToolQuery) (*GetToolResult, error) {
	tool, err := uc.toolRepo.GetBySlug(ctx, query.Slug)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get tool", "error", err, "slug", query.Slug)
		}
		return nil, err
	}

	if !tool.Status().IsLive() {
		return nil, apperrors.NewNotFoundError("tool not found")
	}

	if err := uc.toolRepo.IncrementViews(ctx, tool.ID()); err != nil {
		// A lost view count must not fail the read.
		uc.logger.Warnw("failed to increment tool views", "error", err, "tool_id", tool.ID())
	}

	html, err := uc.markdown.ToHTMLSanitized(tool.LongDescription())
	if err != nil {
		uc.logger.Errorw("failed to render tool description", "error", err, "tool_id", tool.ID())
		return nil, fmt.Errorf("failed to render tool description: %w", err)
	}

	return &GetToolResult{Tool: tool, LongDescriptionHTML: html}, nil
}
