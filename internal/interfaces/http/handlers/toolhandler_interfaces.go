package handlers

import (
	"context"

	catalogusecases "toolvault/internal/application/catalog/usecases"
	"toolvault/internal/domain/catalog"
)

// Use case interfaces for ToolHandler - enables unit testing with mocks.

type listToolsUseCase interface {
	Execute(ctx context.Context, query catalogusecases.ListToolsQuery) (*catalogusecases.ListToolsResult, error)
}

type getFeaturedToolsUseCase interface {
	Execute(ctx context.Context) ([]*catalog.Tool, error)
}

type getToolUseCase interface {
	Execute(ctx context.Context, query catalogusecases.GetToolQuery) (*catalogusecases.GetToolResult, error)
}

type createToolUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CreateToolCommand) (*catalog.Tool, error)
}

type compareToolsUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CompareToolsCommand) ([]*catalog.Tool, error)
}

type listUserToolsUseCase interface {
	Execute(ctx context.Context, query catalogusecases.ListUserToolsQuery) ([]*catalog.Tool, error)
}
