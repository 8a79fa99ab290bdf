package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/domain/user"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

// CreateToolCommand carries a submission. Status is not an input: every
// submission enters the moderation queue as pending.
type CreateToolCommand struct {
	SubmitterID      uint
	Name             string
	ShortDescription string
	LongDescription  string
	Website          string
	FeaturedImage    string
	PricingModel     string
	DifficultyLevel  string
	CategoryID       *uint
	KeyFeatures      []string
	TargetAudience   []string
	Integrations     []string
	SocialLinks      []string
	Videos           []string
	Pros             []string
	Cons             []string
	Faqs             []catalog.FAQ
	PricingTiers     []catalog.PricingTier
	Scores           *ScoresInput
}

// ScoresInput is the optional evaluation-scores payload.
type ScoresInput struct {
	EaseOfUse   float64
	Features    float64
	Support     float64
	Pricing     float64
	Integration float64
}

type CreateToolUseCase struct {
	toolRepo     catalog.ToolRepository
	categoryRepo catalog.CategoryRepository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewCreateToolUseCase(
	toolRepo catalog.ToolRepository,
	categoryRepo catalog.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateToolUseCase {
	return &CreateToolUseCase{
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *CreateToolUseCase) Execute(ctx context.Context, cmd CreateToolCommand) (*catalog.Tool, error) {
	pricingModel, err := vo.NewPricingModel(cmd.PricingModel)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	difficulty, err := vo.NewDifficultyLevel(cmd.DifficultyLevel)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *cmd.CategoryID); err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewValidationError("category does not exist")
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
	}

	submitter, err := uc.userRepo.GetByID(ctx, cmd.SubmitterID)
	if err != nil {
		uc.logger.Errorw("failed to load submitter", "error", err, "user_id", cmd.SubmitterID)
		return nil, fmt.Errorf("failed to load submitter: %w", err)
	}

	slug := utils.Slugify(cmd.Name)
	if slug == "" {
		return nil, apperrors.NewValidationError("tool name must contain at least one alphanumeric character")
	}
	exists, err := uc.toolRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("a tool with this name already exists")
	}

	tool, err := catalog.NewTool(catalog.NewToolParams{
		Name:             cmd.Name,
		Slug:             slug,
		ShortDescription: cmd.ShortDescription,
		LongDescription:  cmd.LongDescription,
		Website:          cmd.Website,
		FeaturedImage:    cmd.FeaturedImage,
		PricingModel:     pricingModel,
		DifficultyLevel:  difficulty,
		CategoryID:       cmd.CategoryID,
		KeyFeatures:      cmd.KeyFeatures,
		TargetAudience:   cmd.TargetAudience,
		Integrations:     cmd.Integrations,
		SocialLinks:      cmd.SocialLinks,
		Videos:           cmd.Videos,
		Pros:             cmd.Pros,
		Cons:             cmd.Cons,
		Faqs:             cmd.Faqs,
		PricingTiers:     cmd.PricingTiers,
	}, submitter.ID(), submitter.IsPremium())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Scores != nil {
		scores, err := vo.NewEvaluationScores(
			cmd.Scores.EaseOfUse,
			cmd.Scores.Features,
			cmd.Scores.Support,
			cmd.Scores.Pricing,
			cmd.Scores.Integration,
		)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		tool.SetScores(scores)
	}

	if err := uc.toolRepo.Create(ctx, tool); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("a tool with this name already exists")
		}
		uc.logger.Errorw("failed to save tool", "error", err)
		return nil, fmt.Errorf("failed to save tool: %w", err)
	}

	uc.logger.Infow("tool submitted",
		"tool_id", tool.ID(),
		"slug", tool.Slug(),
		"submitted_by", cmd.SubmitterID,
		"premium_listing", tool.IsPremiumListing())

	return tool, nil
}
