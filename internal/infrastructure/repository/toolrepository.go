package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
	apperrors "toolvault/internal/shared/errors"
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Create(ctx context.Context, tool *catalog.Tool) error {
	model, err := mappers.ToolToModel(tool)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tool: %w", err)
	}

	tool.SetID(model.ID)
	return nil
}

func (r *ToolRepository) Update(ctx context.Context, tool *catalog.Tool) error {
	model, err := mappers.ToolToModel(tool)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ToolModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":               model.Name,
			"short_description":  model.ShortDescription,
			"long_description":   model.LongDescription,
			"website":            model.Website,
			"featured_image":     model.FeaturedImage,
			"pricing_model":      model.PricingModel,
			"difficulty_level":   model.DifficultyLevel,
			"category_id":        model.CategoryID,
			"key_features":       model.KeyFeatures,
			"target_audience":    model.TargetAudience,
			"integrations":       model.Integrations,
			"social_links":       model.SocialLinks,
			"videos":             model.Videos,
			"pros":               model.Pros,
			"cons":               model.Cons,
			"faqs":               model.Faqs,
			"pricing_tiers":      model.PricingTiers,
			"ease_of_use_score":  model.EaseOfUseScore,
			"features_score":     model.FeaturesScore,
			"support_score":      model.SupportScore,
			"pricing_score":      model.PricingScore,
			"integration_score":  model.IntegrationScore,
			"overall_score":      model.OverallScore,
			"status":             model.Status,
			"is_verified":        model.IsVerified,
			"is_featured":        model.IsFeatured,
			"is_premium_listing": model.IsPremiumListing,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update tool: %w", result.Error)
	}
	return nil
}

func (r *ToolRepository) GetByID(ctx context.Context, id uint) (*catalog.Tool, error) {
	var model models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("tool not found")
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return mappers.ToolToDomain(&model)
}

func (r *ToolRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Tool, error) {
	var model models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("tool not found")
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return mappers.ToolToDomain(&model)
}

func (r *ToolRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ToolModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// List serves the public catalog listing. The count and the page share one
// predicate so total always matches the filter.
func (r *ToolRepository) List(ctx context.Context, filter catalog.ListToolsFilter) ([]*catalog.Tool, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ToolModel{}).
		Where("status = ?", vo.StatusLive.String())

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PricingModel != nil {
		query = query.Where("pricing_model = ?", filter.PricingModel.String())
	}
	if filter.DifficultyLevel != nil {
		query = query.Where("difficulty_level = ?", filter.DifficultyLevel.String())
	}
	if filter.Search != "" {
		// The escape character is bound as a parameter so MySQL and SQLite
		// read the same byte; a '\\' literal parses differently on each.
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where(
			"(LOWER(name) LIKE LOWER(?) ESCAPE ? OR LOWER(short_description) LIKE LOWER(?) ESCAPE ?)",
			pattern, `\`, pattern, `\`,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tools: %w", err)
	}

	var ms []*models.ToolModel
	if err := query.
		Order(orderClause(filter.Sort)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tools: %w", err)
	}

	tools, err := mappers.ToolsToDomain(ms)
	if err != nil {
		return nil, 0, err
	}
	return tools, total, nil
}

func (r *ToolRepository) ListFeatured(ctx context.Context, limit int) ([]*catalog.Tool, error) {
	var ms []*models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND is_featured = ?", vo.StatusLive.String(), true).
		Order("views DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured tools: %w", err)
	}
	return mappers.ToolsToDomain(ms)
}

func (r *ToolRepository) ListBySubmitter(ctx context.Context, userID uint) ([]*catalog.Tool, error) {
	var ms []*models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("submitted_by = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list tools by submitter: %w", err)
	}
	return mappers.ToolsToDomain(ms)
}

func (r *ToolRepository) ListPending(ctx context.Context) ([]*catalog.Tool, error) {
	var ms []*models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.StatusPending.String()).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending tools: %w", err)
	}
	return mappers.ToolsToDomain(ms)
}

func (r *ToolRepository) ListLiveByIDs(ctx context.Context, ids []uint) ([]*catalog.Tool, error) {
	if len(ids) == 0 {
		return []*catalog.Tool{}, nil
	}
	var ms []*models.ToolModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ? AND status = ?", ids, vo.StatusLive.String()).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list tools by ids: %w", err)
	}
	return mappers.ToolsToDomain(ms)
}

// IncrementViews is a single atomic UPDATE so concurrent detail reads never
// lose counts.
func (r *ToolRepository) IncrementViews(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ToolModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("tool not found")
	}
	return nil
}

func orderClause(sort vo.SortKey) string {
	switch sort {
	case vo.SortName:
		return "name ASC"
	case vo.SortRating:
		return "overall_score DESC, created_at DESC"
	case vo.SortNewest:
		return "created_at DESC"
	default:
		return "views DESC, created_at DESC"
	}
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
