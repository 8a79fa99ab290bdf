package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/infrastructure/persistence/models"
)

func ToolToModel(t *catalog.Tool) (*models.ToolModel, error) {
	faqs, err := marshalJSON(t.Faqs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal faqs: %w", err)
	}
	tiers, err := marshalJSON(t.PricingTiers())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing tiers: %w", err)
	}

	m := &models.ToolModel{
		ID:               t.ID(),
		Name:             t.Name(),
		Slug:             t.Slug(),
		ShortDescription: t.ShortDescription(),
		LongDescription:  t.LongDescription(),
		Website:          t.Website(),
		FeaturedImage:    t.FeaturedImage(),
		PricingModel:     t.PricingModel().String(),
		DifficultyLevel:  t.DifficultyLevel().String(),
		CategoryID:       t.CategoryID(),
		KeyFeatures:      models.StringList(t.KeyFeatures()),
		TargetAudience:   models.StringList(t.TargetAudience()),
		Integrations:     models.StringList(t.Integrations()),
		SocialLinks:      models.StringList(t.SocialLinks()),
		Videos:           models.StringList(t.Videos()),
		Pros:             models.StringList(t.Pros()),
		Cons:             models.StringList(t.Cons()),
		Faqs:             faqs,
		PricingTiers:     tiers,
		OverallScore:     t.OverallScore(),
		Status:           t.Status().String(),
		IsVerified:       t.IsVerified(),
		IsFeatured:       t.IsFeatured(),
		IsPremiumListing: t.IsPremiumListing(),
		Views:            t.Views(),
		SubmittedBy:      t.SubmittedBy(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}

	if s := t.Scores(); s != nil {
		easeOfUse := s.EaseOfUse()
		features := s.Features()
		support := s.Support()
		pricing := s.Pricing()
		integration := s.Integration()
		m.EaseOfUseScore = &easeOfUse
		m.FeaturesScore = &features
		m.SupportScore = &support
		m.PricingScore = &pricing
		m.IntegrationScore = &integration
	}

	return m, nil
}

func ToolToDomain(m *models.ToolModel) (*catalog.Tool, error) {
	pricingModel, err := vo.NewPricingModel(m.PricingModel)
	if err != nil {
		return nil, fmt.Errorf("invalid stored pricing model: %w", err)
	}
	difficulty, err := vo.NewDifficultyLevel(m.DifficultyLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid stored difficulty level: %w", err)
	}
	status, err := vo.NewStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status: %w", err)
	}

	var faqs []catalog.FAQ
	if err := unmarshalJSON(m.Faqs, &faqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal faqs: %w", err)
	}
	var tiers []catalog.PricingTier
	if err := unmarshalJSON(m.PricingTiers, &tiers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pricing tiers: %w", err)
	}

	var scores *vo.EvaluationScores
	if m.EaseOfUseScore != nil && m.FeaturesScore != nil && m.SupportScore != nil &&
		m.PricingScore != nil && m.IntegrationScore != nil {
		scores, err = vo.NewEvaluationScores(
			*m.EaseOfUseScore, *m.FeaturesScore, *m.SupportScore, *m.PricingScore, *m.IntegrationScore)
		if err != nil {
			return nil, fmt.Errorf("invalid stored scores: %w", err)
		}
	}

	return catalog.ReconstructTool(catalog.ToolAttrs{
		ID:               m.ID,
		Name:             m.Name,
		Slug:             m.Slug,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
		Website:          m.Website,
		FeaturedImage:    m.FeaturedImage,
		PricingModel:     pricingModel,
		DifficultyLevel:  difficulty,
		CategoryID:       m.CategoryID,
		KeyFeatures:      m.KeyFeatures,
		TargetAudience:   m.TargetAudience,
		Integrations:     m.Integrations,
		SocialLinks:      m.SocialLinks,
		Videos:           m.Videos,
		Pros:             m.Pros,
		Cons:             m.Cons,
		Faqs:             faqs,
		PricingTiers:     tiers,
		Scores:           scores,
		OverallScore:     m.OverallScore,
		Status:           status,
		IsVerified:       m.IsVerified,
		IsFeatured:       m.IsFeatured,
		IsPremiumListing: m.IsPremiumListing,
		Views:            m.Views,
		SubmittedBy:      m.SubmittedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}), nil
}

func ToolsToDomain(ms []*models.ToolModel) ([]*catalog.Tool, error) {
	out := make([]*catalog.Tool, 0, len(ms))
	for _, m := range ms {
		t, err := ToolToDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func unmarshalJSON(data datatypes.JSON, target interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
