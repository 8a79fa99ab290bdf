package dto

import (
	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/biztime"
)

// ScoresDTO carries the editorial evaluation scores.
type ScoresDTO struct {
	EaseOfUse   float64 `json:"easeOfUse"`
	Features    float64 `json:"features"`
	Support     float64 `json:"support"`
	Pricing     float64 `json:"pricing"`
	Integration float64 `json:"integration"`
}

// ToolSummaryDTO is the listing shape: enough to render a card, without the
// long-form detail fields.
type ToolSummaryDTO struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	FeaturedImage    string   `json:"featuredImage,omitempty"`
	PricingModel     string   `json:"pricingModel"`
	DifficultyLevel  string   `json:"difficultyLevel"`
	CategoryID       *uint    `json:"categoryId,omitempty"`
	OverallScore     *float64 `json:"overallScore,omitempty"`
	IsVerified       bool     `json:"isVerified"`
	IsFeatured       bool     `json:"isFeatured"`
	IsPremiumListing bool     `json:"isPremiumListing"`
	Views            uint     `json:"views"`
	Status           string   `json:"status,omitempty"`
	CreatedAt        string   `json:"createdAt"`
}

// ToolDetailDTO is the full detail shape, including the rendered long
// description.
type ToolDetailDTO struct {
	ToolSummaryDTO
	LongDescription     string                `json:"longDescription,omitempty"`
	LongDescriptionHTML string                `json:"longDescriptionHtml,omitempty"`
	Website             string                `json:"website"`
	KeyFeatures         []string              `json:"keyFeatures,omitempty"`
	TargetAudience      []string              `json:"targetAudience,omitempty"`
	Integrations        []string              `json:"integrations,omitempty"`
	SocialLinks         []string              `json:"socialLinks,omitempty"`
	Videos              []string              `json:"videos,omitempty"`
	Pros                []string              `json:"pros,omitempty"`
	Cons                []string              `json:"cons,omitempty"`
	Faqs                []catalog.FAQ         `json:"faqs,omitempty"`
	PricingTiers        []catalog.PricingTier `json:"pricingTiers,omitempty"`
	Scores              *ScoresDTO            `json:"scores,omitempty"`
}

func ToolToSummaryDTO(t *catalog.Tool) *ToolSummaryDTO {
	if t == nil {
		return nil
	}
	return &ToolSummaryDTO{
		ID:               t.ID(),
		Name:             t.Name(),
		Slug:             t.Slug(),
		ShortDescription: t.ShortDescription(),
		FeaturedImage:    t.FeaturedImage(),
		PricingModel:     t.PricingModel().String(),
		DifficultyLevel:  t.DifficultyLevel().String(),
		CategoryID:       t.CategoryID(),
		OverallScore:     t.OverallScore(),
		IsVerified:       t.IsVerified(),
		IsFeatured:       t.IsFeatured(),
		IsPremiumListing: t.IsPremiumListing(),
		Views:            t.Views(),
		Status:           t.Status().String(),
		CreatedAt:        biztime.FormatAPI(t.CreatedAt()),
	}
}

func ToolsToSummaryDTO(tools []*catalog.Tool) []*ToolSummaryDTO {
	out := make([]*ToolSummaryDTO, 0, len(tools))
	for _, t := range tools {
		out = append(out, ToolToSummaryDTO(t))
	}
	return out
}

// ToolToDetailDTO builds the detail shape. longDescriptionHTML is rendered
// by the caller so the DTO layer stays free of markdown concerns.
func ToolToDetailDTO(t *catalog.Tool, longDescriptionHTML string) *ToolDetailDTO {
	if t == nil {
		return nil
	}
	detail := &ToolDetailDTO{
		ToolSummaryDTO:      *ToolToSummaryDTO(t),
		LongDescription:     t.LongDescription(),
		LongDescriptionHTML: longDescriptionHTML,
		Website:             t.Website(),
		KeyFeatures:         t.KeyFeatures(),
		TargetAudience:      t.TargetAudience(),
		Integrations:        t.Integrations(),
		SocialLinks:         t.SocialLinks(),
		Videos:              t.Videos(),
		Pros:                t.Pros(),
		Cons:                t.Cons(),
		Faqs:                t.Faqs(),
		PricingTiers:        t.PricingTiers(),
	}
	if s := t.Scores(); s != nil {
		detail.Scores = &ScoresDTO{
			EaseOfUse:   s.EaseOfUse(),
			Features:    s.Features(),
			Support:     s.Support(),
			Pricing:     s.Pricing(),
			Integration: s.Integration(),
		}
	}
	return detail
}
