package catalog

import (
	"fmt"
	"strings"
	"time"

	"toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/shared/biztime"
)

// FAQ is a question/answer pair shown on a tool's detail page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PricingTier describes one plan of a tool's pricing page.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// Tool is the aggregate root of the catalog. A tool enters the directory as
// a pending submission and becomes publicly visible only once moderation
// approves it.
type Tool struct {
	id               uint
	name             string
	slug             string
	shortDescription string
	longDescription  string
	website          string
	featuredImage    string
	pricingModel     valueobjects.PricingModel
	difficultyLevel  valueobjects.DifficultyLevel
	categoryID       *uint
	keyFeatures      []string
	targetAudience   []string
	integrations     []string
	socialLinks      []string
	videos           []string
	pros             []string
	cons             []string
	faqs             []FAQ
	pricingTiers     []PricingTier
	scores           *valueobjects.EvaluationScores
	overallScore     *float64
	status           valueobjects.Status
	isVerified       bool
	isFeatured       bool
	isPremiumListing bool
	views            uint
	submittedBy      *uint
	createdAt        time.Time
	updatedAt        time.Time
}

// NewToolParams carries the caller-supplied fields of a submission.
type NewToolParams struct {
	Name             string
	Slug             string
	ShortDescription string
	LongDescription  string
	Website          string
	FeaturedImage    string
	PricingModel     valueobjects.PricingModel
	DifficultyLevel  valueobjects.DifficultyLevel
	CategoryID       *uint
	KeyFeatures      []string
	TargetAudience   []string
	Integrations     []string
	SocialLinks      []string
	Videos           []string
	Pros             []string
	Cons             []string
	Faqs             []FAQ
	PricingTiers     []PricingTier
}

// NewTool creates a pending submission. The submitter's premium standing at
// submission time is snapshotted into the listing flags and does not change
// retroactively if the account later up- or downgrades.
func NewTool(p NewToolParams, submitterID uint, submitterPremium bool) (*Tool, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("tool name cannot be empty")
	}
	if strings.TrimSpace(p.Slug) == "" {
		return nil, fmt.Errorf("tool slug cannot be empty")
	}
	if strings.TrimSpace(p.Website) == "" {
		return nil, fmt.Errorf("tool website cannot be empty")
	}

	now := biztime.NowUTC()
	return &Tool{
		name:             name,
		slug:             p.Slug,
		shortDescription: strings.TrimSpace(p.ShortDescription),
		longDescription:  p.LongDescription,
		website:          p.Website,
		featuredImage:    p.FeaturedImage,
		pricingModel:     p.PricingModel,
		difficultyLevel:  p.DifficultyLevel,
		categoryID:       p.CategoryID,
		keyFeatures:      p.KeyFeatures,
		targetAudience:   p.TargetAudience,
		integrations:     p.Integrations,
		socialLinks:      p.SocialLinks,
		videos:           p.Videos,
		pros:             p.Pros,
		cons:             p.Cons,
		faqs:             p.Faqs,
		pricingTiers:     p.PricingTiers,
		status:           valueobjects.StatusPending,
		isVerified:       submitterPremium,
		isPremiumListing: submitterPremium,
		submittedBy:      &submitterID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ToolAttrs reconstructs a tool from persistence.
type ToolAttrs struct {
	ID               uint
	Name             string
	Slug             string
	ShortDescription string
	LongDescription  string
	Website          string
	FeaturedImage    string
	PricingModel     valueobjects.PricingModel
	DifficultyLevel  valueobjects.DifficultyLevel
	CategoryID       *uint
	KeyFeatures      []string
	TargetAudience   []string
	Integrations     []string
	SocialLinks      []string
	Videos           []string
	Pros             []string
	Cons             []string
	Faqs             []FAQ
	PricingTiers     []PricingTier
	Scores           *valueobjects.EvaluationScores
	OverallScore     *float64
	Status           valueobjects.Status
	IsVerified       bool
	IsFeatured       bool
	IsPremiumListing bool
	Views            uint
	SubmittedBy      *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructTool(a ToolAttrs) *Tool {
	return &Tool{
		id:               a.ID,
		name:             a.Name,
		slug:             a.Slug,
		shortDescription: a.ShortDescription,
		longDescription:  a.LongDescription,
		website:          a.Website,
		featuredImage:    a.FeaturedImage,
		pricingModel:     a.PricingModel,
		difficultyLevel:  a.DifficultyLevel,
		categoryID:       a.CategoryID,
		keyFeatures:      a.KeyFeatures,
		targetAudience:   a.TargetAudience,
		integrations:     a.Integrations,
		socialLinks:      a.SocialLinks,
		videos:           a.Videos,
		pros:             a.Pros,
		cons:             a.Cons,
		faqs:             a.Faqs,
		pricingTiers:     a.PricingTiers,
		scores:           a.Scores,
		overallScore:     a.OverallScore,
		status:           a.Status,
		isVerified:       a.IsVerified,
		isFeatured:       a.IsFeatured,
		isPremiumListing: a.IsPremiumListing,
		views:            a.Views,
		submittedBy:      a.SubmittedBy,
		createdAt:        a.CreatedAt,
		updatedAt:        a.UpdatedAt,
	}
}

// Approve publishes a pending submission.
func (t *Tool) Approve() error {
	if !t.status.CanTransitionTo(valueobjects.StatusLive) {
		return fmt.Errorf("cannot approve tool in status %s", t.status)
	}
	t.status = valueobjects.StatusLive
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Reject declines a pending submission.
func (t *Tool) Reject() error {
	if !t.status.CanTransitionTo(valueobjects.StatusRejected) {
		return fmt.Errorf("cannot reject tool in status %s", t.status)
	}
	t.status = valueobjects.StatusRejected
	t.updatedAt = biztime.NowUTC()
	return nil
}

// SetFeatured toggles homepage placement. Only live tools can be featured.
func (t *Tool) SetFeatured(featured bool) error {
	if featured && !t.status.IsLive() {
		return fmt.Errorf("only live tools can be featured")
	}
	t.isFeatured = featured
	t.updatedAt = biztime.NowUTC()
	return nil
}

// SetScores records editorial evaluation scores and the derived overall.
func (t *Tool) SetScores(scores *valueobjects.EvaluationScores) {
	t.scores = scores
	if scores != nil {
		overall := scores.Overall()
		t.overallScore = &overall
	} else {
		t.overallScore = nil
	}
	t.updatedAt = biztime.NowUTC()
}

func (t *Tool) SetID(id uint) {
	t.id = id
}

func (t *Tool) ID() uint                                       { return t.id }
func (t *Tool) Name() string                                   { return t.name }
func (t *Tool) Slug() string                                   { return t.slug }
func (t *Tool) ShortDescription() string                       { return t.shortDescription }
func (t *Tool) LongDescription() string                        { return t.longDescription }
func (t *Tool) Website() string                                { return t.website }
func (t *Tool) FeaturedImage() string                          { return t.featuredImage }
func (t *Tool) PricingModel() valueobjects.PricingModel        { return t.pricingModel }
func (t *Tool) DifficultyLevel() valueobjects.DifficultyLevel  { return t.difficultyLevel }
func (t *Tool) CategoryID() *uint                              { return t.categoryID }
func (t *Tool) KeyFeatures() []string                          { return t.keyFeatures }
func (t *Tool) TargetAudience() []string                       { return t.targetAudience }
func (t *Tool) Integrations() []string                         { return t.integrations }
func (t *Tool) SocialLinks() []string                          { return t.socialLinks }
func (t *Tool) Videos() []string                               { return t.videos }
func (t *Tool) Pros() []string                                 { return t.pros }
func (t *Tool) Cons() []string                                 { return t.cons }
func (t *Tool) Faqs() []FAQ                                    { return t.faqs }
func (t *Tool) PricingTiers() []PricingTier                    { return t.pricingTiers }
func (t *Tool) Scores() *valueobjects.EvaluationScores         { return t.scores }
func (t *Tool) OverallScore() *float64                         { return t.overallScore }
func (t *Tool) Status() valueobjects.Status                    { return t.status }
func (t *Tool) IsVerified() bool                               { return t.isVerified }
func (t *Tool) IsFeatured() bool                               { return t.isFeatured }
func (t *Tool) IsPremiumListing() bool                         { return t.isPremiumListing }
func (t *Tool) Views() uint                                    { return t.views }
func (t *Tool) SubmittedBy() *uint                             { return t.submittedBy }
func (t *Tool) CreatedAt() time.Time                           { return t.createdAt }
func (t *Tool) UpdatedAt() time.Time                           { return t.updatedAt }
