package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/application/catalog/dto"
	catalogusecases "toolvault/internal/application/catalog/usecases"
	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type ToolHandler struct {
	listUseCase     listToolsUseCase
	featuredUseCase getFeaturedToolsUseCase
	getUseCase      getToolUseCase
	createUseCase   createToolUseCase
	compareUseCase  compareToolsUseCase
	myToolsUseCase  listUserToolsUseCase
	logger          logger.Interface
}

func NewToolHandler(
	listUC listToolsUseCase,
	featuredUC getFeaturedToolsUseCase,
	getUC getToolUseCase,
	createUC createToolUseCase,
	compareUC compareToolsUseCase,
	myToolsUC listUserToolsUseCase,
	logger logger.Interface,
) *ToolHandler {
	return &ToolHandler{
		listUseCase:     listUC,
		featuredUseCase: featuredUC,
		getUseCase:      getUC,
		createUseCase:   createUC,
		compareUseCase:  compareUC,
		myToolsUseCase:  myToolsUC,
		logger:          logger,
	}
}

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type PricingTierRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    string   `json:"price" binding:"required"`
	Features []string `json:"features"`
}

type ScoresRequest struct {
	EaseOfUse   float64 `json:"easeOfUse" binding:"required"`
	Features    float64 `json:"features" binding:"required"`
	Support     float64 `json:"support" binding:"required"`
	Pricing     float64 `json:"pricing" binding:"required"`
	Integration float64 `json:"integration" binding:"required"`
}

type CompareToolsRequest struct {
	ToolIDs []uint `json:"toolIds" binding:"required"`
}

type CreateToolRequest struct {
	Name             string               `json:"name" binding:"required,min=2,max=200"`
	ShortDescription string               `json:"shortDescription" binding:"required,max=500"`
	LongDescription  string               `json:"longDescription"`
	Website          string               `json:"website" binding:"required,url"`
	FeaturedImage    string               `json:"featuredImage"`
	PricingModel     string               `json:"pricingModel" binding:"required"`
	DifficultyLevel  string               `json:"difficultyLevel" binding:"required"`
	CategoryID       *uint                `json:"categoryId"`
	KeyFeatures      []string             `json:"keyFeatures"`
	TargetAudience   []string             `json:"targetAudience"`
	Integrations     []string             `json:"integrations"`
	SocialLinks      []string             `json:"socialLinks"`
	Videos           []string             `json:"videos"`
	Pros             []string             `json:"pros"`
	Cons             []string             `json:"cons"`
	Faqs             []FAQRequest         `json:"faqs"`
	PricingTiers     []PricingTierRequest `json:"pricingTiers"`
	Scores           *ScoresRequest       `json:"scores"`
}

// ListTools godoc
// @Summary List live tools
// @Description Filterable, sortable, paginated listing of the live catalog
// @Tags tools
// @Produce json
// @Param category query string false "Category slug"
// @Param pricingModel query string false "Pricing model" Enums(Free, Freemium, Paid, Custom)
// @Param difficultyLevel query string false "Difficulty level" Enums(Beginner, Intermediate, Expert)
// @Param search query string false "Search term"
// @Param sortBy query string false "Sort key" Enums(popularity, name, rating, newest)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.APIResponse
// @Router /api/tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	window := utils.ParseListWindow(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), catalogusecases.ListToolsQuery{
		CategorySlug:    c.Query("category"),
		PricingModel:    c.Query("pricingModel"),
		DifficultyLevel: c.Query("difficultyLevel"),
		Search:          c.Query("search"),
		SortBy:          c.Query("sortBy"),
		Limit:           window.Limit,
		Offset:          window.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", utils.ToolListResponse{
		Tools: dto.ToolsToSummaryDTO(result.Tools),
		Total: result.Total,
	})
}

// GetFeaturedTools godoc
// @Summary List featured tools
// @Tags tools
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/tools/featured [get]
func (h *ToolHandler) GetFeaturedTools(c *gin.Context) {
	tools, err := h.featuredUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToolsToSummaryDTO(tools))
}

// GetTool godoc
// @Summary Get a tool by slug
// @Description Returns the full detail of one live tool and counts the view
// @Tags tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tools/{slug} [get]
func (h *ToolHandler) GetTool(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), catalogusecases.GetToolQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToolToDetailDTO(result.Tool, result.LongDescriptionHTML))
}

// CreateTool godoc
// @Summary Submit a tool
// @Description Submissions enter the moderation queue as pending
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateToolRequest true "Submission"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	cmd := catalogusecases.CreateToolCommand{
		SubmitterID:      userID,
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Website:          req.Website,
		FeaturedImage:    req.FeaturedImage,
		PricingModel:     req.PricingModel,
		DifficultyLevel:  req.DifficultyLevel,
		CategoryID:       req.CategoryID,
		KeyFeatures:      req.KeyFeatures,
		TargetAudience:   req.TargetAudience,
		Integrations:     req.Integrations,
		SocialLinks:      req.SocialLinks,
		Videos:           req.Videos,
		Pros:             req.Pros,
		Cons:             req.Cons,
		Faqs:             toFAQs(req.Faqs),
		PricingTiers:     toPricingTiers(req.PricingTiers),
	}
	if req.Scores != nil {
		cmd.Scores = &catalogusecases.ScoresInput{
			EaseOfUse:   req.Scores.EaseOfUse,
			Features:    req.Scores.Features,
			Support:     req.Scores.Support,
			Pricing:     req.Scores.Pricing,
			Integration: req.Scores.Integration,
		}
	}

	tool, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "submission received and awaiting review", dto.ToolToSummaryDTO(tool))
}

// CompareTools godoc
// @Summary Compare tools side by side
// @Description Accepts 1-3 distinct tool ids; unknown and non-live ids are dropped
// @Tags tools
// @Accept json
// @Produce json
// @Param request body CompareToolsRequest true "Tool ids to compare"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools/compare [post]
func (h *ToolHandler) CompareTools(c *gin.Context) {
	var req CompareToolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := catalogusecases.CompareToolsCommand{ToolIDs: req.ToolIDs}
	if userID, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := userID.(uint); ok {
			cmd.UserID = &id
		}
	}

	tools, err := h.compareUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToolsToSummaryDTO(tools))
}

// ListMyTools godoc
// @Summary List the caller's submissions
// @Tags tools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/user/tools [get]
func (h *ToolHandler) ListMyTools(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	tools, err := h.myToolsUseCase.Execute(c.Request.Context(), catalogusecases.ListUserToolsQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToolsToSummaryDTO(tools))
}

func toFAQs(reqs []FAQRequest) []catalog.FAQ {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]catalog.FAQ, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, catalog.FAQ{Question: r.Question, Answer: r.Answer})
	}
	return out
}

func toPricingTiers(reqs []PricingTierRequest) []catalog.PricingTier {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]catalog.PricingTier, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, catalog.PricingTier{Name: r.Name, Price: r.Price, Features: r.Features})
	}
	return out
}
