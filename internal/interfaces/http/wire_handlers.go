package http

import (
	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/shared/logger"
)

// handlerSet groups the HTTP handlers mounted by the router.
type handlerSet struct {
	tool     *handlers.ToolHandler
	category *handlers.CategoryHandler
	review   *handlers.ReviewHandler
	favorite *handlers.FavoriteHandler
	auth     *handlers.AuthHandler
	billing  *handlers.BillingHandler
	admin    *handlers.AdminHandler
}

func buildHandlers(uc *useCases, log logger.Interface) *handlerSet {
	return &handlerSet{
		tool: handlers.NewToolHandler(
			uc.listTools, uc.featuredTools, uc.getTool,
			uc.createTool, uc.compareTools, uc.listUserTools,
			log,
		),
		category: handlers.NewCategoryHandler(uc.listCategories, uc.getCategory, log),
		review:   handlers.NewReviewHandler(uc.createReview, uc.listToolReviews, log),
		favorite: handlers.NewFavoriteHandler(uc.addFavorite, uc.removeFavorite, uc.listFavorites, log),
		auth: handlers.NewAuthHandler(
			uc.register, uc.login, uc.refreshToken, uc.logout,
			uc.currentUser, uc.initiateOAuth, uc.handleOAuth,
			log,
		),
		billing: handlers.NewBillingHandler(uc.paymentIntent, uc.subscription, uc.confirmUpgrade, log),
		admin: handlers.NewAdminHandler(
			uc.pendingTools, uc.approveTool, uc.rejectTool, uc.featureTool,
			uc.pendingReviews, uc.approveReview, uc.createCategory,
			log,
		),
	}
}
