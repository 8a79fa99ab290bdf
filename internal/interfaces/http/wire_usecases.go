package http

import (
	billingusecases "toolvault/internal/application/billing/usecases"
	catalogusecases "toolvault/internal/application/catalog/usecases"
	favoriteusecases "toolvault/internal/application/favorite/usecases"
	reviewusecases "toolvault/internal/application/review/usecases"
	userusecases "toolvault/internal/application/user/usecases"
	"toolvault/internal/infrastructure/config"
	"toolvault/internal/shared/logger"
)

// useCases groups every application use case the handlers depend on.
type useCases struct {
	// catalog
	listTools      *catalogusecases.ListToolsUseCase
	featuredTools  *catalogusecases.GetFeaturedToolsUseCase
	getTool        *catalogusecases.GetToolUseCase
	createTool     *catalogusecases.CreateToolUseCase
	compareTools   *catalogusecases.CompareToolsUseCase
	listUserTools  *catalogusecases.ListUserToolsUseCase
	listCategories *catalogusecases.ListCategoriesUseCase
	getCategory    *catalogusecases.GetCategoryUseCase
	createCategory *catalogusecases.CreateCategoryUseCase
	pendingTools   *catalogusecases.ListPendingToolsUseCase
	approveTool    *catalogusecases.ApproveToolUseCase
	rejectTool     *catalogusecases.RejectToolUseCase
	featureTool    *catalogusecases.FeatureToolUseCase

	// review
	createReview    *reviewusecases.CreateReviewUseCase
	listToolReviews *reviewusecases.ListToolReviewsUseCase
	pendingReviews  *reviewusecases.ListPendingReviewsUseCase
	approveReview   *reviewusecases.ApproveReviewUseCase

	// favorite
	addFavorite    *favoriteusecases.AddFavoriteUseCase
	removeFavorite *favoriteusecases.RemoveFavoriteUseCase
	listFavorites  *favoriteusecases.ListFavoritesUseCase

	// user
	register      *userusecases.RegisterWithPasswordUseCase
	login         *userusecases.LoginWithPasswordUseCase
	refreshToken  *userusecases.RefreshTokenUseCase
	logout        *userusecases.LogoutUseCase
	currentUser   *userusecases.GetCurrentUserUseCase
	initiateOAuth *userusecases.InitiateOAuthLoginUseCase
	handleOAuth   *userusecases.HandleOAuthCallbackUseCase

	// billing
	paymentIntent  *billingusecases.CreatePaymentIntentUseCase
	subscription   *billingusecases.GetOrCreateSubscriptionUseCase
	confirmUpgrade *billingusecases.ConfirmPremiumUpgradeUseCase
}

func buildUseCases(repos *repositories, svcs *services, cfg *config.Config, log logger.Interface) *useCases {
	return &useCases{
		listTools:      catalogusecases.NewListToolsUseCase(repos.tool, repos.category, log),
		featuredTools:  catalogusecases.NewGetFeaturedToolsUseCase(repos.tool, svcs.featuredCache, log),
		getTool:        catalogusecases.NewGetToolUseCase(repos.tool, svcs.markdown, log),
		createTool:     catalogusecases.NewCreateToolUseCase(repos.tool, repos.category, repos.user, log),
		compareTools:   catalogusecases.NewCompareToolsUseCase(repos.tool, repos.comparison, log),
		listUserTools:  catalogusecases.NewListUserToolsUseCase(repos.tool, log),
		listCategories: catalogusecases.NewListCategoriesUseCase(repos.category, log),
		getCategory:    catalogusecases.NewGetCategoryUseCase(repos.category, log),
		createCategory: catalogusecases.NewCreateCategoryUseCase(repos.category, log),
		pendingTools:   catalogusecases.NewListPendingToolsUseCase(repos.tool, log),
		approveTool:    catalogusecases.NewApproveToolUseCase(repos.tool, repos.user, svcs.mailer, log),
		rejectTool:     catalogusecases.NewRejectToolUseCase(repos.tool, repos.user, svcs.mailer, log),
		featureTool:    catalogusecases.NewFeatureToolUseCase(repos.tool, svcs.featuredCache, log),

		createReview:    reviewusecases.NewCreateReviewUseCase(repos.review, repos.tool, svcs.markdown, log),
		listToolReviews: reviewusecases.NewListToolReviewsUseCase(repos.review, repos.tool, log),
		pendingReviews:  reviewusecases.NewListPendingReviewsUseCase(repos.review, log),
		approveReview:   reviewusecases.NewApproveReviewUseCase(repos.review, log),

		addFavorite:    favoriteusecases.NewAddFavoriteUseCase(repos.favorite, repos.tool, log),
		removeFavorite: favoriteusecases.NewRemoveFavoriteUseCase(repos.favorite, log),
		listFavorites:  favoriteusecases.NewListFavoritesUseCase(repos.favorite, repos.tool, log),

		register:      userusecases.NewRegisterWithPasswordUseCase(repos.user, svcs.hasher, log),
		login:         userusecases.NewLoginWithPasswordUseCase(repos.user, repos.session, svcs.hasher, svcs.jwtService, cfg.Auth.JWT, log),
		refreshToken:  userusecases.NewRefreshTokenUseCase(repos.user, repos.session, svcs.jwtService, cfg.Auth.JWT, log),
		logout:        userusecases.NewLogoutUseCase(repos.session, log),
		currentUser:   userusecases.NewGetCurrentUserUseCase(repos.user, log),
		initiateOAuth: userusecases.NewInitiateOAuthLoginUseCase(svcs.oauthClient, svcs.stateStore, log),
		handleOAuth:   userusecases.NewHandleOAuthCallbackUseCase(svcs.oauthClient, svcs.stateStore, repos.user, repos.session, svcs.jwtService, cfg.Auth.JWT, log),

		paymentIntent:  billingusecases.NewCreatePaymentIntentUseCase(repos.user, svcs.gateway, cfg.Billing, log),
		subscription:   billingusecases.NewGetOrCreateSubscriptionUseCase(repos.user, svcs.gateway, cfg.Billing, log),
		confirmUpgrade: billingusecases.NewConfirmPremiumUpgradeUseCase(repos.user, svcs.gateway, svcs.txManager, log),
	}
}
