package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	billingusecases "toolvault/internal/application/billing/usecases"
	"toolvault/internal/application/user/dto"
	"toolvault/internal/domain/user"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type createPaymentIntentUseCase interface {
	Execute(ctx context.Context, cmd billingusecases.CreatePaymentIntentCommand) (*billingusecases.CreatePaymentIntentResult, error)
}

type getOrCreateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd billingusecases.GetOrCreateSubscriptionCommand) (*billingusecases.GetOrCreateSubscriptionResult, error)
}

type confirmPremiumUpgradeUseCase interface {
	Execute(ctx context.Context, cmd billingusecases.ConfirmPremiumUpgradeCommand) (*user.User, error)
}

type BillingHandler struct {
	paymentIntentUC createPaymentIntentUseCase
	subscriptionUC  getOrCreateSubscriptionUseCase
	confirmUC       confirmPremiumUpgradeUseCase
	logger          logger.Interface
}

func NewBillingHandler(
	paymentIntentUC createPaymentIntentUseCase,
	subscriptionUC getOrCreateSubscriptionUseCase,
	confirmUC confirmPremiumUpgradeUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		paymentIntentUC: paymentIntentUC,
		subscriptionUC:  subscriptionUC,
		confirmUC:       confirmUC,
		logger:          logger,
	}
}

type ConfirmUpgradeRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for the premium upgrade
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/billing/payment-intent [post]
func (h *BillingHandler) CreatePaymentIntent(c *gin.Context) {
	result, err := h.paymentIntentUC.Execute(c.Request.Context(), billingusecases.CreatePaymentIntentCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"clientSecret": result.ClientSecret,
		"amount":       result.Amount,
		"currency":     result.Currency,
	})
}

// GetOrCreateSubscription godoc
// @Summary Get or create the caller's premium subscription
// @Description Returns the existing subscription when one is already attached to the account
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/billing/subscription [post]
func (h *BillingHandler) GetOrCreateSubscription(c *gin.Context) {
	result, err := h.subscriptionUC.Execute(c.Request.Context(), billingusecases.GetOrCreateSubscriptionCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"subscriptionId": result.SubscriptionID,
		"clientSecret":   result.ClientSecret,
		"status":         result.Status,
	})
}

// ConfirmUpgrade godoc
// @Summary Confirm a completed premium payment
// @Description Verifies the subscription with the payment provider before granting premium
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmUpgradeRequest true "Subscription to confirm"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Router /api/billing/confirm [post]
func (h *BillingHandler) ConfirmUpgrade(c *gin.Context) {
	var req ConfirmUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.confirmUC.Execute(c.Request.Context(), billingusecases.ConfirmPremiumUpgradeCommand{
		UserID:         c.GetUint(constants.ContextKeyUserID),
		SubscriptionID: req.SubscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "premium upgrade confirmed", dto.UserToDTO(account))
}
