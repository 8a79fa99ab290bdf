package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/application/billing/paymentgateway"
	"toolvault/internal/domain/user"
	"toolvault/internal/shared/config"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type CreatePaymentIntentCommand struct {
	UserID uint
}

type CreatePaymentIntentResult struct {
	ClientSecret string
	Amount       int64
	Currency     string
}

type CreatePaymentIntentUseCase struct {
	userRepo user.Repository
	gateway  paymentgateway.PaymentGateway
	config   config.BillingConfig
	logger   logger.Interface
}

func NewCreatePaymentIntentUseCase(
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	config config.BillingConfig,
	logger logger.Interface,
) *CreatePaymentIntentUseCase {
	return &CreatePaymentIntentUseCase{
		userRepo: userRepo,
		gateway:  gateway,
		config:   config,
		logger:   logger,
	}
}

// Execute creates a payment intent for the premium upgrade. The amount comes
// from server configuration; the client never supplies it.
func (uc *CreatePaymentIntentUseCase) Execute(ctx context.Context, cmd CreatePaymentIntentCommand) (*CreatePaymentIntentResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if account.IsPremium() {
		return nil, apperrors.NewConflictError("account is already premium")
	}

	req := paymentgateway.CreatePaymentIntentRequest{
		Amount:   uc.config.PremiumPriceCents,
		Currency: uc.config.Currency,
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", account.ID()),
			"purpose": "premium_upgrade",
		},
	}
	if account.StripeCustomerID() != nil {
		req.CustomerID = *account.StripeCustomerID()
	}

	intent, err := uc.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		uc.logger.Errorw("failed to create payment intent", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewUpstreamError("payment provider unavailable")
	}

	uc.logger.Infow("payment intent created", "user_id", cmd.UserID, "intent_id", intent.ID, "amount", intent.Amount)
	return &CreatePaymentIntentResult{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
