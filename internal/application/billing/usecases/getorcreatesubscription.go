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

type GetOrCreateSubscriptionCommand struct {
	UserID uint
}

type GetOrCreateSubscriptionResult struct {
	SubscriptionID string
	ClientSecret   string
	Status         string
}

type GetOrCreateSubscriptionUseCase struct {
	userRepo user.Repository
	gateway  paymentgateway.PaymentGateway
	config   config.BillingConfig
	logger   logger.Interface
}

func NewGetOrCreateSubscriptionUseCase(
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	config config.BillingConfig,
	logger logger.Interface,
) *GetOrCreateSubscriptionUseCase {
	return &GetOrCreateSubscriptionUseCase{
		userRepo: userRepo,
		gateway:  gateway,
		config:   config,
		logger:   logger,
	}
}

// Execute returns the account's existing premium subscription or creates a
// fresh customer+subscription pair. The customer id is persisted right away;
// the premium flag only flips later, on confirmed payment.
func (uc *GetOrCreateSubscriptionUseCase) Execute(ctx context.Context, cmd GetOrCreateSubscriptionCommand) (*GetOrCreateSubscriptionResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if account.StripeSubscriptionID() != nil {
		sub, err := uc.gateway.GetSubscription(ctx, *account.StripeSubscriptionID())
		if err != nil {
			uc.logger.Errorw("failed to load existing subscription", "error", err, "user_id", cmd.UserID)
			return nil, apperrors.NewUpstreamError("payment provider unavailable")
		}
		return &GetOrCreateSubscriptionResult{
			SubscriptionID: sub.ID,
			ClientSecret:   sub.ClientSecret,
			Status:         sub.Status,
		}, nil
	}

	customerID := ""
	if account.StripeCustomerID() != nil {
		customerID = *account.StripeCustomerID()
	} else {
		name := fmt.Sprintf("%s %s", account.FirstName(), account.LastName())
		customerID, err = uc.gateway.CreateCustomer(ctx, account.Email().String(), name)
		if err != nil {
			uc.logger.Errorw("failed to create customer", "error", err, "user_id", cmd.UserID)
			return nil, apperrors.NewUpstreamError("payment provider unavailable")
		}
		if err := account.AttachStripeCustomer(customerID); err != nil {
			return nil, fmt.Errorf("failed to attach customer: %w", err)
		}
		if err := uc.userRepo.Update(ctx, account); err != nil {
			uc.logger.Errorw("failed to save customer id", "error", err, "user_id", cmd.UserID)
			return nil, fmt.Errorf("failed to save user: %w", err)
		}
	}

	sub, err := uc.gateway.CreateSubscription(ctx, customerID, uc.config.StripePriceID)
	if err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewUpstreamError("payment provider unavailable")
	}

	uc.logger.Infow("subscription created", "user_id", cmd.UserID, "subscription_id", sub.ID)
	return &GetOrCreateSubscriptionResult{
		SubscriptionID: sub.ID,
		ClientSecret:   sub.ClientSecret,
		Status:         sub.Status,
	}, nil
}
