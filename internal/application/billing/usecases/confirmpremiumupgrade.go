package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/application/billing/paymentgateway"
	"toolvault/internal/domain/user"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

// TransactionManager runs a function inside one store transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ConfirmPremiumUpgradeCommand struct {
	UserID         uint
	SubscriptionID string
}

type ConfirmPremiumUpgradeUseCase struct {
	userRepo  user.Repository
	gateway   paymentgateway.PaymentGateway
	txManager TransactionManager
	logger    logger.Interface
}

func NewConfirmPremiumUpgradeUseCase(
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	txManager TransactionManager,
	logger logger.Interface,
) *ConfirmPremiumUpgradeUseCase {
	return &ConfirmPremiumUpgradeUseCase{
		userRepo:  userRepo,
		gateway:   gateway,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute verifies the subscription's payment state with the provider, then
// stores the gateway identifiers and flips the premium flag in one
// transaction. A failed verification leaves the account untouched.
func (uc *ConfirmPremiumUpgradeUseCase) Execute(ctx context.Context, cmd ConfirmPremiumUpgradeCommand) (*user.User, error) {
	if cmd.SubscriptionID == "" {
		return nil, apperrors.NewValidationError("subscription id is required")
	}

	sub, err := uc.gateway.GetSubscription(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to verify subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewUpstreamError("payment provider unavailable")
	}
	if sub.Status != paymentgateway.SubscriptionActive {
		return nil, apperrors.NewValidationError("payment has not completed")
	}

	var account *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		account, err = uc.userRepo.GetByID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if account.StripeCustomerID() != nil && *account.StripeCustomerID() != sub.CustomerID {
			return apperrors.NewForbiddenError("subscription does not belong to this account")
		}
		if err := account.ConfirmPremiumUpgrade(sub.CustomerID, sub.ID); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Update(txCtx, account); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("premium upgrade failed", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("premium upgrade confirmed", "user_id", cmd.UserID, "subscription_id", sub.ID)
	return account, nil
}
