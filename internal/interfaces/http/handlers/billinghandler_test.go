package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/application/billing/usecases"
	"toolvault/internal/domain/user"
	"toolvault/internal/interfaces/http/handlers/testutil"
	apperrors "toolvault/internal/shared/errors"
)

type mockCreatePaymentIntentUC struct {
	result *usecases.CreatePaymentIntentResult
	err    error
	cmd    usecases.CreatePaymentIntentCommand
}

func (m *mockCreatePaymentIntentUC) Execute(ctx context.Context, cmd usecases.CreatePaymentIntentCommand) (*usecases.CreatePaymentIntentResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetOrCreateSubscriptionUC struct {
	result *usecases.GetOrCreateSubscriptionResult
	err    error
	cmd    usecases.GetOrCreateSubscriptionCommand
}

func (m *mockGetOrCreateSubscriptionUC) Execute(ctx context.Context, cmd usecases.GetOrCreateSubscriptionCommand) (*usecases.GetOrCreateSubscriptionResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockConfirmUpgradeUC struct {
	result *user.User
	err    error
	cmd    usecases.ConfirmPremiumUpgradeCommand
}

func (m *mockConfirmUpgradeUC) Execute(ctx context.Context, cmd usecases.ConfirmPremiumUpgradeCommand) (*user.User, error) {
	m.cmd = cmd
	return m.result, m.err
}

func TestBillingHandler_CreatePaymentIntent_Success(t *testing.T) {
	intentUC := &mockCreatePaymentIntentUC{result: &usecases.CreatePaymentIntentResult{
		ClientSecret: "pi_secret_123",
		Amount:       2900,
		Currency:     "usd",
	}}
	h := NewBillingHandler(intentUC, &mockGetOrCreateSubscriptionUC{}, &mockConfirmUpgradeUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/payment-intent", nil)
	testutil.SetAuthContext(c, 2)

	h.CreatePaymentIntent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), intentUC.cmd.UserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "pi_secret_123")
}

func TestBillingHandler_CreatePaymentIntent_AlreadyPremium(t *testing.T) {
	h := NewBillingHandler(
		&mockCreatePaymentIntentUC{err: apperrors.NewConflictError("account is already premium")},
		&mockGetOrCreateSubscriptionUC{}, &mockConfirmUpgradeUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/payment-intent", nil)
	testutil.SetAuthContext(c, 2)

	h.CreatePaymentIntent(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillingHandler_GetOrCreateSubscription_Success(t *testing.T) {
	subUC := &mockGetOrCreateSubscriptionUC{result: &usecases.GetOrCreateSubscriptionResult{
		SubscriptionID: "sub_123",
		ClientSecret:   "pi_secret_456",
		Status:         "incomplete",
	}}
	h := NewBillingHandler(&mockCreatePaymentIntentUC{}, subUC, &mockConfirmUpgradeUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/subscription", nil)
	testutil.SetAuthContext(c, 2)

	h.GetOrCreateSubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), subUC.cmd.UserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "sub_123")
}

func TestBillingHandler_ConfirmUpgrade_Success(t *testing.T) {
	confirmUC := &mockConfirmUpgradeUC{result: createTestUser()}
	h := NewBillingHandler(&mockCreatePaymentIntentUC{}, &mockGetOrCreateSubscriptionUC{}, confirmUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/confirm", ConfirmUpgradeRequest{
		SubscriptionID: "sub_123",
	})
	testutil.SetAuthContext(c, 2)

	h.ConfirmUpgrade(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), confirmUC.cmd.UserID)
	assert.Equal(t, "sub_123", confirmUC.cmd.SubscriptionID)
}

func TestBillingHandler_ConfirmUpgrade_MissingSubscription(t *testing.T) {
	h := NewBillingHandler(&mockCreatePaymentIntentUC{}, &mockGetOrCreateSubscriptionUC{}, &mockConfirmUpgradeUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/confirm", map[string]string{})
	testutil.SetAuthContext(c, 2)

	h.ConfirmUpgrade(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_ConfirmUpgrade_PaymentIncomplete(t *testing.T) {
	h := NewBillingHandler(&mockCreatePaymentIntentUC{}, &mockGetOrCreateSubscriptionUC{},
		&mockConfirmUpgradeUC{err: apperrors.NewValidationError("subscription is not active")},
		testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/billing/confirm", ConfirmUpgradeRequest{
		SubscriptionID: "sub_123",
	})
	testutil.SetAuthContext(c, 2)

	h.ConfirmUpgrade(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
