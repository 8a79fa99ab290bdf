package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/shared/biztime"
)

func timeIn(hours int) time.Time {
	return biztime.NowUTC().Add(time.Duration(hours) * time.Hour)
}

func mustEmail(t *testing.T, s string) *valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestNewUser_Defaults(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"), "hashed", "Alice", "Ng")
	require.NoError(t, err)

	assert.Equal(t, valueobjects.RoleUser, u.Role())
	assert.False(t, u.IsPremium())
	assert.True(t, u.HasPassword())
	assert.Nil(t, u.StripeCustomerID())
}

func TestNewOAuthUser_NoPassword(t *testing.T) {
	u, err := NewOAuthUser(mustEmail(t, "bob@example.com"), "Bob", "Lee", "https://img.example.com/b.png")
	require.NoError(t, err)

	assert.False(t, u.HasPassword())
	assert.False(t, u.IsPremium())
}

func TestConfirmPremiumUpgrade(t *testing.T) {
	u, err := NewUser(mustEmail(t, "carol@example.com"), "hashed", "Carol", "Wu")
	require.NoError(t, err)

	assert.Error(t, u.ConfirmPremiumUpgrade("", "sub_123"))
	assert.Error(t, u.ConfirmPremiumUpgrade("cus_123", ""))
	assert.False(t, u.IsPremium(), "premium must not flip on failed confirmation")

	require.NoError(t, u.ConfirmPremiumUpgrade("cus_123", "sub_123"))
	assert.True(t, u.IsPremium())
	require.NotNil(t, u.StripeCustomerID())
	assert.Equal(t, "cus_123", *u.StripeCustomerID())
	require.NotNil(t, u.StripeSubscriptionID())
	assert.Equal(t, "sub_123", *u.StripeSubscriptionID())
}

func TestAttachStripeCustomer_DoesNotFlipPremium(t *testing.T) {
	u, err := NewUser(mustEmail(t, "dan@example.com"), "hashed", "Dan", "Kim")
	require.NoError(t, err)

	require.NoError(t, u.AttachStripeCustomer("cus_456"))
	assert.False(t, u.IsPremium())
}

func TestEmail_Normalization(t *testing.T) {
	email, err := valueobjects.NewEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.String())

	_, err = valueobjects.NewEmail("not-an-email")
	assert.Error(t, err)
}

func TestSession_Expiry(t *testing.T) {
	s, err := NewSession(1, "127.0.0.1", "go-test", timeIn(-1))
	require.NoError(t, err)
	assert.True(t, s.IsExpired())

	s2, err := NewSession(1, "127.0.0.1", "go-test", timeIn(1))
	require.NoError(t, err)
	assert.False(t, s2.IsExpired())
	assert.NotEqual(t, s.ID, s2.ID)
}
