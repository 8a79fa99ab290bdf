package user

import (
	"fmt"
	"time"

	"toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/shared/biztime"
)

// User is the account aggregate. Password hash is nil for OAuth-only
// accounts. Premium standing and Stripe identifiers only change together,
// through ConfirmPremiumUpgrade.
type User struct {
	id                   uint
	email                *valueobjects.Email
	passwordHash         *string
	firstName            string
	lastName             string
	profileImageURL      string
	role                 valueobjects.Role
	isPremium            bool
	stripeCustomerID     *string
	stripeSubscriptionID *string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewUser creates a password-based account.
func NewUser(email *valueobjects.Email, passwordHash, firstName, lastName string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		passwordHash: &passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         valueobjects.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewOAuthUser creates an account provisioned from an OAuth identity,
// without a local password.
func NewOAuthUser(email *valueobjects.Email, firstName, lastName, profileImageURL string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:           email,
		firstName:       firstName,
		lastName:        lastName,
		profileImageURL: profileImageURL,
		role:            valueobjects.RoleUser,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// UserAttrs reconstructs a user from persistence.
type UserAttrs struct {
	ID                   uint
	Email                *valueobjects.Email
	PasswordHash         *string
	FirstName            string
	LastName             string
	ProfileImageURL      string
	Role                 valueobjects.Role
	IsPremium            bool
	StripeCustomerID     *string
	StripeSubscriptionID *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func ReconstructUser(a UserAttrs) *User {
	return &User{
		id:                   a.ID,
		email:                a.Email,
		passwordHash:         a.PasswordHash,
		firstName:            a.FirstName,
		lastName:             a.LastName,
		profileImageURL:      a.ProfileImageURL,
		role:                 a.Role,
		isPremium:            a.IsPremium,
		stripeCustomerID:     a.StripeCustomerID,
		stripeSubscriptionID: a.StripeSubscriptionID,
		createdAt:            a.CreatedAt,
		updatedAt:            a.UpdatedAt,
	}
}

// AttachStripeCustomer records the gateway customer without changing the
// premium flag. Used when a subscription is created but not yet paid.
func (u *User) AttachStripeCustomer(customerID string) error {
	if customerID == "" {
		return fmt.Errorf("stripe customer ID cannot be empty")
	}
	u.stripeCustomerID = &customerID
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ConfirmPremiumUpgrade stores the gateway identifiers and flips the premium
// flag in one step, after payment has been verified upstream.
func (u *User) ConfirmPremiumUpgrade(customerID, subscriptionID string) error {
	if customerID == "" {
		return fmt.Errorf("stripe customer ID cannot be empty")
	}
	if subscriptionID == "" {
		return fmt.Errorf("stripe subscription ID cannot be empty")
	}
	u.stripeCustomerID = &customerID
	u.stripeSubscriptionID = &subscriptionID
	u.isPremium = true
	u.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateProfile changes display fields only.
func (u *User) UpdateProfile(firstName, lastName, profileImageURL string) {
	u.firstName = firstName
	u.lastName = lastName
	u.profileImageURL = profileImageURL
	u.updatedAt = biztime.NowUTC()
}

func (u *User) PromoteToAdmin() {
	u.role = valueobjects.RoleAdmin
	u.updatedAt = biztime.NowUTC()
}

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Email() *valueobjects.Email    { return u.email }
func (u *User) PasswordHash() *string         { return u.passwordHash }
func (u *User) FirstName() string             { return u.firstName }
func (u *User) LastName() string              { return u.lastName }
func (u *User) ProfileImageURL() string       { return u.profileImageURL }
func (u *User) Role() valueobjects.Role       { return u.role }
func (u *User) IsAdmin() bool                 { return u.role.IsAdmin() }
func (u *User) IsPremium() bool               { return u.isPremium }
func (u *User) StripeCustomerID() *string     { return u.stripeCustomerID }
func (u *User) StripeSubscriptionID() *string { return u.stripeSubscriptionID }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.passwordHash != nil && *u.passwordHash != ""
}
