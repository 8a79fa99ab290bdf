package usecases

import "context"

// OAuthUserInfo is the identity returned by an OAuth provider.
type OAuthUserInfo struct {
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// OAuthProvider wraps the provider's authorization-code flow.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	ExchangeAndFetch(ctx context.Context, code string) (*OAuthUserInfo, error)
}

// OAuthStateStore holds short-lived CSRF states for the OAuth flow. Consume
// reports whether the state existed and removes it.
type OAuthStateStore interface {
	Save(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}
