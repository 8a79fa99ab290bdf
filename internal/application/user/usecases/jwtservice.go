package usecases

// TokenPair is an issued access/refresh token pair. ExpiresIn is the access
// token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues token pairs bound to a session.
type JWTService interface {
	Generate(userID uint, sessionID string, role string) (*TokenPair, error)
}
