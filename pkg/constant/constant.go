package constant

const (
	// RefreshTokenCookie is the HTTP-only cookie carrying the refresh token.
	RefreshTokenCookie = "refresh_token"

	DefaultPageLimit = 10
	MaxPageLimit     = 100

	SessionKeyPrefix = "session:"
)
