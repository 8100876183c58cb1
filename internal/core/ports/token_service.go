package ports

// TokenService issues and verifies signed identity tokens and hashes
// passwords. Tokens are stateless: validity is fully determined by signature
// and expiry, no store lookup. There is no revocation mechanism; an issued
// token stays valid until it expires.
type TokenService interface {
	HashPassword(plain string) (string, error)
	// VerifyPassword reports whether plain matches hash. Hashing errors are
	// treated as a mismatch, never propagated.
	VerifyPassword(plain, hash string) bool

	// Issue creates a signed token whose subject is the given user id.
	Issue(userID int64) (string, error)
	// Verify checks signature and expiry and returns the subject id. On
	// failure it returns one of domain.ErrTokenExpired,
	// domain.ErrTokenMalformed or domain.ErrSignatureInvalid.
	Verify(token string) (int64, error)
}
