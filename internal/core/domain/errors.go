package domain

import "errors"

// Sentinel errors for the access-control core. Callers branch with errors.Is;
// the central HTTP error handler maps each kind to a fixed status and an
// opaque message.
var (
	// ErrInvalidCredentials covers wrong passwords, unknown API keys and
	// malformed login payloads. Deliberately indistinguishable from the
	// outside: the response never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// Token verification failures. Distinct kinds so callers never conflate
	// an expired token with a forged one or with no token at all.
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")

	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	// ErrStoreUnavailable is an infrastructure failure (connection refused,
	// pool exhausted, timeout). Never folded into "not found": a lookup that
	// could not run is not a lookup that found nothing.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
