package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accessd/accessd/internal/api/metrics"
	"github.com/accessd/accessd/internal/core/domain"
	"github.com/accessd/accessd/internal/core/ports"
)

// AuthMode selects which credential mechanism the identity middleware
// resolves. A deployment runs exactly one mode; the other mechanism is inert,
// not a latent bypass.
type AuthMode string

const (
	// ModeBearer treats the Authorization bearer value as a signed token.
	ModeBearer AuthMode = "bearer"
	// ModeAPIKey treats the Authorization bearer value as a static API key
	// looked up in the credential store.
	ModeAPIKey AuthMode = "apikey"
)

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "identity"

// ResolveIdentity returns the per-request interceptor that resolves caller
// identity exactly once and attaches it to the request context.
//
// A missing or invalid credential resolves to the guest identity and the
// request proceeds; route-level gates decide whether guests get in. The only
// failure this middleware itself raises is a credential store outage, which
// is fatal to the request (mapped to 503 by the error handler).
func ResolveIdentity(mode AuthMode, store ports.CredentialStore, tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, ok := bearerValue(c)
			if !ok {
				setIdentity(c, domain.GuestIdentity())
				metrics.IdentityResolutionsTotal.WithLabelValues("guest").Inc()
				return next(c)
			}

			var (
				user *domain.User
				err  error
			)
			switch mode {
			case ModeAPIKey:
				user, err = store.FindByAPIKey(c.Request().Context(), credential)
			default:
				user, err = resolveBearer(c, store, tokens, credential)
			}

			if err != nil {
				if errors.Is(err, domain.ErrStoreUnavailable) {
					metrics.IdentityResolutionsTotal.WithLabelValues("store_error").Inc()
					log.Error().Err(err).Str("path", c.Path()).Msg("identity resolution failed")
					return err
				}
				// Invalid or stale credential: resolve to guest, never 401
				// here. CredentialAbsent and CredentialInvalid look the same
				// to downstream gates.
				user = nil
			}

			identity := domain.IdentityFor(user)
			setIdentity(c, identity)
			if identity.Authenticated() {
				metrics.IdentityResolutionsTotal.WithLabelValues("authenticated").Inc()
			} else {
				metrics.IdentityResolutionsTotal.WithLabelValues("guest").Inc()
			}
			return next(c)
		}
	}
}

// resolveBearer verifies the bearer value as a signed token and loads its
// subject from the store.
func resolveBearer(c echo.Context, store ports.CredentialStore, tokens ports.TokenService, credential string) (*domain.User, error) {
	userID, err := tokens.Verify(credential)
	observeTokenResult(err)
	if err != nil {
		return nil, err
	}
	return store.FindByID(c.Request().Context(), userID)
}

func observeTokenResult(err error) {
	switch {
	case err == nil:
		metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, domain.ErrTokenExpired):
		metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
	case errors.Is(err, domain.ErrSignatureInvalid):
		metrics.TokenVerificationsTotal.WithLabelValues("signature_invalid").Inc()
	default:
		metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
	}
}

// bearerValue extracts the value of an "Authorization: Bearer <value>"
// header. The second return is false when no usable credential is present.
func bearerValue(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity resolved for this request. Requests that
// did not pass through ResolveIdentity read as guest.
func IdentityFrom(c echo.Context) domain.Identity {
	if id, ok := c.Get(identityKey).(domain.Identity); ok {
		return id
	}
	return domain.GuestIdentity()
}
