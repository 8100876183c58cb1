package domain

// Identity is the request-scoped result of credential resolution: who is
// calling and what tier they hold. It lives for one request only and is never
// shared across requests.
//
// Construct identities with IdentityFor or GuestIdentity so Privilege can
// never diverge from the user record it was derived from.
type Identity struct {
	User      *User
	Privilege PrivilegeLevel
}

// GuestIdentity is the resolution result when no credential is present or the
// presented credential is invalid.
func GuestIdentity() Identity {
	return Identity{User: nil, Privilege: PrivilegeGuest}
}

// IdentityFor derives the identity for a resolved user. A nil user yields the
// guest identity.
func IdentityFor(u *User) Identity {
	if u == nil {
		return GuestIdentity()
	}
	return Identity{User: u, Privilege: u.PrivilegeLevel()}
}

// Authenticated reports whether the identity belongs to a known user.
func (id Identity) Authenticated() bool {
	return id.User != nil
}
