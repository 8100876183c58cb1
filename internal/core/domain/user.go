package domain

import "time"

// User models an identity record held by the credential store. A user carries
// exactly one credential: password users have PasswordHash set, API-key users
// have APIKey set. The core never mutates privilege fields; it only reads
// them when deriving an Identity.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	Privilege    int       `json:"privilege_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PrivilegeLevel decodes the stored integer via the documented fallback rule
// (unknown value → guest).
func (u *User) PrivilegeLevel() PrivilegeLevel {
	return PrivilegeFromInt(u.Privilege)
}
