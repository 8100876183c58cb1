package domain

// PrivilegeLevel is an ordinal capability tier. Ordering is numeric: a level
// grants access to everything a lower level does. New levels append at the
// top; never reorder existing values, they are persisted as integers.
type PrivilegeLevel int

const (
	PrivilegeGuest PrivilegeLevel = 0
	PrivilegeUser  PrivilegeLevel = 1
	PrivilegeAdmin PrivilegeLevel = 2
)

// PrivilegeFromInt decodes a stored privilege integer. Decode rule: any value
// outside the known range maps to PrivilegeGuest rather than failing, so a
// record written by a newer deployment degrades to no access instead of
// breaking resolution.
func PrivilegeFromInt(v int) PrivilegeLevel {
	switch PrivilegeLevel(v) {
	case PrivilegeGuest, PrivilegeUser, PrivilegeAdmin:
		return PrivilegeLevel(v)
	default:
		return PrivilegeGuest
	}
}

// MeetsMinimum reports whether actual satisfies a route's required minimum.
func MeetsMinimum(actual, required PrivilegeLevel) bool {
	return actual >= required
}

func (p PrivilegeLevel) String() string {
	switch p {
	case PrivilegeGuest:
		return "guest"
	case PrivilegeUser:
		return "user"
	case PrivilegeAdmin:
		return "admin"
	default:
		return "guest"
	}
}
