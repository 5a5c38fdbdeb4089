package model

// UserID is the surrogate key for an account row
type UserID int64

// Role controls which endpoints an account may reach
type Role string

const (
	RoleUser   Role = "USER"
	RoleEditor Role = "EDITOR"
)

// UserAccount is an API account, distinct from a Player record.
// Accounts are never hard-deleted; removal flips Active to false.
type UserAccount struct {
	ID       UserID `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"` // keyed hash, computed before storage
	Role     Role   `db:"role"`
	Active   bool   `db:"active"`
}

// Claims is the immutable identity attached to an authenticated request.
// It mirrors exactly what the session token carries.
type Claims struct {
	UserID   UserID `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsEditor reports whether the claims grant write access
func (c Claims) IsEditor() bool {
	return c.Role == RoleEditor
}
