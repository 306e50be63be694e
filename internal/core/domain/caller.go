package domain

import "github.com/google/uuid"

type Role string

const (
	RoleCompany Role = "COMPANY"
	RoleClub    Role = "CLUB"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleClub, RoleAdmin:
		return true
	default:
		return false
	}
}

// Caller is the authenticated identity behind a request. ProfileID is the
// company or club profile linked to the user and is zero for admins.
type Caller struct {
	UserID    uuid.UUID
	Role      Role
	ProfileID uuid.UUID
}

func (c Caller) IsCompany() bool { return c.Role == RoleCompany }
func (c Caller) IsClub() bool    { return c.Role == RoleClub }
func (c Caller) IsAdmin() bool   { return c.Role == RoleAdmin }
