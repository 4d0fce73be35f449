package identity

import "errors"

type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleBarber
}

// Actor is the authenticated caller. It is resolved at the boundary and
// passed explicitly into use cases.
type Actor struct {
	Role Role
	ID   string
}

func (a Actor) IsBarber() bool { return a.Role == RoleBarber }
func (a Actor) IsClient() bool { return a.Role == RoleClient }

var ErrInvalidToken = errors.New("invalid token")
