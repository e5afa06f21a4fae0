package domain

// Principal is the authenticated identity attached to a request. It is
// resolved once by the auth middleware from the JWT claims; handlers pass its
// fields into the services and never take an employee id from the body for
// employee-scoped operations.
type Principal struct {
	EmployeeID uint
	Email      string
	Role       string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
