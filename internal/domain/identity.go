package domain

// Role differentiates customer vs staff identities.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// Identity is the authenticated caller, resolved once at login and carried
// unchanged inside the bearer token. For customers SubjectID is the
// directory key that orders reference as their owner; for staff it has no
// ownership meaning.
type Identity struct {
	SubjectID   string
	DisplayName string
	Role        Role
}

// IsCustomer reports whether the identity is subject to ownership checks.
func (i Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}

// IsStaff reports whether the identity may view any container.
func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff
}
