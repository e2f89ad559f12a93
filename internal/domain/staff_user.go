package domain

import "strings"

// StaffUser is a login record from the staff directory.
type StaffUser struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Active       bool
}

// DisplayName returns "First Last", falling back to the username when both
// name fields are blank.
func (s StaffUser) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return s.Username
	}
	return name
}
