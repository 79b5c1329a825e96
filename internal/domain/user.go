package domain

import "time"

// User is the domain model for both farmers and government officers.
// The role column decides which side of the platform the account lives on;
// the officer directory and farmer listing are role-filtered views of this
// single model.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	District     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
