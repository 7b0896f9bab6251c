package model

import "time"

// User represents an administrable user account. Email doubles as the login
// identifier and is unique across the table.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	Age          int       `json:"age" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser builds a fully-formed user record from validated fields and an
// already-computed password hash. A User never exists without its hash.
func NewUser(firstName, lastName string, age int, email, passwordHash string) *User {
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Age:          age,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
