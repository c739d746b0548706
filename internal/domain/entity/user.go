// Package entity contains the core business objects of the project.
package entity

import "time"

// User is the public shape of a stored user. The password hash never leaves
// the persistence layer.
type User struct {
	ID        int64     `json:"user_id"`
	Email     string    `json:"user_email"`
	Name      *string   `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCreate carries the fields required to register a user.
type UserCreate struct {
	Email    string  `json:"user_email" validate:"required,email,max=50"`
	Name     *string `json:"user_name,omitempty" validate:"omitempty,max=50"`
	Password string  `json:"password" validate:"required"`
}

// UserUpdate is a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string `json:"user_name,omitempty" validate:"omitempty,max=50"`
	Password *string `json:"password,omitempty"`
}

// UserContacts is a user together with its contact row, if any.
type UserContacts struct {
	User
	Contacts *Contact `json:"contacts"`
}
