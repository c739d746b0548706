package entity

import "time"

// Contact holds optional reachability handles of a user. Each handle is
// globally unique when present.
type Contact struct {
	ID          int64     `json:"contact_id"`
	UserID      int64     `json:"user_id"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Telegram    *string   `json:"telegram,omitempty"`
	LinkedIn    *string   `json:"linkedin,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactCreate carries the handles of a new contact row.
type ContactCreate struct {
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=12"`
	Telegram    *string `json:"telegram,omitempty" validate:"omitempty,max=50"`
	LinkedIn    *string `json:"linkedin,omitempty" validate:"omitempty,max=50"`
}

// ContactUpdate is a partial update. Nil fields are left untouched.
type ContactUpdate struct {
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=12"`
	Telegram    *string `json:"telegram,omitempty" validate:"omitempty,max=50"`
	LinkedIn    *string `json:"linkedin,omitempty" validate:"omitempty,max=50"`
}
