package entity

import "time"

// Group is a named set of users owned by the user who created it.
type Group struct {
	ID          int64     `json:"group_id"`
	Name        string    `json:"group_name"`
	Description *string   `json:"group_description,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupCreate carries the fields required to create a group.
type GroupCreate struct {
	Name        string  `json:"group_name" validate:"required,max=50"`
	Description *string `json:"group_description,omitempty" validate:"omitempty,max=500"`
	IsPrivate   bool    `json:"is_private"`
	OwnerID     int64   `json:"owner_id"`
}

// GroupUpdate is a partial update. Nil fields are left untouched.
// The owner is fixed at creation time.
type GroupUpdate struct {
	Name        *string `json:"group_name,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"group_description,omitempty" validate:"omitempty,max=500"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
}
