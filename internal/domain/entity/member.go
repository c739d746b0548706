package entity

import "time"

// Member links a user to a group with a role.
type Member struct {
	ID        int64      `json:"membership_id"`
	GroupID   int64      `json:"group_id"`
	UserID    int64      `json:"user_id"`
	Role      MemberRole `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// GroupMember is a membership joined with the group name and member email.
type GroupMember struct {
	Member
	GroupName string `json:"group_name"`
	UserEmail string `json:"user_email"`
}

// MemberCreate asks for a user to join a group. Role is accepted for
// payload compatibility but ignored: added members are always RoleMember.
type MemberCreate struct {
	GroupID int64      `json:"group_id"`
	UserID  int64      `json:"user_id"`
	Role    MemberRole `json:"role,omitempty"`
}
