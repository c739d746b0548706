package entity

// MemberRole is the role a user holds inside a group.
type MemberRole string

const (
	// RoleOwner is assigned once, to the group creator.
	RoleOwner MemberRole = "OWNER"
	// RoleMember is assigned to every user added after creation.
	RoleMember MemberRole = "MEMBER"
)

// String returns the string representation of the MemberRole.
func (r MemberRole) String() string {
	return string(r)
}

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleMember:
		return true
	default:
		return false
	}
}
