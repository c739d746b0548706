package model

import "time"

// MemberModel mirrors the 'members' table. A user holds at most one
// membership per group (uniq_member).
type MemberModel struct {
	MembershipID int64  `gorm:"column:membership_id;primaryKey;autoIncrement"`
	GroupID      int64  `gorm:"column:group_id;not null;uniqueIndex:uniq_member,priority:2"`
	UserID       int64  `gorm:"column:user_id;not null;uniqueIndex:uniq_member,priority:1"`
	Role         string `gorm:"column:role;type:varchar(16);not null;check:chk_members_role,role IN ('OWNER','MEMBER')"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// MemberRow is the projection of a membership joined with its group name and member email.
type MemberRow struct {
	MembershipID int64
	GroupID      int64
	UserID       int64
	Role         string
	CreatedAt    time.Time
	GroupName    string
	UserEmail    string
}
