package model

import "time"

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	GroupID          int64   `gorm:"column:group_id;primaryKey;autoIncrement"`
	GroupName        string  `gorm:"column:group_name;type:varchar(50);uniqueIndex;not null"`
	GroupDescription *string `gorm:"column:group_description;type:varchar(500)"`
	IsPrivate        bool    `gorm:"column:is_private;not null;default:false"`
	OwnerID          int64   `gorm:"column:owner_id;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Owner   *UserModel    `gorm:"foreignKey:OwnerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Members []MemberModel `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}
