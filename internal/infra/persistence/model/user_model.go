// Package model holds the GORM persistence models. Relations exist to carry
// foreign keys; they are never preloaded.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	UserID         int64   `gorm:"column:user_id;primaryKey;autoIncrement"`
	UserEmail      string  `gorm:"column:user_email;type:varchar(50);uniqueIndex;not null"`
	UserName       *string `gorm:"column:user_name;type:varchar(50)"`
	HashedPassword string  `gorm:"column:hashed_password;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Contact     *ContactModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Memberships []MemberModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ContactModel mirrors the 'contacts' table. A user has at most one contact row.
type ContactModel struct {
	ContactID   int64   `gorm:"column:contact_id;primaryKey;autoIncrement"`
	PhoneNumber *string `gorm:"column:phone_number;type:varchar(12);uniqueIndex"`
	Telegram    *string `gorm:"column:telegram;type:varchar(50);uniqueIndex"`
	LinkedIn    *string `gorm:"column:linkedin;type:varchar(50);uniqueIndex"`
	UserID      int64   `gorm:"column:user_id;not null;uniqueIndex:uniq_contacts_user"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
