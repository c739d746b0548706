package store

import (
	"roster/internal/domain/entity"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// memberRows selects memberships joined with their group name and user email.
func memberRows(db *gorm.DB) *gorm.DB {
	return db.Table("members").
		Select(`members.membership_id, members.group_id, members.user_id, members.role, members.created_at, "groups".group_name, users.user_email`).
		Joins(`JOIN "groups" ON "groups".group_id = members.group_id`).
		Joins("JOIN users ON users.user_id = members.user_id")
}

// findMemberRow loads one joined membership. gorm.ErrRecordNotFound is returned as is.
func findMemberRow(db *gorm.DB, membershipID int64) (*model.MemberRow, error) {
	var row model.MemberRow
	if err := memberRows(db).Where("members.membership_id = ?", membershipID).Take(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

// listMemberRows pages through joined memberships matching query, newest first.
func listMemberRows(db *gorm.DB, page entity.Pagination, query string, args ...any) ([]model.MemberRow, error) {
	page = page.Normalize()

	var rows []model.MemberRow
	err := memberRows(db).
		Where(query, args...).
		Order("members.membership_id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error

	return rows, err
}
