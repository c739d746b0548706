package store

import (
	"strings"

	"roster/internal/domain/entity"
	"roster/internal/infra/persistence/model"
)

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:        m.UserID,
		Email:     m.UserEmail,
		Name:      m.UserName,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:          m.ContactID,
		UserID:      m.UserID,
		PhoneNumber: m.PhoneNumber,
		Telegram:    m.Telegram,
		LinkedIn:    m.LinkedIn,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toGroupDomain(m *model.GroupModel) *entity.Group {
	return &entity.Group{
		ID:          m.GroupID,
		Name:        m.GroupName,
		Description: m.GroupDescription,
		IsPrivate:   m.IsPrivate,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toGroupMemberDomain(row *model.MemberRow) *entity.GroupMember {
	return &entity.GroupMember{
		Member: entity.Member{
			ID:        row.MembershipID,
			GroupID:   row.GroupID,
			UserID:    row.UserID,
			Role:      entity.MemberRole(row.Role),
			CreatedAt: row.CreatedAt,
		},
		GroupName: row.GroupName,
		UserEmail: row.UserEmail,
	}
}

func toGroupMembersDomain(rows []model.MemberRow) []*entity.GroupMember {
	members := make([]*entity.GroupMember, 0, len(rows))
	for i := range rows {
		members = append(members, toGroupMemberDomain(&rows[i]))
	}

	return members
}

// trimmed returns the trimmed value of s, or nil when s is unset or blank.
// Blank strings in payloads count as unset.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

// setIfPresent adds column to updates when value is set and not blank.
func setIfPresent(updates map[string]any, column string, value *string) {
	if v := trimmed(value); v != nil {
		updates[column] = *v
	}
}
