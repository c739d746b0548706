package model

// All lists every persistence model, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&ContactModel{},
		&GroupModel{},
		&MemberModel{},
	}
}
