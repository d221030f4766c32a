package users

// RoleForUserCount decides the role of a new registration given how many
// users already exist: the first account ever created is the admin.
func RoleForUserCount(existing int64) string {
	if existing == 0 {
		return RoleAdmin
	}
	return RoleUser
}
