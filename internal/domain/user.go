package domain

// RoleStandard is the default tier for new registrations. Nothing gates
// on role yet; the catalog serves every caller the same list.
const RoleStandard = 0

type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  int    `db:"role" json:"role"`
}
