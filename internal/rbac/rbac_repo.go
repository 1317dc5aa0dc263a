package rbac

import "gorm.io/gorm"

type Repository interface {
	GetStaffRoles() ([]StaffRoleRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type StaffRoleRow struct {
	StaffID int64
	RoleID  int64
}

type RolePermissionRow struct {
	RoleID   int64
	Resource string
	Action   string
}

func (r *repository) GetStaffRoles() ([]StaffRoleRow, error) {
	var result []StaffRoleRow

	err := r.db.
		Table("staff_roles").
		Select("staff_roles.staff_id, staff_roles.role_id").
		Joins("JOIN roles ON roles.id = staff_roles.role_id").
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scan(&result).Error

	return result, err
}
