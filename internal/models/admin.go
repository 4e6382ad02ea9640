package models

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Admin represents the ADMINS table. Admins are soft-deleted only so that
// historical logs and assignments keep their references.
type Admin struct {
	AdminID      int64  `db:"ADMIN_ID" json:"id"`
	Name         string `db:"NAME" json:"name"`
	Email        string `db:"EMAIL" json:"email"`
	PasswordHash string `db:"PASSWORD_HASH" json:"-"`
	Role         string `db:"ROLE" json:"role"`
	IsActive     bool   `db:"IS_ACTIVE" json:"isActive"`
	DeletedAt    *int64 `db:"DELETED_AT" json:"deletedAt,omitempty"`
	CreatedTime  int64  `db:"CREATED_TIME" json:"createdTime"`
}

// Ref returns the embeddable reference form of the admin
func (a *Admin) Ref() *AdminRef {
	if a == nil {
		return nil
	}
	return &AdminRef{AdminID: a.AdminID, Name: a.Name}
}

// AdminCreateRequest is the API payload for creating an admin account
type AdminCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest is the API payload for admin login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
