package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
)

// AdminDAO handles database operations for admin accounts
type AdminDAO struct {
	db *database.DB
}

// NewAdminDAO creates a new AdminDAO instance
func NewAdminDAO(db *database.DB) *AdminDAO {
	return &AdminDAO{db: db}
}

const adminColumns = `ADMIN_ID, NAME, EMAIL, PASSWORD_HASH, ROLE, IS_ACTIVE, DELETED_AT, CREATED_TIME`

// Create inserts a new admin account and returns its generated identifier
func (dao *AdminDAO) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	query := `
		INSERT INTO ADMINS (
			NAME, EMAIL, PASSWORD_HASH, ROLE, IS_ACTIVE, DELETED_AT, CREATED_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.IsActive,
		admin.DeletedAt,
		admin.CreatedTime,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get admin id: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admin by identifier, including deactivated accounts
func (dao *AdminDAO) GetByID(ctx context.Context, adminID int64) (*models.Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM ADMINS
		WHERE ADMIN_ID = ?
	`, adminColumns)

	var admin models.Admin
	err := dao.db.GetContext(ctx, &admin, query, adminID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

// GetByEmail retrieves an admin by email, including deactivated accounts
func (dao *AdminDAO) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM ADMINS
		WHERE EMAIL = ?
	`, adminColumns)

	var admin models.Admin
	err := dao.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &admin, nil
}

// List retrieves admin accounts. When activeOnly is true, soft-deleted
// accounts are excluded.
func (dao *AdminDAO) List(ctx context.Context, activeOnly bool) ([]models.Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM ADMINS
	`, adminColumns)

	if activeOnly {
		query += " WHERE IS_ACTIVE = 1"
	}

	query += " ORDER BY NAME ASC"

	var admins []models.Admin
	err := dao.db.SelectContext(ctx, &admins, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return admins, nil
}

// SoftDelete deactivates an admin account. Rows are never removed so that
// audit history keeps valid references.
func (dao *AdminDAO) SoftDelete(ctx context.Context, adminID int64, deletedAt int64) error {
	query := `
		UPDATE ADMINS
		SET IS_ACTIVE = 0, DELETED_AT = ?
		WHERE ADMIN_ID = ? AND IS_ACTIVE = 1
	`

	result, err := dao.db.ExecContext(ctx, query, deletedAt, adminID)
	if err != nil {
		return fmt.Errorf("failed to soft delete admin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Restore reactivates a soft-deleted admin account. Restoring an account
// that is already active changes nothing.
func (dao *AdminDAO) Restore(ctx context.Context, adminID int64) error {
	query := `
		UPDATE ADMINS
		SET IS_ACTIVE = 1, DELETED_AT = NULL
		WHERE ADMIN_ID = ? AND IS_ACTIVE = 0
	`

	_, err := dao.db.ExecContext(ctx, query, adminID)
	if err != nil {
		return fmt.Errorf("failed to restore admin: %w", err)
	}

	return nil
}
