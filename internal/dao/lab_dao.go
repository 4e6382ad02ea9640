package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
)

// LabDAO handles database operations for labs
type LabDAO struct {
	db *database.DB
}

// NewLabDAO creates a new LabDAO instance
func NewLabDAO(db *database.DB) *LabDAO {
	return &LabDAO{db: db}
}

// GetByID retrieves a lab by identifier
func (dao *LabDAO) GetByID(ctx context.Context, labID int64) (*models.Lab, error) {
	query := `
		SELECT LAB_ID, NAME, DISCORD_WEBHOOK
		FROM LABS
		WHERE LAB_ID = ?
	`

	var lab models.Lab
	err := dao.db.GetContext(ctx, &lab, query, labID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get lab: %w", err)
	}

	return &lab, nil
}

// GetByName retrieves a lab by name
func (dao *LabDAO) GetByName(ctx context.Context, name string) (*models.Lab, error) {
	query := `
		SELECT LAB_ID, NAME, DISCORD_WEBHOOK
		FROM LABS
		WHERE NAME = ?
	`

	var lab models.Lab
	err := dao.db.GetContext(ctx, &lab, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get lab by name: %w", err)
	}

	return &lab, nil
}

// List retrieves all labs ordered by name
func (dao *LabDAO) List(ctx context.Context) ([]models.Lab, error) {
	query := `
		SELECT LAB_ID, NAME, DISCORD_WEBHOOK
		FROM LABS
		ORDER BY NAME ASC
	`

	var labs []models.Lab
	err := dao.db.SelectContext(ctx, &labs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}

	return labs, nil
}
