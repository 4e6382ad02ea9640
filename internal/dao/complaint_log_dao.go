package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
)

// ComplaintLogDAO handles database operations for complaint audit logs
type ComplaintLogDAO struct {
	db *database.DB
}

// NewComplaintLogDAO creates a new ComplaintLogDAO instance
func NewComplaintLogDAO(db *database.DB) *ComplaintLogDAO {
	return &ComplaintLogDAO{db: db}
}

const complaintLogColumns = `LOG_ID, COMPLAINT_ID, ADMIN_ID, ACTION, OLD_VALUE, NEW_VALUE,
	       DESCRIPTION, VIEW_DURATION, TARGET_ADMIN_ID, ACTION_TIME`

// Create inserts a new audit log record and returns its generated identifier
func (dao *ComplaintLogDAO) Create(ctx context.Context, log *models.ComplaintLog) (int64, error) {
	query := `
		INSERT INTO COMPLAINT_LOGS (
			COMPLAINT_ID, ADMIN_ID, ACTION, OLD_VALUE, NEW_VALUE,
			DESCRIPTION, VIEW_DURATION, TARGET_ADMIN_ID, ACTION_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		log.ComplaintID,
		log.AdminID,
		log.Action,
		log.OldValue,
		log.NewValue,
		log.Description,
		log.ViewDuration,
		log.TargetAdminID,
		log.ActionTime,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to create complaint log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get complaint log id: %w", err)
	}

	return id, nil
}

// CreateWithTx inserts a new audit log record using a transaction
func (dao *ComplaintLogDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, log *models.ComplaintLog) error {
	query := `
		INSERT INTO COMPLAINT_LOGS (
			COMPLAINT_ID, ADMIN_ID, ACTION, OLD_VALUE, NEW_VALUE,
			DESCRIPTION, VIEW_DURATION, TARGET_ADMIN_ID, ACTION_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(
		ctx,
		query,
		log.ComplaintID,
		log.AdminID,
		log.Action,
		log.OldValue,
		log.NewValue,
		log.Description,
		log.ViewDuration,
		log.TargetAdminID,
		log.ActionTime,
	)

	if err != nil {
		return fmt.Errorf("failed to create complaint log with transaction: %w", err)
	}

	return nil
}

// GetByComplaintID retrieves all audit log records for a complaint, newest
// first
func (dao *ComplaintLogDAO) GetByComplaintID(ctx context.Context, complaintID int64) ([]models.ComplaintLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINT_LOGS
		WHERE COMPLAINT_ID = ?
		ORDER BY ACTION_TIME DESC, LOG_ID DESC
	`, complaintLogColumns)

	var logs []models.ComplaintLog
	err := dao.db.SelectContext(ctx, &logs, query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint logs: %w", err)
	}

	return logs, nil
}

// GetByIDAndComplaint retrieves a single audit record scoped to a complaint
func (dao *ComplaintLogDAO) GetByIDAndComplaint(ctx context.Context, logID, complaintID int64) (*models.ComplaintLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINT_LOGS
		WHERE LOG_ID = ? AND COMPLAINT_ID = ?
	`, complaintLogColumns)

	var log models.ComplaintLog
	err := dao.db.GetContext(ctx, &log, query, logID, complaintID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get complaint log: %w", err)
	}

	return &log, nil
}

// SetViewDuration back-fills the view duration on a view record. Only
// ISSUE_VIEWED rows accept a duration; everything else is left untouched.
func (dao *ComplaintLogDAO) SetViewDuration(ctx context.Context, logID int64, durationSeconds int64) error {
	query := `
		UPDATE COMPLAINT_LOGS
		SET VIEW_DURATION = ?
		WHERE LOG_ID = ? AND ACTION = ?
	`

	// MySQL reports zero affected rows when the stored duration already
	// equals the new one, so rows-affected cannot distinguish a missing row
	// from an unchanged one. Callers verify the row exists beforehand.
	_, err := dao.db.ExecContext(ctx, query, durationSeconds, logID, models.ActionIssueViewed)
	if err != nil {
		return fmt.Errorf("failed to set view duration: %w", err)
	}

	return nil
}

// Recent retrieves the most recent audit records across all complaints
func (dao *ComplaintLogDAO) Recent(ctx context.Context, limit int) ([]models.ComplaintLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINT_LOGS
		ORDER BY ACTION_TIME DESC, LOG_ID DESC
		LIMIT ?
	`, complaintLogColumns)

	var logs []models.ComplaintLog
	err := dao.db.SelectContext(ctx, &logs, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent complaint logs: %w", err)
	}

	return logs, nil
}
