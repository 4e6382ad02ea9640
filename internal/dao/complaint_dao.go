package dao

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
)

// ComplaintDAO handles database operations for complaints
type ComplaintDAO struct {
	db *database.DB
}

// NewComplaintDAO creates a new ComplaintDAO instance
func NewComplaintDAO(db *database.DB) *ComplaintDAO {
	return &ComplaintDAO{db: db}
}

const complaintColumns = `COMPLAINT_ID, COMPLAINT_CODE, EMAIL, NAME, LAB_ID, CATEGORY,
	       DESCRIPTION, ATTACHMENT_PATH, STATUS, PRIORITY, TAGS,
	       ASSIGNED_ADMIN_ID, RESOLUTION_NOTES, ARCHIVED, CREATED_TIME, UPDATED_TIME`

// CreateWithTx inserts a new complaint using a transaction and returns its
// generated identifier
func (dao *ComplaintDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, complaint *models.Complaint) (int64, error) {
	query := `
		INSERT INTO COMPLAINTS (
			COMPLAINT_CODE, EMAIL, NAME, LAB_ID, CATEGORY, DESCRIPTION,
			ATTACHMENT_PATH, STATUS, PRIORITY, TAGS, ASSIGNED_ADMIN_ID,
			RESOLUTION_NOTES, ARCHIVED, CREATED_TIME, UPDATED_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(
		ctx,
		query,
		complaint.ComplaintCode,
		complaint.Email,
		complaint.Name,
		complaint.LabID,
		complaint.Category,
		complaint.Description,
		complaint.AttachmentPath,
		complaint.Status,
		complaint.Priority,
		complaint.Tags,
		complaint.AssignedAdminID,
		complaint.ResolutionNotes,
		complaint.Archived,
		complaint.CreatedTime,
		complaint.UpdatedTime,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to create complaint with transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get complaint id: %w", err)
	}

	return id, nil
}

// MaxCodeNumberWithTx returns the highest numeric suffix already allocated
// for the given code prefix. The row set is locked until the transaction
// completes so concurrent submissions cannot allocate the same code.
func (dao *ComplaintDAO) MaxCodeNumberWithTx(ctx context.Context, tx *database.Transaction, prefix string) (int64, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING_INDEX(COMPLAINT_CODE, '-', -1) AS UNSIGNED)), 0)
		FROM COMPLAINTS
		WHERE COMPLAINT_CODE LIKE ?
		FOR UPDATE
	`

	var max int64
	err := tx.GetContext(ctx, &max, query, prefix+"%")
	if err != nil {
		return 0, fmt.Errorf("failed to get max complaint code number: %w", err)
	}

	return max, nil
}

// GetByID retrieves a complaint by its identifier
func (dao *ComplaintDAO) GetByID(ctx context.Context, complaintID int64) (*models.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINTS
		WHERE COMPLAINT_ID = ?
	`, complaintColumns)

	var complaint models.Complaint
	err := dao.db.GetContext(ctx, &complaint, query, complaintID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return &complaint, nil
}

// GetByIDWithTx retrieves a complaint by its identifier using a transaction,
// locking the row for the duration of the transaction
func (dao *ComplaintDAO) GetByIDWithTx(ctx context.Context, tx *database.Transaction, complaintID int64) (*models.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINTS
		WHERE COMPLAINT_ID = ?
		FOR UPDATE
	`, complaintColumns)

	var complaint models.Complaint
	err := tx.GetContext(ctx, &complaint, query, complaintID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return &complaint, nil
}

// GetByCode retrieves a complaint by its public complaint code
func (dao *ComplaintDAO) GetByCode(ctx context.Context, code string) (*models.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINTS
		WHERE COMPLAINT_CODE = ?
	`, complaintColumns)

	var complaint models.Complaint
	err := dao.db.GetContext(ctx, &complaint, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get complaint by code: %w", err)
	}

	return &complaint, nil
}

// List retrieves complaints matching the filter, newest first
func (dao *ComplaintDAO) List(ctx context.Context, filter *models.ComplaintFilter) ([]models.Complaint, error) {
	var conditions []string
	var args []interface{}

	if filter != nil {
		if filter.Email != "" {
			conditions = append(conditions, "EMAIL = ?")
			args = append(args, filter.Email)
		}
		if filter.ComplaintCode != "" {
			conditions = append(conditions, "COMPLAINT_CODE = ?")
			args = append(args, filter.ComplaintCode)
		}
		if filter.Status != nil {
			conditions = append(conditions, "STATUS = ?")
			args = append(args, *filter.Status)
		}
		if filter.LabID != nil {
			conditions = append(conditions, "LAB_ID = ?")
			args = append(args, *filter.LabID)
		}
		if filter.Archived != nil {
			conditions = append(conditions, "ARCHIVED = ?")
			args = append(args, *filter.Archived)
		}
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINTS%s
		ORDER BY CREATED_TIME DESC
	`, complaintColumns, whereClause)

	var complaints []models.Complaint
	err := dao.db.SelectContext(ctx, &complaints, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return complaints, nil
}

// UpdateWithTx updates the mutable fields of a complaint using a transaction
func (dao *ComplaintDAO) UpdateWithTx(ctx context.Context, tx *database.Transaction, complaint *models.Complaint) error {
	query := `
		UPDATE COMPLAINTS
		SET STATUS = ?, PRIORITY = ?, TAGS = ?, ASSIGNED_ADMIN_ID = ?,
		    RESOLUTION_NOTES = ?, ARCHIVED = ?, UPDATED_TIME = ?
		WHERE COMPLAINT_ID = ?
	`

	// Existence is established by the locking read earlier in the same
	// transaction. MySQL's changed-rows semantics report zero affected rows
	// for a no-byte-change update, so rows-affected is not checked here.
	_, err := tx.ExecContext(
		ctx,
		query,
		complaint.Status,
		complaint.Priority,
		complaint.Tags,
		complaint.AssignedAdminID,
		complaint.ResolutionNotes,
		complaint.Archived,
		complaint.UpdatedTime,
		complaint.ComplaintID,
	)

	if err != nil {
		return fmt.Errorf("failed to update complaint with transaction: %w", err)
	}

	return nil
}

// ListStaleWithTx retrieves unarchived complaints whose status is terminal
// and whose last update predates the threshold, locking the rows
func (dao *ComplaintDAO) ListStaleWithTx(ctx context.Context, tx *database.Transaction, threshold int64) ([]models.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM COMPLAINTS
		WHERE ARCHIVED = 0
		  AND STATUS IN (?, ?)
		  AND UPDATED_TIME < ?
		FOR UPDATE
	`, complaintColumns)

	var complaints []models.Complaint
	err := tx.SelectContext(ctx, &complaints, query, models.StatusResolved, models.StatusTerminated, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale complaints: %w", err)
	}

	return complaints, nil
}

// ArchiveWithTx flags a complaint as archived using a transaction
func (dao *ComplaintDAO) ArchiveWithTx(ctx context.Context, tx *database.Transaction, complaintID int64, updatedTime int64) error {
	query := `
		UPDATE COMPLAINTS
		SET ARCHIVED = 1, UPDATED_TIME = ?
		WHERE COMPLAINT_ID = ?
	`

	_, err := tx.ExecContext(ctx, query, updatedTime, complaintID)
	if err != nil {
		return fmt.Errorf("failed to archive complaint with transaction: %w", err)
	}

	return nil
}

// statusCountRow maps a grouped count result
type statusCountRow struct {
	Key   string `db:"K"`
	Count int64  `db:"CNT"`
}

// CountTotal returns the total number of complaints
func (dao *ComplaintDAO) CountTotal(ctx context.Context) (int64, error) {
	var total int64
	err := dao.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM COMPLAINTS")
	if err != nil {
		return 0, fmt.Errorf("failed to count complaints: %w", err)
	}
	return total, nil
}

// CountByStatus returns complaint counts grouped by status
func (dao *ComplaintDAO) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `SELECT STATUS AS K, COUNT(*) AS CNT FROM COMPLAINTS GROUP BY STATUS`

	var rows []statusCountRow
	err := dao.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count complaints by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// CountByPriority returns complaint counts grouped by priority
func (dao *ComplaintDAO) CountByPriority(ctx context.Context) (map[string]int64, error) {
	query := `SELECT PRIORITY AS K, COUNT(*) AS CNT FROM COMPLAINTS GROUP BY PRIORITY`

	var rows []statusCountRow
	err := dao.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count complaints by priority: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// AvgResolutionMillis returns the average time from submission to the last
// update of resolved complaints, in milliseconds. Zero when none exist.
func (dao *ComplaintDAO) AvgResolutionMillis(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(UPDATED_TIME - CREATED_TIME), 0)
		FROM COMPLAINTS
		WHERE STATUS = ?
	`

	var avg float64
	err := dao.db.GetContext(ctx, &avg, query, models.StatusResolved)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average resolution time: %w", err)
	}

	return avg, nil
}
