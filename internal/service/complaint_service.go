package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/psgtech/techresolve-api/internal/dao"
	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/internal/serviceerror"
	"github.com/psgtech/techresolve-api/pkg/utils"
)

// Audit values logged for resolution notes are truncated to this many bytes
const auditValueLimit = 100

// How many audit entries the dashboard shows
const dashboardRecentLogs = 10

// Notifier receives events after the transaction that raised them commits
type Notifier interface {
	Dispatch(ctx context.Context, event *models.NotificationEvent)
}

// ComplaintService handles business logic for complaint operations
type ComplaintService struct {
	complaintDAO *dao.ComplaintDAO
	logDAO       *dao.ComplaintLogDAO
	adminDAO     *dao.AdminDAO
	labDAO       *dao.LabDAO
	db           *database.DB
	notifier     Notifier
	staleDays    int
	logger       *logrus.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(
	complaintDAO *dao.ComplaintDAO,
	logDAO *dao.ComplaintLogDAO,
	adminDAO *dao.AdminDAO,
	labDAO *dao.LabDAO,
	db *database.DB,
	notifier Notifier,
	staleDays int,
	logger *logrus.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaintDAO: complaintDAO,
		logDAO:       logDAO,
		adminDAO:     adminDAO,
		labDAO:       labDAO,
		db:           db,
		notifier:     notifier,
		staleDays:    staleDays,
		logger:       logger,
	}
}

// Submit registers a new complaint. The complaint code is allocated inside
// the same transaction that inserts the row, so two concurrent submissions
// can never share a code. The reporter and the lab channel are notified
// after the transaction commits.
func (s *ComplaintService) Submit(ctx context.Context, request *models.ComplaintSubmitRequest) (*models.ComplaintResponse, error) {
	if err := utils.ValidateEmail(request.Email); err != nil {
		return nil, serviceerror.New(serviceerror.ErrInvalidArgument, err.Error())
	}

	lab, err := s.labDAO.GetByID(ctx, request.LabID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "lab not found: %d", request.LabID)
		}
		return nil, fmt.Errorf("failed to resolve lab: %w", err)
	}

	now := utils.GetCurrentTimeMillis()
	complaint := &models.Complaint{
		Email:          request.Email,
		Name:           request.Name,
		LabID:          lab.LabID,
		Category:       request.Category,
		Description:    request.Description,
		AttachmentPath: request.AttachmentPath,
		Status:         models.StatusPending,
		Priority:       models.PriorityLow,
		Tags:           "none",
		CreatedTime:    now,
		UpdatedTime:    now,
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	prefix := utils.CurrentComplaintCodePrefix()
	maxNumber, err := s.complaintDAO.MaxCodeNumberWithTx(ctx, tx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate complaint code: %w", err)
	}
	complaint.ComplaintCode = utils.FormatComplaintCode(time.Now().UTC().Year(), maxNumber+1)

	complaintID, err := s.complaintDAO.CreateWithTx(ctx, tx, complaint)
	if err != nil {
		if dao.IsDuplicateEntry(err) {
			return nil, serviceerror.Newf(serviceerror.ErrConflict, "complaint code already allocated: %s", complaint.ComplaintCode)
		}
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	complaint.ComplaintID = complaintID

	// The first audit entry seeds the tag history
	oldTags := ""
	newTags := complaint.Tags
	initialDescription := "Initial tag set to none"
	initialLog := &models.ComplaintLog{
		ComplaintID: complaintID,
		Action:      models.ActionTagChanged,
		OldValue:    &oldTags,
		NewValue:    &newTags,
		Description: &initialDescription,
		ActionTime:  now,
	}
	if err := s.logDAO.CreateWithTx(ctx, tx, initialLog); err != nil {
		return nil, fmt.Errorf("failed to create initial log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"complaintId":   complaintID,
		"complaintCode": complaint.ComplaintCode,
		"lab":           lab.Name,
	}).Info("Complaint submitted")

	s.notifier.Dispatch(ctx, &models.NotificationEvent{
		Kind:      models.EventComplaintCreated,
		Complaint: complaint,
		Lab:       lab,
	})

	return s.buildResponse(ctx, complaint), nil
}

// ApplyChanges applies an admin's change set to a complaint. Changes are
// evaluated in a fixed order (status, tags, priority, assignment, resolution
// notes, archived flag, description) and every actual difference produces
// exactly one audit entry; re-submitting current values produces none.
// Notifications fire only after the transaction commits.
func (s *ComplaintService) ApplyChanges(ctx context.Context, complaintID, actingAdminID int64, changes *models.ChangeSet) (*models.ComplaintResponse, error) {
	if changes == nil || changes.IsEmpty() {
		return nil, serviceerror.New(serviceerror.ErrInvalidArgument, "no changes supplied")
	}

	actingAdmin, err := s.resolveActiveAdmin(ctx, actingAdminID)
	if err != nil {
		return nil, err
	}

	// Validate enums before touching the database
	var newStatus *models.Status
	if changes.Status != nil {
		parsed, err := models.ParseStatus(*changes.Status)
		if err != nil {
			return nil, serviceerror.New(serviceerror.ErrInvalidArgument, err.Error())
		}
		newStatus = &parsed
	}
	var newPriority *models.Priority
	if changes.Priority != nil {
		parsed, err := models.ParsePriority(*changes.Priority)
		if err != nil {
			return nil, serviceerror.New(serviceerror.ErrInvalidArgument, err.Error())
		}
		newPriority = &parsed
	}

	var targetAdmin *models.Admin
	if changes.Assignment != nil && changes.Assignment.AdminID != nil {
		targetAdmin, err = s.adminDAO.GetByID(ctx, *changes.Assignment.AdminID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, serviceerror.Newf(serviceerror.ErrNotFound, "admin not found: %d", *changes.Assignment.AdminID)
			}
			return nil, fmt.Errorf("failed to resolve target admin: %w", err)
		}
		if !targetAdmin.IsActive {
			return nil, serviceerror.Newf(serviceerror.ErrInvalidArgument, "cannot assign deactivated admin: %d", targetAdmin.AdminID)
		}
	}

	now := utils.GetCurrentTimeMillis()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	complaint, err := s.complaintDAO.GetByIDWithTx(ctx, tx, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "complaint not found: %d", complaintID)
		}
		return nil, fmt.Errorf("failed to load complaint: %w", err)
	}

	var remarks *string
	if changes.Remarks != "" {
		remarks = &changes.Remarks
	}

	var auditLogs []*models.ComplaintLog
	var events []*models.NotificationEvent
	addLog := func(action models.LogAction, oldValue, newValue *string, targetAdminID *int64) {
		auditLogs = append(auditLogs, &models.ComplaintLog{
			ComplaintID:   complaint.ComplaintID,
			AdminID:       &actingAdmin.AdminID,
			Action:        action,
			OldValue:      oldValue,
			NewValue:      newValue,
			Description:   remarks,
			TargetAdminID: targetAdminID,
			ActionTime:    now,
		})
	}

	if newStatus != nil && *newStatus != complaint.Status {
		oldValue := string(complaint.Status)
		newValue := string(*newStatus)
		addLog(models.ActionStatusChanged, &oldValue, &newValue, nil)
		events = append(events, &models.NotificationEvent{
			Kind:        models.EventStatusChanged,
			ActingAdmin: actingAdmin,
			OldStatus:   complaint.Status,
		})
		complaint.Status = *newStatus
	}

	if changes.Tags != nil && *changes.Tags != complaint.Tags {
		oldValue := complaint.Tags
		addLog(models.ActionTagChanged, &oldValue, changes.Tags, nil)
		complaint.Tags = *changes.Tags
	}

	if newPriority != nil && *newPriority != complaint.Priority {
		oldValue := string(complaint.Priority)
		newValue := string(*newPriority)
		addLog(models.ActionPriorityChanged, &oldValue, &newValue, nil)
		complaint.Priority = *newPriority
	}

	if changes.Assignment != nil && !sameAssignment(complaint.AssignedAdminID, changes.Assignment.AdminID) {
		oldValue, err := s.adminName(ctx, complaint.AssignedAdminID)
		if err != nil {
			return nil, err
		}
		if targetAdmin != nil {
			newValue := targetAdmin.Name
			addLog(models.ActionAdminAssigned, oldValue, &newValue, &targetAdmin.AdminID)
			complaint.AssignedAdminID = &targetAdmin.AdminID
			events = append(events, &models.NotificationEvent{
				Kind:          models.EventAdminAssigned,
				AssignedAdmin: targetAdmin,
				ActingAdmin:   actingAdmin,
			})
		} else {
			addLog(models.ActionAdminUnassigned, oldValue, nil, nil)
			complaint.AssignedAdminID = nil
		}
	}

	if changes.ResolutionNotes != nil {
		oldNotes := ""
		if complaint.ResolutionNotes != nil {
			oldNotes = *complaint.ResolutionNotes
		}
		if *changes.ResolutionNotes != oldNotes {
			var oldValue, newValue *string
			if oldNotes != "" {
				truncated := utils.Truncate(oldNotes, auditValueLimit)
				oldValue = &truncated
			}
			if *changes.ResolutionNotes != "" {
				truncated := utils.Truncate(*changes.ResolutionNotes, auditValueLimit)
				newValue = &truncated
			}
			addLog(models.ActionResolutionNotesUpdated, oldValue, newValue, nil)
			complaint.ResolutionNotes = changes.ResolutionNotes
		}
	}

	if changes.Archived != nil && *changes.Archived != complaint.Archived {
		oldValue := archiveLabel(complaint.Archived)
		newValue := archiveLabel(*changes.Archived)
		if *changes.Archived {
			addLog(models.ActionArchived, &oldValue, &newValue, nil)
		} else {
			addLog(models.ActionUnarchived, &oldValue, &newValue, nil)
		}
		complaint.Archived = *changes.Archived
	}

	if changes.Description != "" {
		auditLogs = append(auditLogs, &models.ComplaintLog{
			ComplaintID: complaint.ComplaintID,
			AdminID:     &actingAdmin.AdminID,
			Action:      models.ActionDescriptionAdded,
			Description: &changes.Description,
			ActionTime:  now,
		})
	}

	if len(auditLogs) > 0 {
		complaint.UpdatedTime = now
		if err := s.complaintDAO.UpdateWithTx(ctx, tx, complaint); err != nil {
			return nil, fmt.Errorf("failed to update complaint: %w", err)
		}
		for _, log := range auditLogs {
			if err := s.logDAO.CreateWithTx(ctx, tx, log); err != nil {
				return nil, fmt.Errorf("failed to create audit log: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"complaintId": complaint.ComplaintID,
		"adminId":     actingAdmin.AdminID,
		"changes":     len(auditLogs),
	}).Info("Complaint updated")

	if len(events) > 0 {
		lab, err := s.labDAO.GetByID(ctx, complaint.LabID)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to resolve lab for notifications")
		}
		// Events carry the committed snapshot, so a status notification sent
		// alongside new resolution notes includes those notes
		for _, event := range events {
			event.Complaint = complaint
			event.Lab = lab
			s.notifier.Dispatch(ctx, event)
		}
	}

	return s.buildResponse(ctx, complaint), nil
}

// Get retrieves a complaint with its audit history. When a viewer is given,
// the view itself is recorded and the new log's identifier is returned so
// the caller can back-fill the view duration later.
func (s *ComplaintService) Get(ctx context.Context, complaintID int64, viewerAdminID *int64) (*models.ComplaintDetailResponse, error) {
	complaint, err := s.complaintDAO.GetByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "complaint not found: %d", complaintID)
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	var viewLogID *int64
	if viewerAdminID != nil {
		logID, err := s.RecordView(ctx, complaint.ComplaintID, *viewerAdminID)
		if err != nil {
			return nil, err
		}
		viewLogID = &logID
	}

	logs, err := s.logDAO.GetByComplaintID(ctx, complaint.ComplaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint logs: %w", err)
	}

	return &models.ComplaintDetailResponse{
		Complaint: s.buildResponse(ctx, complaint),
		Logs:      s.buildLogResponses(ctx, logs),
		ViewLogID: viewLogID,
	}, nil
}

// GetByCode retrieves a complaint by its public reference code. No view is
// recorded; this is the reporter-facing tracking path.
func (s *ComplaintService) GetByCode(ctx context.Context, code string) (*models.ComplaintDetailResponse, error) {
	complaint, err := s.complaintDAO.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "complaint not found: %s", code)
		}
		return nil, fmt.Errorf("failed to get complaint by code: %w", err)
	}

	logs, err := s.logDAO.GetByComplaintID(ctx, complaint.ComplaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint logs: %w", err)
	}

	return &models.ComplaintDetailResponse{
		Complaint: s.buildResponse(ctx, complaint),
		Logs:      s.buildLogResponses(ctx, logs),
	}, nil
}

// RecordView appends a view entry to the complaint's history and returns its
// log id so the caller can later attach a view duration to it.
func (s *ComplaintService) RecordView(ctx context.Context, complaintID, actingAdminID int64) (int64, error) {
	viewer, err := s.resolveActiveAdmin(ctx, actingAdminID)
	if err != nil {
		return 0, err
	}
	logID, err := s.logDAO.Create(ctx, &models.ComplaintLog{
		ComplaintID: complaintID,
		AdminID:     &viewer.AdminID,
		Action:      models.ActionIssueViewed,
		ActionTime:  utils.GetCurrentTimeMillis(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record view: %w", err)
	}
	return logID, nil
}

// RecordViewDuration back-fills how long an admin spent on a complaint view.
// The log entry must belong to the complaint and must be a view record.
func (s *ComplaintService) RecordViewDuration(ctx context.Context, complaintID int64, request *models.ViewDurationRequest) error {
	log, err := s.logDAO.GetByIDAndComplaint(ctx, request.LogID, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return serviceerror.Newf(serviceerror.ErrNotFound, "log entry not found: %d", request.LogID)
		}
		return fmt.Errorf("failed to get log entry: %w", err)
	}

	if log.Action != models.ActionIssueViewed {
		return serviceerror.Newf(serviceerror.ErrInvalidArgument, "log entry %d is not a view record", request.LogID)
	}

	if request.Duration < 0 {
		return serviceerror.New(serviceerror.ErrInvalidArgument, "duration cannot be negative")
	}

	if err := s.logDAO.SetViewDuration(ctx, request.LogID, int64(request.Duration)); err != nil {
		return fmt.Errorf("failed to set view duration: %w", err)
	}

	return nil
}

// List retrieves complaints matching the filter, newest first. Stale
// complaints are swept into the archive before listing so the caller never
// sees a terminal complaint that should already be archived.
func (s *ComplaintService) List(ctx context.Context, filter *models.ComplaintFilter) ([]models.ComplaintResponse, error) {
	if _, err := s.SweepStaleArchival(ctx); err != nil {
		s.logger.WithError(err).Warn("Stale archival sweep failed")
	}

	complaints, err := s.complaintDAO.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	responses := make([]models.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		responses = append(responses, *s.buildResponse(ctx, &complaints[i]))
	}
	return responses, nil
}

// SweepStaleArchival archives complaints that reached a terminal status and
// have not been touched for the configured number of days. Each archived
// complaint gets an audit entry with no acting admin. Returns how many
// complaints were archived.
func (s *ComplaintService) SweepStaleArchival(ctx context.Context) (int, error) {
	threshold := utils.DaysAgo(s.staleDays)
	now := utils.GetCurrentTimeMillis()

	archived := 0
	err := s.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		stale, err := s.complaintDAO.ListStaleWithTx(ctx, tx, threshold)
		if err != nil {
			return err
		}

		for i := range stale {
			complaint := &stale[i]
			if err := s.complaintDAO.ArchiveWithTx(ctx, tx, complaint.ComplaintID, now); err != nil {
				return err
			}

			oldValue := archiveLabel(false)
			newValue := archiveLabel(true)
			description := fmt.Sprintf("Automatically archived after %d days of inactivity", s.staleDays)
			log := &models.ComplaintLog{
				ComplaintID: complaint.ComplaintID,
				Action:      models.ActionArchived,
				OldValue:    &oldValue,
				NewValue:    &newValue,
				Description: &description,
				ActionTime:  now,
			}
			if err := s.logDAO.CreateWithTx(ctx, tx, log); err != nil {
				return err
			}
			archived++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale complaints: %w", err)
	}

	if archived > 0 {
		s.logger.WithField("count", archived).Info("Archived stale complaints")
	}

	return archived, nil
}

// Labs lists the labs available on the submission form
func (s *ComplaintService) Labs(ctx context.Context) ([]models.LabRef, error) {
	labs, err := s.labDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}

	refs := make([]models.LabRef, 0, len(labs))
	for i := range labs {
		refs = append(refs, labs[i].Ref())
	}
	return refs, nil
}

// DashboardStats aggregates complaint counts and recent activity
func (s *ComplaintService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	total, err := s.complaintDAO.CountTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint total: %w", err)
	}

	statusCounts, err := s.complaintDAO.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	priorityCounts, err := s.complaintDAO.CountByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get priority counts: %w", err)
	}

	avgMillis, err := s.complaintDAO.AvgResolutionMillis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get average resolution time: %w", err)
	}

	recent, err := s.logDAO.Recent(ctx, dashboardRecentLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent logs: %w", err)
	}

	return &models.DashboardStats{
		Total:              total,
		StatusCounts:       statusCounts,
		PriorityCounts:     priorityCounts,
		AvgResolutionHours: avgMillis / float64(time.Hour/time.Millisecond),
		RecentLogs:         s.buildLogResponses(ctx, recent),
	}, nil
}

// resolveActiveAdmin loads an admin and rejects missing or deactivated ones
func (s *ComplaintService) resolveActiveAdmin(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := s.adminDAO.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "admin not found: %d", adminID)
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if !admin.IsActive {
		return nil, serviceerror.Newf(serviceerror.ErrAccountDeactivated, "admin %d is deactivated", adminID)
	}
	return admin, nil
}

// adminName resolves an optional admin id to its display name
func (s *ComplaintService) adminName(ctx context.Context, adminID *int64) (*string, error) {
	if adminID == nil {
		return nil, nil
	}
	admin, err := s.adminDAO.GetByID(ctx, *adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	name := admin.Name
	return &name, nil
}

// buildResponse assembles the API representation of a complaint. Reference
// lookups are best effort; a missing lab or admin degrades to a bare id.
func (s *ComplaintService) buildResponse(ctx context.Context, complaint *models.Complaint) *models.ComplaintResponse {
	response := &models.ComplaintResponse{
		ComplaintID:     complaint.ComplaintID,
		ComplaintCode:   complaint.ComplaintCode,
		Email:           complaint.Email,
		Name:            complaint.Name,
		Lab:             models.LabRef{LabID: complaint.LabID},
		Category:        complaint.Category,
		Description:     complaint.Description,
		AttachmentPath:  complaint.AttachmentPath,
		Status:          complaint.Status,
		Priority:        complaint.Priority,
		Tags:            complaint.Tags,
		ResolutionNotes: complaint.ResolutionNotes,
		Archived:        complaint.Archived,
		CreatedTime:     complaint.CreatedTime,
		UpdatedTime:     complaint.UpdatedTime,
	}

	if lab, err := s.labDAO.GetByID(ctx, complaint.LabID); err == nil {
		response.Lab = lab.Ref()
	}

	if complaint.AssignedAdminID != nil {
		if admin, err := s.adminDAO.GetByID(ctx, *complaint.AssignedAdminID); err == nil {
			response.AssignedAdmin = admin.Ref()
		} else {
			response.AssignedAdmin = &models.AdminRef{AdminID: *complaint.AssignedAdminID}
		}
	}

	return response
}

// buildLogResponses assembles the API representation of audit entries,
// resolving admin references once per distinct id
func (s *ComplaintService) buildLogResponses(ctx context.Context, logs []models.ComplaintLog) []models.ComplaintLogResponse {
	refs := make(map[int64]*models.AdminRef)
	resolve := func(adminID *int64) *models.AdminRef {
		if adminID == nil {
			return nil
		}
		if ref, ok := refs[*adminID]; ok {
			return ref
		}
		ref := &models.AdminRef{AdminID: *adminID}
		if admin, err := s.adminDAO.GetByID(ctx, *adminID); err == nil {
			ref = admin.Ref()
		}
		refs[*adminID] = ref
		return ref
	}

	responses := make([]models.ComplaintLogResponse, 0, len(logs))
	for i := range logs {
		log := &logs[i]
		responses = append(responses, models.ComplaintLogResponse{
			LogID:        log.LogID,
			Action:       log.Action,
			OldValue:     log.OldValue,
			NewValue:     log.NewValue,
			Description:  log.Description,
			ViewDuration: log.ViewDuration,
			Admin:        resolve(log.AdminID),
			TargetAdmin:  resolve(log.TargetAdminID),
			ActionTime:   log.ActionTime,
		})
	}
	return responses
}

// sameAssignment reports whether two optional admin ids refer to the same
// assignment state
func sameAssignment(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func archiveLabel(archived bool) string {
	if archived {
		return "Archived"
	}
	return "Active"
}
