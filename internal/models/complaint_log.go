package models

import (
	"fmt"
)

// LogAction tags a single audit entry with the kind of mutation it records
type LogAction string

// Audit actions. Rows are append-only: once written, only VIEW_DURATION may
// be back-filled, and only for ISSUE_VIEWED rows.
const (
	ActionStatusChanged          LogAction = "STATUS_CHANGED"
	ActionTagChanged             LogAction = "TAG_CHANGED"
	ActionPriorityChanged        LogAction = "PRIORITY_CHANGED"
	ActionAdminAssigned          LogAction = "ADMIN_ASSIGNED"
	ActionAdminUnassigned        LogAction = "ADMIN_UNASSIGNED"
	ActionResolutionNotesUpdated LogAction = "RESOLUTION_NOTES_UPDATED"
	ActionArchived               LogAction = "ARCHIVED"
	ActionUnarchived             LogAction = "UNARCHIVED"
	ActionDescriptionAdded       LogAction = "DESCRIPTION_ADDED"
	ActionIssueViewed            LogAction = "ISSUE_VIEWED"
)

// ParseLogAction validates and converts a raw action string
func ParseLogAction(raw string) (LogAction, error) {
	switch LogAction(raw) {
	case ActionStatusChanged, ActionTagChanged, ActionPriorityChanged,
		ActionAdminAssigned, ActionAdminUnassigned, ActionResolutionNotesUpdated,
		ActionArchived, ActionUnarchived, ActionDescriptionAdded, ActionIssueViewed:
		return LogAction(raw), nil
	}
	return "", fmt.Errorf("invalid log action: %s", raw)
}

// ComplaintLog represents the COMPLAINT_LOGS table
type ComplaintLog struct {
	LogID         int64     `db:"LOG_ID" json:"id"`
	ComplaintID   int64     `db:"COMPLAINT_ID" json:"complaintId"`
	AdminID       *int64    `db:"ADMIN_ID" json:"adminId,omitempty"`
	Action        LogAction `db:"ACTION" json:"action"`
	OldValue      *string   `db:"OLD_VALUE" json:"oldValue,omitempty"`
	NewValue      *string   `db:"NEW_VALUE" json:"newValue,omitempty"`
	Description   *string   `db:"DESCRIPTION" json:"description,omitempty"`
	ViewDuration  *int64    `db:"VIEW_DURATION" json:"viewDuration,omitempty"`
	TargetAdminID *int64    `db:"TARGET_ADMIN_ID" json:"targetAdminId,omitempty"`
	ActionTime    int64     `db:"ACTION_TIME" json:"actionTime"`
}

// ComplaintLogResponse is the API representation of an audit entry
type ComplaintLogResponse struct {
	LogID        int64     `json:"id"`
	Action       LogAction `json:"action"`
	OldValue     *string   `json:"oldValue,omitempty"`
	NewValue     *string   `json:"newValue,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ViewDuration *int64    `json:"viewDuration,omitempty"`
	Admin        *AdminRef `json:"admin,omitempty"`
	TargetAdmin  *AdminRef `json:"targetAdmin,omitempty"`
	ActionTime   int64     `json:"actionTime"`
}

// ViewDurationRequest is the API payload for back-filling a view duration
type ViewDurationRequest struct {
	LogID    int64   `json:"logId" binding:"required"`
	Duration float64 `json:"duration"`
}
