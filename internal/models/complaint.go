package models

import (
	"fmt"
)

// Status represents the COMPLAINTS.STATUS column
type Status string

// Complaint lifecycle statuses. Transitions are unrestricted in direction;
// every transition is audited.
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusTerminated Status = "Terminated"
)

// Priority represents the COMPLAINTS.PRIORITY column
type Priority string

// Complaint priorities
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParseStatus validates and converts a raw status string
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusInProgress, StatusResolved, StatusTerminated:
		return Status(raw), nil
	}
	return "", fmt.Errorf("invalid status: %s", raw)
}

// ParsePriority validates and converts a raw priority string
func ParsePriority(raw string) (Priority, error) {
	switch Priority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(raw), nil
	}
	return "", fmt.Errorf("invalid priority: %s", raw)
}

// IsTerminal reports whether the status is eligible for stale archival
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusTerminated
}

// Complaint represents the COMPLAINTS table
type Complaint struct {
	ComplaintID     int64    `db:"COMPLAINT_ID" json:"id"`
	ComplaintCode   string   `db:"COMPLAINT_CODE" json:"complaintCode"`
	Email           string   `db:"EMAIL" json:"email"`
	Name            string   `db:"NAME" json:"name"`
	LabID           int64    `db:"LAB_ID" json:"labId"`
	Category        string   `db:"CATEGORY" json:"category"`
	Description     string   `db:"DESCRIPTION" json:"description"`
	AttachmentPath  *string  `db:"ATTACHMENT_PATH" json:"attachmentPath,omitempty"`
	Status          Status   `db:"STATUS" json:"status"`
	Priority        Priority `db:"PRIORITY" json:"priority"`
	Tags            string   `db:"TAGS" json:"tags"`
	AssignedAdminID *int64   `db:"ASSIGNED_ADMIN_ID" json:"assignedAdminId,omitempty"`
	ResolutionNotes *string  `db:"RESOLUTION_NOTES" json:"resolutionNotes,omitempty"`
	Archived        bool     `db:"ARCHIVED" json:"archived"`
	CreatedTime     int64    `db:"CREATED_TIME" json:"createdTime"`
	UpdatedTime     int64    `db:"UPDATED_TIME" json:"updatedTime"`
}

// ComplaintSubmitRequest represents the API payload for submitting a complaint
type ComplaintSubmitRequest struct {
	Email          string  `json:"email" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	LabID          int64   `json:"labId" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	AttachmentPath *string `json:"attachmentPath,omitempty"`
}

// AssignmentChange carries a proposed assignment. A nil AdminID unassigns.
type AssignmentChange struct {
	AdminID *int64 `json:"adminId"`
}

// ChangeSet carries proposed field changes for a complaint. Nil fields were
// not supplied by the caller and are left untouched; pointer-to-zero values
// clear the field. Remarks is recorded as the audit description for every
// field changed in the same call.
type ChangeSet struct {
	Status          *string           `json:"status,omitempty"`
	Tags            *string           `json:"tags,omitempty"`
	Priority        *string           `json:"priority,omitempty"`
	Assignment      *AssignmentChange `json:"assignment,omitempty"`
	ResolutionNotes *string           `json:"resolutionNotes,omitempty"`
	Archived        *bool             `json:"archived,omitempty"`
	Description     string            `json:"description,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
}

// IsEmpty reports whether the change set proposes nothing at all
func (cs *ChangeSet) IsEmpty() bool {
	return cs.Status == nil &&
		cs.Tags == nil &&
		cs.Priority == nil &&
		cs.Assignment == nil &&
		cs.ResolutionNotes == nil &&
		cs.Archived == nil &&
		cs.Description == ""
}

// ComplaintFilter narrows complaint listings
type ComplaintFilter struct {
	Email         string
	ComplaintCode string
	Status        *Status
	LabID         *int64
	Archived      *bool
}

// AdminRef is the embedded admin reference in responses
type AdminRef struct {
	AdminID int64  `json:"id"`
	Name    string `json:"name"`
}

// LabRef is the embedded lab reference in responses
type LabRef struct {
	LabID int64  `json:"id"`
	Name  string `json:"name"`
}

// ComplaintResponse is the API representation of a complaint
type ComplaintResponse struct {
	ComplaintID     int64     `json:"id"`
	ComplaintCode   string    `json:"complaintCode"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Lab             LabRef    `json:"lab"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	AttachmentPath  *string   `json:"attachmentPath,omitempty"`
	Status          Status    `json:"status"`
	Priority        Priority  `json:"priority"`
	Tags            string    `json:"tags"`
	AssignedAdmin   *AdminRef `json:"assignedAdmin,omitempty"`
	ResolutionNotes *string   `json:"resolutionNotes,omitempty"`
	Archived        bool      `json:"archived"`
	CreatedTime     int64     `json:"createdTime"`
	UpdatedTime     int64     `json:"updatedTime"`
}

// ComplaintDetailResponse bundles a complaint with its audit history
type ComplaintDetailResponse struct {
	Complaint *ComplaintResponse     `json:"complaint"`
	Logs      []ComplaintLogResponse `json:"logs"`
	ViewLogID *int64                 `json:"viewLogId,omitempty"`
}

// DashboardStats summarizes complaint state for the admin dashboard
type DashboardStats struct {
	Total              int64                  `json:"total"`
	StatusCounts       map[string]int64       `json:"statusCounts"`
	PriorityCounts     map[string]int64       `json:"priorityCounts"`
	AvgResolutionHours float64                `json:"avgResolutionHours"`
	RecentLogs         []ComplaintLogResponse `json:"recentLogs"`
}
