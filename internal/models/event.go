package models

// EventKind identifies a notification trigger
type EventKind string

// Notification triggers. Events are collected while a transaction is open
// and dispatched only after it commits, so a rollback never notifies.
const (
	EventComplaintCreated EventKind = "COMPLAINT_CREATED"
	EventStatusChanged    EventKind = "STATUS_CHANGED"
	EventAdminAssigned    EventKind = "ADMIN_ASSIGNED"
)

// NotificationEvent carries the post-commit snapshot handed to the
// notification channels
type NotificationEvent struct {
	Kind          EventKind
	Complaint     *Complaint
	Lab           *Lab
	AssignedAdmin *Admin
	ActingAdmin   *Admin
	OldStatus     Status
}
