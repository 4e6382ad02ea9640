package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/psgtech/techresolve-api/internal/dao"
	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/models"
)

// FakeNotifier records dispatched events instead of delivering them
type FakeNotifier struct {
	Events []*models.NotificationEvent
}

func (f *FakeNotifier) Dispatch(_ context.Context, event *models.NotificationEvent) {
	f.Events = append(f.Events, event)
}

// TestSetup contains common test dependencies backed by a mocked database
type TestSetup struct {
	Mock     sqlmock.Sqlmock
	DB       *database.DB
	Notifier *FakeNotifier
	Service  *ComplaintService
	Admins   *AdminService
	Logger   *logrus.Logger
}

// NewTestSetup creates a service stack over a sqlmock connection
func NewTestSetup(t *testing.T) *TestSetup {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	db := database.NewWithDB(sqlx.NewDb(mockDB, "sqlmock"), logger)

	complaintDAO := dao.NewComplaintDAO(db)
	logDAO := dao.NewComplaintLogDAO(db)
	adminDAO := dao.NewAdminDAO(db)
	labDAO := dao.NewLabDAO(db)

	notifier := &FakeNotifier{}

	return &TestSetup{
		Mock:     mock,
		DB:       db,
		Notifier: notifier,
		Service:  NewComplaintService(complaintDAO, logDAO, adminDAO, labDAO, db, notifier, 30, logger),
		Admins:   NewAdminService(adminDAO, logger),
		Logger:   logger,
	}
}

// Helper to create a pointer to a string
func strPtr(s string) *string {
	return &s
}

// Helper to create a pointer to an int64
func int64Ptr(i int64) *int64 {
	return &i
}

// Helper to create a pointer to a bool
func boolPtr(b bool) *bool {
	return &b
}
