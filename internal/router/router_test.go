package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/dao"
	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/notify"
	"github.com/psgtech/techresolve-api/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	db := database.NewWithDB(sqlx.NewDb(mockDB, "sqlmock"), logger)

	complaintDAO := dao.NewComplaintDAO(db)
	logDAO := dao.NewComplaintLogDAO(db)
	adminDAO := dao.NewAdminDAO(db)
	labDAO := dao.NewLabDAO(db)

	dispatcher := notify.NewDispatcherWithChannels(logger)

	complaintService := service.NewComplaintService(complaintDAO, logDAO, adminDAO, labDAO, db, dispatcher, 30, logger)
	adminService := service.NewAdminService(adminDAO, logger)

	cfg := &config.Config{
		Superadmin: config.SuperadminConfig{
			Email:    "root@psgtech.ac.in",
			Password: "super-secret",
		},
	}

	return SetupRouter(cfg, db, complaintService, adminService), mock
}

func TestAdminRoutesRequireIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperadminRoutesRequireBasicAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/superadmin/admins", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/superadmin/admins", nil)
	req.SetBasicAuth("root@psgtech.ac.in", "wrong")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperadminListAdmins(t *testing.T) {
	router, mock := newTestRouter(t)

	columns := []string{"ADMIN_ID", "NAME", "EMAIL", "PASSWORD_HASH", "ROLE", "IS_ACTIVE", "DELETED_AT", "CREATED_TIME"}
	mock.ExpectQuery("FROM ADMINS").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(9, "Meena", "meena@psgtech.ac.in", "hash", "admin", true, nil, 1700000000000))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/superadmin/admins", nil)
	req.SetBasicAuth("root@psgtech.ac.in", "super-secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "meena@psgtech.ac.in")
	assert.NotContains(t, w.Body.String(), "hash")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitComplaintRejectsBadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/complaints", strings.NewReader(`{"email":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackComplaintNotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("FROM COMPLAINTS").
		WillReturnRows(sqlmock.NewRows([]string{"COMPLAINT_ID"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/complaints/track/CMP2025-9999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
