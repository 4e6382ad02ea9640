package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/psgtech/techresolve-api/internal/dao"
	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/internal/serviceerror"
	"github.com/psgtech/techresolve-api/pkg/utils"
)

// AdminService handles business logic for admin directory operations
type AdminService struct {
	adminDAO *dao.AdminDAO
	logger   *logrus.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminDAO *dao.AdminDAO, logger *logrus.Logger) *AdminService {
	return &AdminService{
		adminDAO: adminDAO,
		logger:   logger,
	}
}

// Create registers a new admin account with a hashed password
func (s *AdminService) Create(ctx context.Context, request *models.AdminCreateRequest) (*models.Admin, error) {
	if err := utils.ValidateEmail(request.Email); err != nil {
		return nil, serviceerror.New(serviceerror.ErrInvalidArgument, err.Error())
	}
	if err := utils.ValidateMinLength("password", request.Password, 8); err != nil {
		return nil, serviceerror.New(serviceerror.ErrInvalidArgument, err.Error())
	}

	existing, err := s.adminDAO.GetByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if existing != nil {
		return nil, serviceerror.Newf(serviceerror.ErrConflict, "email already registered: %s", request.Email)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedTime:  utils.GetCurrentTimeMillis(),
	}

	adminID, err := s.adminDAO.Create(ctx, admin)
	if err != nil {
		// The pre-check races with concurrent creates; the unique key on
		// EMAIL is the authority.
		if dao.IsDuplicateEntry(err) {
			return nil, serviceerror.Newf(serviceerror.ErrConflict, "email already registered: %s", request.Email)
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	admin.AdminID = adminID

	s.logger.WithFields(logrus.Fields{
		"adminId": adminID,
		"email":   admin.Email,
	}).Info("Admin account created")

	return admin, nil
}

// Get retrieves an admin account by identifier
func (s *AdminService) Get(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := s.adminDAO.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.Newf(serviceerror.ErrNotFound, "admin not found: %d", adminID)
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// List retrieves admin accounts, optionally restricted to active ones
func (s *AdminService) List(ctx context.Context, activeOnly bool) ([]models.Admin, error) {
	admins, err := s.adminDAO.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// SoftDelete deactivates an admin account. The account row survives so that
// audit history keeps valid references. An admin cannot deactivate itself.
func (s *AdminService) SoftDelete(ctx context.Context, actingAdminID, targetAdminID int64) error {
	if actingAdminID == targetAdminID {
		return serviceerror.New(serviceerror.ErrConflict, "cannot deactivate your own account")
	}

	if _, err := s.Get(ctx, targetAdminID); err != nil {
		return err
	}

	err := s.adminDAO.SoftDelete(ctx, targetAdminID, utils.GetCurrentTimeMillis())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// already inactive
			return nil
		}
		return fmt.Errorf("failed to deactivate admin: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"adminId":  targetAdminID,
		"actingBy": actingAdminID,
	}).Info("Admin account deactivated")

	return nil
}

// Restore reactivates a soft-deleted admin account. Restoring an account
// that is already active is a no-op.
func (s *AdminService) Restore(ctx context.Context, adminID int64) error {
	admin, err := s.Get(ctx, adminID)
	if err != nil {
		return err
	}

	if admin.IsActive {
		return nil
	}

	if err := s.adminDAO.Restore(ctx, adminID); err != nil {
		return fmt.Errorf("failed to restore admin: %w", err)
	}

	s.logger.WithField("adminId", adminID).Info("Admin account restored")
	return nil
}

// Authenticate verifies admin credentials. Wrong email and wrong password
// are indistinguishable to the caller; deactivated accounts are reported
// as such only after the password checks out.
func (s *AdminService) Authenticate(ctx context.Context, request *models.AdminLoginRequest) (*models.Admin, error) {
	admin, err := s.adminDAO.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerror.New(serviceerror.ErrUnauthenticated, "invalid email or password")
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if !utils.VerifyPassword(admin.PasswordHash, request.Password) {
		return nil, serviceerror.New(serviceerror.ErrUnauthenticated, "invalid email or password")
	}

	if !admin.IsActive {
		return nil, serviceerror.New(serviceerror.ErrAccountDeactivated, "account has been deactivated")
	}

	return admin, nil
}
