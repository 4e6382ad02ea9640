package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/internal/service"
	"github.com/psgtech/techresolve-api/internal/utils"
)

// AdminHandler handles admin directory HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var request models.AdminLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	admin, err := h.adminService.Authenticate(c.Request.Context(), &request)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, admin)
}

// ListAdmins handles GET /admin/admins. Only active accounts are returned;
// this backs the assignment picker.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context(), true)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, admins)
}

// CreateAdmin handles POST /superadmin/admins
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var request models.AdminCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), &request)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendCreatedResponse(c, admin)
}

// ListAllAdmins handles GET /superadmin/admins, including deactivated
// accounts
func (h *AdminHandler) ListAllAdmins(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context(), false)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, admins)
}

// DeleteAdmin handles DELETE /superadmin/admins/:id. Accounts are
// deactivated, never removed.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	adminID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid identifier", err.Error())
		return
	}

	actingAdminID, _ := utils.GetAdminIDFromContext(c)
	if err := h.adminService.SoftDelete(c.Request.Context(), actingAdminID, adminID); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendNoContentResponse(c)
}

// RestoreAdmin handles POST /superadmin/admins/:id/restore
func (h *AdminHandler) RestoreAdmin(c *gin.Context) {
	adminID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid identifier", err.Error())
		return
	}

	if err := h.adminService.Restore(c.Request.Context(), adminID); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendNoContentResponse(c)
}
