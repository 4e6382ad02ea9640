package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/internal/service"
	"github.com/psgtech/techresolve-api/internal/utils"
)

// ComplaintHandler handles complaint-related HTTP requests
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler instance
func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// SubmitComplaint handles POST /complaints
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var request models.ComplaintSubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	response, err := h.complaintService.Submit(c.Request.Context(), &request)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendCreatedResponse(c, response)
}

// TrackComplaint handles GET /complaints/track/:code
func (h *ComplaintHandler) TrackComplaint(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.SendBadRequestError(c, "Complaint code is required", "")
		return
	}

	response, err := h.complaintService.GetByCode(c.Request.Context(), code)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}

// ListLabs handles GET /labs
func (h *ComplaintHandler) ListLabs(c *gin.Context) {
	labs, err := h.complaintService.Labs(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, labs)
}

// ListComplaints handles GET /admin/complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	filter, err := parseComplaintFilter(c)
	if err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	responses, err := h.complaintService.List(c.Request.Context(), filter)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, responses)
}

// GetComplaint handles GET /admin/complaints/:id. The view is recorded
// against the requesting admin and the new log id is returned in the body.
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var viewer *int64
	if adminID, found := utils.GetAdminIDFromContext(c); found {
		viewer = &adminID
	}

	response, err := h.complaintService.Get(c.Request.Context(), complaintID, viewer)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}

// UpdateComplaint handles PUT /admin/complaints/:id
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	complaintID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	adminID, found := utils.GetAdminIDFromContext(c)
	if !found {
		utils.SendUnauthorizedError(c, "Admin identity is required")
		return
	}

	var changes models.ChangeSet
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	response, err := h.complaintService.ApplyChanges(c.Request.Context(), complaintID, adminID, &changes)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}

// RecordViewDuration handles POST /admin/complaints/:id/view-duration
func (h *ComplaintHandler) RecordViewDuration(c *gin.Context) {
	complaintID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request models.ViewDurationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.complaintService.RecordViewDuration(c.Request.Context(), complaintID, &request); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendNoContentResponse(c)
}

// Dashboard handles GET /admin/dashboard
func (h *ComplaintHandler) Dashboard(c *gin.Context) {
	stats, err := h.complaintService.DashboardStats(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, stats)
}

// parseComplaintFilter reads listing filters from query parameters
func parseComplaintFilter(c *gin.Context) (*models.ComplaintFilter, error) {
	filter := &models.ComplaintFilter{
		Email:         c.Query("email"),
		ComplaintCode: c.Query("code"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	if raw := c.Query("labId"); raw != "" {
		labID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.LabID = &labID
	}

	if raw := c.Query("archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		filter.Archived = &archived
	}

	return filter, nil
}

// parseIDParam reads a numeric path parameter, responding with 400 on junk
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid identifier", err.Error())
		return 0, false
	}
	return id, true
}
