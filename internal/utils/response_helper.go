package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/internal/serviceerror"
)

// AdminIDContextKey is the gin context key carrying the acting admin id
const AdminIDContextKey = "adminID"

// SendErrorResponse sends an error JSON response
func SendErrorResponse(c *gin.Context, statusCode int, errCode, message, details string) {
	c.JSON(statusCode, models.ErrorResponse{
		Code:    errCode,
		Message: message,
		Details: details,
	})
}

// SendCreatedResponse sends a 201 Created response
func SendCreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendOKResponse sends a 200 OK response
func SendOKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendNoContentResponse sends a 204 No Content response
func SendNoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SendBadRequestError sends a 400 Bad Request error
func SendBadRequestError(c *gin.Context, message, details string) {
	SendErrorResponse(c, http.StatusBadRequest, models.ErrCodeBadRequest, message, details)
}

// SendUnauthorizedError sends a 401 Unauthorized error
func SendUnauthorizedError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusUnauthorized, models.ErrCodeUnauthorized, message, "")
}

// SendNotFoundError sends a 404 Not Found error
func SendNotFoundError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusNotFound, models.ErrCodeNotFound, message, "")
}

// SendInternalServerError sends a 500 Internal Server Error
func SendInternalServerError(c *gin.Context, message, details string) {
	SendErrorResponse(c, http.StatusInternalServerError, models.ErrCodeInternalError, message, details)
}

// SendValidationError sends a validation error response
func SendValidationError(c *gin.Context, details string) {
	SendErrorResponse(c, http.StatusBadRequest, models.ErrCodeValidationError, "Validation failed", details)
}

// SendServiceError maps a service-layer error onto the HTTP response. Service
// errors carry their own code; anything else becomes a generic 500 without
// leaking internals.
func SendServiceError(c *gin.Context, err error) {
	var svcErr *serviceerror.ServiceError
	if errors.As(err, &svcErr) {
		SendErrorResponse(c, models.HTTPStatusForErrorCode(svcErr.Code), svcErr.Code, svcErr.Message, svcErr.Description)
		return
	}
	SendInternalServerError(c, "An unexpected error occurred", "")
}

// GetAdminIDFromContext extracts the acting admin id set by the auth
// middleware. The second return is false when no admin is bound.
func GetAdminIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(AdminIDContextKey)
	if !exists {
		return 0, false
	}
	adminID, ok := value.(int64)
	return adminID, ok
}
