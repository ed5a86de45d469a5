package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is an error that maps directly to an HTTP response.
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an ApiError.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError reports a missing resource.
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError reports a missing or invalid identity.
func CreateUnauthorizedError(message string) *ApiError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewApiError(message, http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError reports insufficient privileges.
func CreateForbiddenError() *ApiError {
	return NewApiError("Forbidden: Insufficient privileges.", http.StatusForbidden, "FORBIDDEN")
}

// CreateBadRequestError reports an invalid request payload.
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// HandleError logs err and writes the matching JSON response. Unexpected
// errors become a generic 500 so internals never reach the client.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, "request failed")

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"success": false, "message": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
	})
}

// SuccessResponse writes a success body, optionally with data and message.
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse writes a failure body with the given status code.
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
