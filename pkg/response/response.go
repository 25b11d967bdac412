package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

// JSON sends a success response with the payload as the body. Rows are
// returned flat, without an envelope, to match the API contract.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds with a human-readable confirmation body.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{"message": message})
}

// Error sends an error response as {"message": ...} with the status the
// error carries. Internal detail is never exposed to the caller.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
