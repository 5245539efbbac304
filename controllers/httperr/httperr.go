// Package httperr maps service-layer domain errors onto HTTP responses so
// handlers never leak storage errors to clients.
package httperr

import (
	"errors"
	"net/http"

	"github.com/TroyMoses/walker-furniture-sub000/models"
	"github.com/gin-gonic/gin"
)

// JSON writes the response for err. Unknown errors become a generic 500.
func JSON(c *gin.Context, err error) {
	var domainErr *models.DomainError
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case "UNAUTHENTICATED":
		status = http.StatusUnauthorized
	case "NOT_AUTHORIZED":
		status = http.StatusForbidden
	case "VALIDATION_ERROR", "INVALID_TRANSITION":
		status = http.StatusBadRequest
	case "NOT_FOUND":
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": domainErr.Message, "code": domainErr.Code})
}
