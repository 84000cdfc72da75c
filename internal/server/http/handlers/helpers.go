package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/server/http/dto"
	"github.com/digishoplabs/digishop/internal/server/http/middleware"
)

// CurrentClaims extracts authenticated token claims from context.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	return middleware.ClaimsFromContext(c)
}

// respondError maps a domain error onto an HTTP status and envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, pkgAuth.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainErrors.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	}
	c.JSON(status, dto.Fail(message))
}
