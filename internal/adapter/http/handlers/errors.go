package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"fenceworks/internal/adapter/http/middleware"
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/domain/pricing"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Please sign in to continue", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		log.Printf("[http][handler] request failed path=%s status=%d err=%v", c.FullPath(), appErr.HTTPStatus, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError handles the failures every use case can return.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var storeErr *usecase.StoreError
	var validationErr *pricing.ValidationError
	switch {
	case errors.As(err, &storeErr):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "The service is temporarily unavailable. Please try again.", err, http.StatusServiceUnavailable), true
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", "Missing or invalid values: "+strings.Join(validationErr.Fields, ", "), err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidSession):
		return errUnauthorized, true
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this resource", http.StatusForbidden), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// sessionOrAbort writes 401 when the request carries no session. The role
// middlewares redirect before this is reached on routed requests.
func sessionOrAbort(c *gin.Context) (entities.Session, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Session{}, false
	}
	return s, true
}
