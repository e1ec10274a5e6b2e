package handlers

import (
	"errors"
	"net/http"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the caller's profile, the admin user list and the
// company settings.
type AccountHandler struct {
	users    usecase.IUserUseCase
	settings usecase.ISettingsUseCase
}

func NewAccountHandler(users usecase.IUserUseCase, settings usecase.ISettingsUseCase) *AccountHandler {
	return &AccountHandler{users: users, settings: settings}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	profile, err := h.users.GetProfile(c.Request.Context(), session)
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(profile))
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	profile, err := h.users.UpdateProfile(c.Request.Context(), session, payload.ToUpdate())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(profile))
}

func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *AccountHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

func (h *AccountHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	s, err := h.settings.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

func mapAccountError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSettings):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid settings", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
