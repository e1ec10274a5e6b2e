package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/adapter/http/middleware"
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler signs users up and in. The session token is returned in the
// body for API clients and kept in the cookie session for browsers.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	session, err := h.usecase.SignUp(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[auth][handler] signup failed err=%v", err)
		writeError(c, mapAuthError(err))
		return
	}
	h.startSession(c, http.StatusCreated, session)
}

// CreateUser is the admin-only registration path. It is the only way to
// create an Admin account after the first one is bootstrapped.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	profile, err := h.usecase.CreateUser(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[auth][handler] create user failed err=%v", err)
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(profile))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] signin failed err=%v", err)
		writeError(c, mapAuthError(err))
		return
	}
	h.startSession(c, http.StatusOK, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": middleware.SignInPath})
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.RequestPasswordReset(c.Request.Context(), payload.Email); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Password reset instructions have been sent to your email"})
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var payload request.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.ConfirmPasswordReset(c.Request.Context(), payload.Email, payload.Token, payload.NewPassword); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": middleware.SignInPath})
}

func (h *AuthHandler) startSession(c *gin.Context, status int, session entities.Session) {
	if err := middleware.SaveSessionToken(c, session.Token); err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(status, response.FromSession(session, middleware.HomePath(session.Role)))
}

func mapAuthError(err error) *pkg.AppError {
	var authErr *usecase.AuthError
	if errors.As(err, &authErr) {
		return pkg.NewDomainError(authCode(authErr.Code), authErr.Message(), err, authStatus(authErr.Code))
	}
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidRole) {
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Role must be Customer or Admin", http.StatusBadRequest)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", usecase.AuthMessage(usecase.AuthInternalError), err, http.StatusInternalServerError)
}

func authCode(code usecase.AuthErrorCode) string {
	return "AUTH_" + strings.ToUpper(strings.ReplaceAll(string(code), "-", "_"))
}

func authStatus(code usecase.AuthErrorCode) int {
	switch code {
	case usecase.AuthInvalidCredential, usecase.AuthWrongPassword:
		return http.StatusUnauthorized
	case usecase.AuthUserNotFound:
		return http.StatusNotFound
	case usecase.AuthEmailAlreadyInUse:
		return http.StatusConflict
	case usecase.AuthWeakPassword, usecase.AuthPasswordTooLong, usecase.AuthInvalidEmail, usecase.AuthInvalidResetToken:
		return http.StatusBadRequest
	case usecase.AuthTooManyRequests:
		return http.StatusTooManyRequests
	case usecase.AuthNetworkFailure:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
