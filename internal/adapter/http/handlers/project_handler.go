package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fenceworks/internal/adapter/http/dto/request"
	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// Create opens the installation project for an approved quote.
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	project, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.QuoteID)
	if err != nil {
		log.Printf("[project][handler] create failed quote_id=%s err=%v", payload.QuoteID, err)
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	patch, ok := payload.ToPatch()
	if !ok {
		writeError(c, mapProjectError(usecase.ErrInvalidProject))
		return
	}
	id := c.Param("id")
	project, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[project][handler] update failed project_id=%s err=%v", id, err)
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	projects, err := h.usecase.ListByCustomer(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func mapProjectError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProject):
		return pkg.NewDomainErrorSimple("INVALID_PROJECT", "Invalid project status or progress", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Only approved quotes can become projects", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectAlreadyExists):
		return pkg.NewDomainErrorSimple("PROJECT_ALREADY_EXISTS", "A project already exists for this quote", http.StatusConflict)
	default:
		return internalError(err)
	}
}
