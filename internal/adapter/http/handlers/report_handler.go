package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	response "fenceworks/internal/adapter/http/dto/response"
	"fenceworks/internal/usecase"
	"fenceworks/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) AdminDashboard(c *gin.Context) {
	d, err := h.usecase.AdminDashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminDashboard(d))
}

func (h *ReportHandler) CustomerDashboard(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	d, err := h.usecase.CustomerDashboard(c.Request.Context(), session)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDashboard(d))
}

func (h *ReportHandler) Summary(c *gin.Context) {
	d, err := h.usecase.AdminDashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(d))
}

// ExportQuotes renders the workbook fully before writing so a failure can
// still be reported as JSON.
func (h *ReportHandler) ExportQuotes(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.ExportQuotes(c.Request.Context(), &buf); err != nil {
		log.Printf("[report][handler] export failed err=%v", err)
		writeError(c, mapReportError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quotes.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func mapReportError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrExporterNotConfigured) {
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Report export is not available", http.StatusServiceUnavailable)
	}
	return internalError(err)
}
