package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-analytics-api/internal/models"
	"github.com/noah-isme/student-analytics-api/internal/service"
	"github.com/noah-isme/student-analytics-api/pkg/response"
)

type recordService interface {
	Page(ctx context.Context, page, pageSize int) (*models.RecordPage, error)
	Preview(ctx context.Context) ([]models.StudentRecord, error)
}

type exportService interface {
	ExportPage(ctx context.Context, page, pageSize int, format service.ExportFormat) (*service.ExportFile, error)
}

// RecordHandler exposes the raw table endpoints.
type RecordHandler struct {
	records recordService
	exports exportService
}

// NewRecordHandler constructs RecordHandler.
func NewRecordHandler(records recordService, exports exportService) *RecordHandler {
	return &RecordHandler{records: records, exports: exports}
}

// Preview godoc
// @Summary Preview the first 50 records
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorBody
// @Router /api/preview [get]
func (h *RecordHandler) Preview(c *gin.Context) {
	records, err := h.records.Preview(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"count": len(records), "data": records})
}

// Rows godoc
// @Summary List records page by page
// @Tags Records
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param pageSize query int false "Rows per page, clamped to 100" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/rows [get]
func (h *RecordHandler) Rows(c *gin.Context) {
	page, pageSize, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.records.Page(requestContext(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"page":       result.Page,
		"pageSize":   result.PageSize,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"data":       result.Data,
	})
}

// Export godoc
// @Summary Download one page of records
// @Tags Records
// @Produce text/csv
// @Produce application/pdf
// @Param page query int false "Page (1-based)" default(1)
// @Param pageSize query int false "Rows per page, clamped to 100" default(50)
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/rows/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	page, pageSize, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.ExportPage(requestContext(c), page, pageSize, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

func pageParams(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := queryInt(c, "pageSize", service.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
