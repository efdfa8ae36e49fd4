package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paperstack/backend/internal/model"
	"github.com/paperstack/backend/internal/service"
)

// Uploads above this size are rejected before extraction.
const maxUploadBytes = 20 << 20

type DocumentHandler struct {
	documents *service.DocumentService
	reports   *service.ReportService
}

func NewDocumentHandler(documents *service.DocumentService, reports *service.ReportService) *DocumentHandler {
	return &DocumentHandler{documents: documents, reports: reports}
}

// Upload godoc
// @Summary Upload a PDF document
// @Description Extracts the text, optionally enriches it with an LLM summary, and stores the document under the authenticated account.
// @Tags documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF file"
// @Success 200 {object} model.DocumentResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}

	doc, err := h.documents.Ingest(c.Request.Context(), user.ID, fileHeader.Filename, content)
	if err != nil {
		if err == service.ErrUnreadableDocument {
			c.JSON(http.StatusBadRequest, gin.H{"error": "not a readable PDF"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, doc.Response())
}

// List godoc
// @Summary List the authenticated account's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DocumentResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	docs, err := h.documents.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	responses := make([]model.DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, docs[i].Response())
	}
	c.JSON(http.StatusOK, responses)
}

// Report godoc
// @Summary Download an Excel report of the account's documents
// @Tags documents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/documents/report [get]
func (h *DocumentHandler) Report(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	report, err := h.reports.DocumentReport(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="documents.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}
