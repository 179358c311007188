package api

import (
	"net/http"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// @Summary List published documents
// @Tags Documents
// @Produce json
// @Success 200 {array} models.Document
// @Router /documents [get]
func (h *DocumentHandler) GetAllDocuments(c *gin.Context) {
	docs, err := h.documentService.GetAllDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// @Summary Get one document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]string "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Param("id"))
	if err != nil || doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary List documents for an IPO
// @Tags Documents
// @Produce json
// @Param id path string true "IPO ID"
// @Success 200 {array} models.Document
// @Router /ipos/{id}/documents [get]
func (h *DocumentHandler) GetDocumentsByIPO(c *gin.Context) {
	docs, err := h.documentService.GetDocumentsByIPO(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// @Summary Upload a document record
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param document body models.Document true "Document metadata"
// @Success 201 {object} models.Document
// @Router /admin/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := c.Get("user_id")
	doc.UploadedBy, _ = userID.(string)
	if err := h.documentService.CreateDocument(&doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

type DocumentStatusRequest struct {
	Status models.DocumentStatus `json:"status" binding:"required"`
}

// @Summary Change a document's publication status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param status body DocumentStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Router /admin/documents/{id}/status [put]
func (h *DocumentHandler) SetDocumentStatus(c *gin.Context) {
	var req DocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.documentService.SetStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Document status updated"})
}

// @Summary Delete a document record
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Router /admin/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Document deleted"})
}
