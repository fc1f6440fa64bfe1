package handlers

import (
	"io"
	"net/http"

	"neobook/services/knowledge"
	"neobook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// KnowledgeHandler serves document ingestion and knowledge base admin.
type KnowledgeHandler struct {
	Service knowledge.KnowledgeService
}

func NewKnowledgeHandler(svc knowledge.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{Service: svc}
}

// UploadDocument ingests a multipart file upload into the knowledge base.
func (h *KnowledgeHandler) UploadDocument(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file upload", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot open uploaded file", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot read uploaded file", err.Error())
		return
	}

	count, err := h.Service.Ingest(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		logger.Warn("document ingestion failed",
			zap.String("file", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to process document", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": fileHeader.Filename, "chunks": count})
}

// GetStats reports chunk and graph sizes.
func (h *KnowledgeHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Stats())
}

// ResetKnowledgeBase clears chunks, vector index and graph together.
func (h *KnowledgeHandler) ResetKnowledgeBase(c *gin.Context) {
	h.Service.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "knowledge base cleared"})
}
