package extract

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/server/respond"
	"careerhub-backend/internal/shared/storage/object"
	"careerhub-backend/internal/shared/telemetry"
	"careerhub-backend/internal/shared/util"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// Handler serves PDF text extraction over multipart uploads.
type Handler struct {
	Extractor *Extractor
	Store     object.ObjectStore
}

// NewHandler constructs a Handler. Store may be nil; archival is skipped.
func NewHandler(extractor *Extractor, store object.ObjectStore) *Handler {
	return &Handler{Extractor: extractor, Store: store}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract-pdf", h.extractPDF)
}

type extractMetadata struct {
	Pages      int `json:"pages"`
	TextLength int `json:"textLength"`
}

type extractResponse struct {
	Text     string           `json:"text"`
	Success  bool             `json:"success"`
	Fallback bool             `json:"fallback,omitempty"`
	Message  string           `json:"message,omitempty"`
	Metadata *extractMetadata `json:"metadata,omitempty"`
}

func (h *Handler) extractPDF(c *gin.Context) {
	metrics.IncExtractionRequested()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file provided", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 10MB limit", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file must be a PDF", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 10MB limit", nil)
		return
	}

	if !HasPDFSignature(data) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid PDF file, missing PDF signature", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}
	key := h.archive(c, fileName, data)

	doc := h.Extractor.Extract(fileName, data)
	if doc.ExtractionSucceeded && key != "" {
		h.archiveText(c, key, doc.Text)
	}
	if !doc.ExtractionSucceeded {
		metrics.IncExtractionFailed()
		c.Set("fallbackPath", "extraction_failed")
		telemetry.Warn("extract.fallback", map[string]any{
			"file":  fileName,
			"size":  len(data),
			"pages": doc.PageCount,
		})
		respond.JSON(c, http.StatusOK, extractResponse{
			Text:     doc.Text,
			Success:  true,
			Fallback: true,
			Message:  FallbackMessage,
		})
		return
	}

	respond.JSON(c, http.StatusOK, extractResponse{
		Text:    doc.Text,
		Success: true,
		Metadata: &extractMetadata{
			Pages:      doc.PageCount,
			TextLength: len(doc.Text),
		},
	})
}

// archive keeps a copy of the upload when an object store is configured and
// returns the storage key. Failures are logged and otherwise ignored;
// archival never blocks the extraction response.
func (h *Handler) archive(c *gin.Context, fileName string, data []byte) string {
	if h.Store == nil {
		return ""
	}
	userID := c.GetString("userId")
	if userID == "" {
		userID = "anonymous"
	}
	key, _, _, err := h.Store.Save(c.Request.Context(), userID, fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Warn("extract.archive_failed", map[string]any{
			"file":  fileName,
			"error": err.Error(),
		})
		return ""
	}
	telemetry.Info("extract.archived", map[string]any{
		"file": fileName,
		"key":  key,
	})
	return key
}

// archiveText stores the extracted plain text next to the archived upload.
func (h *Handler) archiveText(c *gin.Context, key, text string) {
	extractedKey := key + ".extracted.txt"
	_, err := h.Store.SaveWithKey(c.Request.Context(), extractedKey, "text/plain; charset=utf-8", strings.NewReader(text))
	if err != nil {
		telemetry.Warn("extract.archive_text_failed", map[string]any{
			"key":   extractedKey,
			"error": err.Error(),
		})
	}
}
