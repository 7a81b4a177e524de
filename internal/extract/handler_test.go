package extract

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	localstore "careerhub-backend/internal/shared/storage/object/local"
)

func newTestRouter(ex *Extractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(ex, nil)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func multipartPDF(t *testing.T, fieldName, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func postExtract(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract-pdf", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExtractPDFMissingFileReturns400(t *testing.T) {
	router := newTestRouter(NewExtractor())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close()
	rec := postExtract(t, router, &buf, mw.FormDataContentType())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExtractPDFRejectsNonPDFContentType(t *testing.T) {
	ex, calls := stubExtractor("plenty of extracted resume text here", 1, nil)
	router := newTestRouter(ex)

	body, ct := multipartPDF(t, "file", "resume.docx", "application/msword", []byte("%PDF-1.4 data"))
	rec := postExtract(t, router, body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if *calls != 0 {
		t.Fatalf("parser called %d times for rejected upload, want 0", *calls)
	}
}

func TestExtractPDFRejectsBadSignature(t *testing.T) {
	ex, calls := stubExtractor("plenty of extracted resume text here", 1, nil)
	router := newTestRouter(ex)

	body, ct := multipartPDF(t, "file", "resume.pdf", "application/pdf", []byte("PK\x03\x04 definitely a zip"))
	rec := postExtract(t, router, body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if *calls != 0 {
		t.Fatalf("parser called %d times on bad signature, want 0", *calls)
	}
}

func TestExtractPDFSuccessCarriesMetadata(t *testing.T) {
	ex, _ := stubExtractor("Jane Doe. Software engineering student with internship experience.", 3, nil)
	router := newTestRouter(ex)

	body, ct := multipartPDF(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.7 body"))
	rec := postExtract(t, router, body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp extractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.Fallback {
		t.Fatalf("unexpected flags: %+v", resp)
	}
	if resp.Metadata == nil || resp.Metadata.Pages != 3 || resp.Metadata.TextLength != len(resp.Text) {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
}

func TestExtractPDFArchivesUploadAndText(t *testing.T) {
	ex, _ := stubExtractor("Jane Doe. Software engineering student with internship experience.", 1, nil)
	dir := t.TempDir()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(ex, localstore.New(dir)).RegisterRoutes(router.Group("/api/v1"))

	body, ct := multipartPDF(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.7 body"))
	rec := postExtract(t, router, body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var uploads, extracted int
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.HasSuffix(path, ".extracted.txt") {
			extracted++
		} else {
			uploads++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk store dir: %v", err)
	}
	if uploads != 1 || extracted != 1 {
		t.Fatalf("archived uploads = %d, extracted = %d, want 1/1", uploads, extracted)
	}
}

func TestExtractPDFSoftFailureReturns200Fallback(t *testing.T) {
	ex, _ := stubExtractor("", 1, nil)
	router := newTestRouter(ex)

	body, ct := multipartPDF(t, "file", "scanned.pdf", "application/pdf", []byte("%PDF-1.4 scan"))
	rec := postExtract(t, router, body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on soft failure", rec.Code)
	}

	var resp extractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || !resp.Fallback {
		t.Fatalf("unexpected flags: %+v", resp)
	}
	if resp.Text != FallbackText("scanned.pdf") {
		t.Fatalf("text = %q, want the manual-entry placeholder", resp.Text)
	}
	if resp.Message != FallbackMessage {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Metadata != nil {
		t.Fatalf("fallback response must not carry metadata: %+v", resp.Metadata)
	}
}
