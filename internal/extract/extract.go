package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minMeaningfulText is the shortest extraction accepted as real content.
// Scanned or image-only PDFs typically yield nothing or stray whitespace.
const minMeaningfulText = 10

// FallbackMessage accompanies responses where extraction failed softly.
const FallbackMessage = "PDF uploaded but text extraction failed. Please paste your resume text manually for best results."

// FallbackText is the body returned in place of extracted text when the
// parser cannot recover anything usable from the file.
func FallbackText(fileName string) string {
	return fmt.Sprintf(`PDF Upload Detected: %s

Unfortunately, automatic PDF text extraction failed for this file.
This could be because:
- The PDF contains scanned images instead of text
- The PDF is password protected
- The PDF format is not supported

Please copy and paste your resume content into the text area below for analysis.`, fileName)
}

// ExtractedDocument is the outcome of a text extraction attempt.
type ExtractedDocument struct {
	Text                string
	PageCount           int
	ExtractionSucceeded bool
}

// HasPDFSignature reports whether data starts with the %PDF magic bytes.
func HasPDFSignature(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// Extractor extracts plain text from in-memory PDF payloads. The parse
// function is swappable so tests can exercise failure paths without
// fabricating broken PDF files.
type Extractor struct {
	parse func(data []byte) (string, int, error)
}

// NewExtractor returns an Extractor backed by github.com/ledongthuc/pdf.
func NewExtractor() *Extractor {
	return &Extractor{parse: parsePDF}
}

// Extract attempts to pull text from the payload. Parser errors and
// too-short extractions both come back with ExtractionSucceeded false and
// Text carrying the manual-entry placeholder for fileName, so the document
// is usable as-is; the caller decides how loudly to report the downgrade.
func (e *Extractor) Extract(fileName string, data []byte) ExtractedDocument {
	text, pages, err := e.parse(data)
	if err != nil {
		return ExtractedDocument{Text: FallbackText(fileName), PageCount: pages}
	}
	text = strings.TrimSpace(text)
	if len(text) < minMeaningfulText {
		return ExtractedDocument{Text: FallbackText(fileName), PageCount: pages}
	}
	return ExtractedDocument{Text: text, PageCount: pages, ExtractionSucceeded: true}
}

func parsePDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}
	pages := reader.NumPage()
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", pages, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", pages, err
	}
	return buf.String(), pages, nil
}
