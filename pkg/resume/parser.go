package resume

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	reInlineSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reBlankLines  = regexp.MustCompile(`\n{3,}`)
	reXMLTag      = regexp.MustCompile(`<[^>]+>`)
)

// Format resolves the document kind from the extension, falling back to the MIME type.
func Format(filename, mimeType string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return mimePDF, nil
	case ".docx":
		return mimeDOCX, nil
	}
	switch mimeType {
	case mimePDF, mimeDOCX:
		return mimeType, nil
	}
	return "", ErrUnsupportedFormat
}

// ParseResumeText extracts plain text and page count from a .pdf or .docx file.
func ParseResumeText(filename string, data []byte) (Document, error) {
	return parse(filename, "", data)
}

func parse(filename, mimeType string, data []byte) (Document, error) {
	format, err := Format(filename, mimeType)
	if err != nil {
		return Document{}, err
	}
	switch format {
	case mimePDF:
		return extractTextFromPDF(data)
	default:
		return extractTextFromDocx(data)
	}
}

func extractTextFromPDF(data []byte) (doc Document, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	pages := r.NumPage()
	parts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Document{}, fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		parts = append(parts, text)
	}
	return Document{Text: normalizeWhitespace(strings.Join(parts, "\n\n")), PageCount: pages}, nil
}

func extractTextFromDocx(data []byte) (Document, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer d.Close()

	content := d.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	text := reXMLTag.ReplaceAllString(content, "")
	return Document{Text: normalizeWhitespace(text), PageCount: 1}, nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reInlineSpace.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
