// Package ingestion converts uploaded documents into plain text for the
// screening engine. It is the only layer that knows about file formats; the
// engine itself consumes text only.
package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Document types the pipeline accepts.
const (
	MimeText     = "text/plain"
	MimeMarkdown = "text/markdown"
	MimeHTML     = "text/html"
	MimePDF      = "application/pdf"
	MimeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MimeTypeForExtension maps a file extension to the mime type ExtractText
// expects, or "" when the extension is not recognized.
func MimeTypeForExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "txt", "text":
		return MimeText
	case "md", "markdown":
		return MimeMarkdown
	case "html", "htm":
		return MimeHTML
	case "pdf":
		return MimePDF
	case "docx":
		return MimeDOCX
	}
	return ""
}

// ExtractText decodes one document into plain text. The mime type may carry
// parameters (e.g. "text/plain; charset=utf-8"); they are ignored. An
// unrecognized type returns *UnsupportedFormatError; a recognized type whose
// bytes cannot be decoded returns *CorruptDocumentError. Decoded text is
// whitespace-normalized with CleanText before being returned.
func ExtractText(data []byte, mimeType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}

	var text string
	switch mediaType {
	case MimeText, MimeMarkdown:
		text, err = extractPlain(data, mediaType)
	case MimeHTML:
		text, err = extractHTML(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimePDF:
		text, err = extractPDF(data)
	default:
		return "", &UnsupportedFormatError{MimeType: mimeType}
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

func extractPlain(data []byte, mediaType string) (string, error) {
	if bytes.ContainsRune(data, 0) || !utf8.Valid(data) {
		return "", &CorruptDocumentError{MimeType: mediaType, Err: errors.New("not valid UTF-8 text")}
	}
	return string(data), nil
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &CorruptDocumentError{MimeType: MimeHTML, Err: err}
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element.
		text = doc.Text()
	}
	return text, nil
}

// docx stores its text in word/document.xml; every w:t element holds a text
// run and every w:p closes a paragraph.
func extractDOCX(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{MimeType: MimeDOCX, Err: err}
	}

	var document *zip.File
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", &CorruptDocumentError{MimeType: MimeDOCX, Err: errors.New("missing word/document.xml")}
	}

	rc, err := document.Open()
	if err != nil {
		return "", &CorruptDocumentError{MimeType: MimeDOCX, Err: err}
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &CorruptDocumentError{MimeType: MimeDOCX, Err: err}
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String(), nil
}

// extractPDF shells out to pdftotext from poppler-utils. The binary not being
// installed is an environment limitation, reported as an unsupported format
// rather than a corrupt document.
func extractPDF(data []byte) (string, error) {
	binary, err := exec.LookPath("pdftotext")
	if err != nil {
		return "", &UnsupportedFormatError{MimeType: MimePDF, Reason: "pdftotext not found in PATH"}
	}

	dir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "output.txt")
	if err := os.WriteFile(input, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write temp pdf: %w", err)
	}

	cmd := exec.Command(binary, "-layout", input, output)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &CorruptDocumentError{MimeType: MimePDF, Err: fmt.Errorf("pdftotext: %v: %s", err, strings.TrimSpace(stderr.String()))}
	}

	text, err := os.ReadFile(output)
	if err != nil {
		return "", &CorruptDocumentError{MimeType: MimePDF, Err: err}
	}
	return string(text), nil
}
