package util

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	ErrUnsupportedFileType = errors.New("only PDF and DOCX files are allowed")
	ErrEmptyDocument       = errors.New("no text could be extracted from the document")

	paragraphEndRe = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	blankLinesRe   = regexp.MustCompile(`\n{3,}`)
)

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// IsResumeFile reports whether the file name carries an accepted resume extension.
func IsResumeFile(name string) bool {
	return resumeExtensions[strings.ToLower(filepath.Ext(name))]
}

// ExtractResumeText pulls plain text out of a PDF or DOCX file on disk.
func ExtractResumeText(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = ExtractPDFText(path)
	case ".docx":
		text, err = ExtractDocxText(path)
	default:
		return "", ErrUnsupportedFileType
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// ExtractPDFText reads the text layer with MuPDF and falls back to the pure Go
// reader when MuPDF cannot open the file.
func ExtractPDFText(path string) (string, error) {
	text, err := extractPDFFitz(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		log.Printf("fitz extraction failed for %s, trying fallback reader: %v", filepath.Base(path), err)
	}
	return extractPDFPlain(path)
}

func extractPDFFitz(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}
	return fullText.String(), nil
}

func extractPDFPlain(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

// ExtractDocxText returns the paragraphs of a DOCX document as plain text.
func ExtractDocxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer r.Close()

	return DocxXMLToText(r.Editable().GetContent()), nil
}

// DocxXMLToText turns WordprocessingML into plain text, one paragraph per line.
func DocxXMLToText(content string) string {
	text := paragraphEndRe.ReplaceAllString(content, "\n")
	text = xmlTagRe.ReplaceAllString(text, "")
	replacer := strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
	text = replacer.Replace(text)
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
