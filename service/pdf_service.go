package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrUndecodablePDF = errors.New("could not decode PDF")

// PDFService turns PDF bytes into one text string with line breaks kept.
type PDFService struct {
	pdftotext string // path of the pdftotext binary; empty disables the fallback
}

func NewPDFService() *PDFService {
	path, _ := exec.LookPath("pdftotext")
	return &PDFService{pdftotext: path}
}

// IsPDF checks the %PDF- magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// ExtractText decodes data with the pure Go reader and falls back to
// pdftotext when the reader fails or finds no text.
func (s *PDFService) ExtractText(data []byte) (string, error) {
	if !IsPDF(data) {
		return "", fmt.Errorf("%w: missing PDF header", ErrUndecodablePDF)
	}

	text, err := extractTextByRow(data)
	if err == nil && strings.TrimSpace(text) != "" {
		return cleanText(text), nil
	}
	if s.pdftotext == "" {
		if err == nil {
			err = errors.New("no text found")
		}
		return "", fmt.Errorf("%w: %v", ErrUndecodablePDF, err)
	}

	text, fallbackErr := s.extractTextWithPdftotext(data)
	if fallbackErr != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodablePDF, fallbackErr)
	}
	return cleanText(text), nil
}

// extractTextByRow writes one line per text row, page after page.
func extractTextByRow(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (s *PDFService) extractTextWithPdftotext(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "syllabus-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	cmd := exec.Command(s.pdftotext, "-enc", "UTF-8", "-nopgbrk", tmp.Name(), "-")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	if strings.TrimSpace(out.String()) == "" {
		return "", errors.New("pdftotext found no text")
	}
	return out.String(), nil
}

var textReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
	"\u0000", "",
	"\ufffd", "",
	"\u001b", "",
)

// cleanText normalizes line endings, drops control and replacement
// characters, and trims the text.
func cleanText(text string) string {
	return strings.TrimSpace(textReplacer.Replace(text))
}
