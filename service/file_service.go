package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileService archives uploaded PDFs as <course code>_<unix time>.pdf.
type FileService struct {
	uploadDir string
	now       func() time.Time
}

func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{uploadDir: uploadDir, now: time.Now}, nil
}

// sanitizeName replaces every character that is unsafe in a file name.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
}

// Archive writes data under the upload directory and returns its path.
func (s *FileService) Archive(courseCode string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%d.pdf", sanitizeName(courseCode), s.now().Unix())
	path := filepath.Join(s.uploadDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", filename, err)
	}
	return path, nil
}

// Find returns the path of the newest archive for courseCode.
func (s *FileService) Find(courseCode string) (string, error) {
	files, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := sanitizeName(courseCode)
	var (
		newest     string
		newestTime int64 = -1
	)
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 || nameWithoutExt[:lastUnderscoreIdx] != baseName {
			continue
		}
		timestamp, err := strconv.ParseInt(nameWithoutExt[lastUnderscoreIdx+1:], 10, 64)
		if err != nil {
			continue
		}
		if timestamp > newestTime {
			newest, newestTime = name, timestamp
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no archive for %s: %w", courseCode, os.ErrNotExist)
	}
	return filepath.Join(s.uploadDir, newest), nil
}
