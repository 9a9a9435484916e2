package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tieubaoca/docextractor/logger"
	"github.com/tieubaoca/docextractor/repository"
	"github.com/tieubaoca/docextractor/syllabus"
	"github.com/tieubaoca/docextractor/types"
)

var (
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")
	ErrInvalidSyllabus     = errors.New("invalid syllabus format")
	ErrSearchDisabled      = errors.New("topic search is not configured")
	ErrNoArchive           = errors.New("no archived document")
)

type TextDecoder interface {
	ExtractText(data []byte) (string, error)
}

type TopicIndexer interface {
	IndexSyllabus(ctx context.Context, doc types.SyllabusDocument) error
	Search(ctx context.Context, query string, limit int) ([]types.TopicHit, error)
}

type Option func(*SyllabusService)

// WithTopicIndex indexes the topics of every stored syllabus.
func WithTopicIndex(index TopicIndexer) Option {
	return func(s *SyllabusService) {
		s.index = index
	}
}

// WithArchive keeps a copy of every accepted upload.
func WithArchive(files *FileService) Option {
	return func(s *SyllabusService) {
		s.files = files
	}
}

type SyllabusService struct {
	decoder TextDecoder
	repo    repository.CourseRepo
	log     *logger.Logger
	index   TopicIndexer
	files   *FileService
}

func NewSyllabusService(decoder TextDecoder, repo repository.CourseRepo, log *logger.Logger, opts ...Option) *SyllabusService {
	s := &SyllabusService{
		decoder: decoder,
		repo:    repo,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract decodes an uploaded file and runs the extraction pipeline over its
// text. Nothing is stored.
func (s *SyllabusService) Extract(filename string, data []byte) (*types.Extraction, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filename)
	}
	text, err := s.decoder.ExtractText(data)
	if err != nil {
		return nil, err
	}
	return syllabus.Extract(text), nil
}

// Ingest extracts an uploaded syllabus and stores its unit breakdown and its
// course sections under the course code. A document without a course code is
// rejected before anything is stored. The two records are written one after
// the other; a failure on the second leaves the first in place.
func (s *SyllabusService) Ingest(ctx context.Context, filename string, data []byte) (*types.UploadResponse, error) {
	extraction, err := s.Extract(filename, data)
	if err != nil {
		return nil, err
	}
	courseCode, ok := extraction.Metadata.CourseCode()
	if !ok {
		return nil, ErrInvalidSyllabus
	}
	log := s.log.With("course_code", courseCode, "file", filename)

	now := time.Now().UnixMilli()
	syllabusDoc := &types.SyllabusDocument{
		CourseCode: courseCode,
		Units:      extraction.Syllabus,
		CreatedAt:  now,
	}
	if err := s.repo.SaveSyllabus(ctx, syllabusDoc); err != nil {
		return nil, fmt.Errorf("failed to save syllabus: %w", err)
	}
	sectionsDoc := &types.CourseDocument{
		CourseCode: courseCode,
		Sections:   extraction.Metadata,
		CreatedAt:  now,
	}
	if err := s.repo.SaveSections(ctx, sectionsDoc); err != nil {
		return nil, fmt.Errorf("failed to save course sections: %w", err)
	}

	if s.files != nil {
		if _, err := s.files.Archive(courseCode, data); err != nil {
			log.Warn("archive failed", "error", err)
		}
	}
	if s.index != nil {
		if err := s.index.IndexSyllabus(ctx, *syllabusDoc); err != nil {
			log.Warn("topic indexing failed", "error", err)
		}
	}

	log.Info("syllabus stored", "units", len(extraction.Syllabus), "sections", len(extraction.Metadata))
	return &types.UploadResponse{
		CourseCode:   courseCode,
		OriginalName: filename,
		Units:        len(extraction.Syllabus),
	}, nil
}

func (s *SyllabusService) GetCourse(ctx context.Context, courseCode string) (*types.SyllabusDocument, error) {
	return s.repo.GetSyllabus(ctx, courseCode)
}

func (s *SyllabusService) GetCourseSections(ctx context.Context, courseCode string) (*types.CourseDocument, error) {
	return s.repo.GetSections(ctx, courseCode)
}

func (s *SyllabusService) ListCourses(ctx context.Context) ([]types.CourseSummary, error) {
	return s.repo.ListCourses(ctx)
}

func (s *SyllabusService) SearchTopics(ctx context.Context, query string, limit int) ([]types.TopicHit, error) {
	if s.index == nil {
		return nil, ErrSearchDisabled
	}
	return s.index.Search(ctx, query, limit)
}

// DocumentPath returns the newest archived PDF of a course.
func (s *SyllabusService) DocumentPath(courseCode string) (string, error) {
	if s.files == nil {
		return "", ErrNoArchive
	}
	path, err := s.files.Find(courseCode)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoArchive, err)
	}
	return path, nil
}
