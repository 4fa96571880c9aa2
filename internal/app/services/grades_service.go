package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/app/models/dto"
)

// HistogramSource reads exam histograms. Missing data is reported as not
// available rather than as an error.
type HistogramSource interface {
	Semesters(ctx context.Context, course string) []string
	Exam(ctx context.Context, course, semester, exam string) (*models.ExamGrades, bool)
	Average(ctx context.Context, course string) (float64, bool)
}

// GradesService defines the grade lookups shown next to a course page
type GradesService interface {
	Semesters(ctx context.Context, code string) dto.SemestersResponse
	Exam(ctx context.Context, code, semester, exam string) (*models.ExamGrades, bool)
	Averages(ctx context.Context, code string, references []string) dto.AveragesResponse
}

type gradesServiceImpl struct {
	source      HistogramSource
	concurrency int
	logger      zerolog.Logger
}

// NewGradesService creates a GradesService that runs at most concurrency lookups at a time
func NewGradesService(source HistogramSource, concurrency int, logger zerolog.Logger) GradesService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &gradesServiceImpl{
		source:      source,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *gradesServiceImpl) Semesters(ctx context.Context, code string) dto.SemestersResponse {
	semesters := s.source.Semesters(ctx, code)
	if semesters == nil {
		semesters = []string{}
	}
	return dto.SemestersResponse{Course: code, Semesters: semesters}
}

func (s *gradesServiceImpl) Exam(ctx context.Context, code, semester, exam string) (*models.ExamGrades, bool) {
	return s.source.Exam(ctx, code, semester, exam)
}

// Averages looks up the course and its references concurrently. The result
// keeps the course first and the references in their given order.
func (s *gradesServiceImpl) Averages(ctx context.Context, code string, references []string) dto.AveragesResponse {
	codes := append([]string{code}, references...)
	averages := make([]dto.CourseAverage, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, c := range codes {
		averages[i].Code = c
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if avg, ok := s.source.Average(gctx, c); ok {
				averages[i].Average = &avg
			}
			return nil
		})
	}
	_ = g.Wait()

	available := 0
	for _, a := range averages {
		if a.Average != nil {
			available++
		}
	}
	s.logger.Debug().
		Str("course", code).
		Int("requested", len(codes)).
		Int("available", available).
		Msg("Looked up course averages")

	return dto.AveragesResponse{Course: code, Averages: averages}
}
