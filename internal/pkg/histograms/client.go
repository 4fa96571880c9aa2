// Package histograms reads exam grade histograms from a GitHub repository laid
// out as {course}/{semester}/{exam}.json with a {exam}.png image alongside.
//
// Grade data is supplementary: every failure is logged and reported as
// "not available", never returned to the caller.
package histograms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemap/internal/app/models"
)

// maxBodySize caps the size of a single API response
const maxBodySize = 4 << 20

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidSegment reports whether s can be used as one path segment of the repository
func ValidSegment(s string) bool {
	return segmentPattern.MatchString(s)
}

// Config describes the histogram repository
type Config struct {
	APIBaseURL string
	RawBaseURL string
	Owner      string
	Repo       string
	Branch     string
	Token      string
	// Exam is the exam used for course averages, e.g. Final_A
	Exam    string
	Timeout time.Duration
}

// Client is a read-only GitHub contents API client
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a Client. A nil httpClient uses one bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger.With().Str("component", "histograms").Logger(),
	}
}

type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

func (c *Client) contentsURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		strings.TrimRight(c.cfg.APIBaseURL, "/"),
		url.PathEscape(c.cfg.Owner),
		url.PathEscape(c.cfg.Repo),
		strings.Join(escaped, "/"),
		url.QueryEscape(c.cfg.Branch),
	)
}

// ImageURL returns the public address of an exam histogram image
func (c *Client) ImageURL(course, semester, exam string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s.png",
		strings.TrimRight(c.cfg.RawBaseURL, "/"),
		url.PathEscape(c.cfg.Owner),
		url.PathEscape(c.cfg.Repo),
		url.PathEscape(c.cfg.Branch),
		url.PathEscape(course),
		url.PathEscape(semester),
		url.PathEscape(exam),
	)
}

// get performs one API call with the configured timeout and decodes the JSON body into v
func (c *Client) get(ctx context.Context, target string, accept string, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(v)
}

// Semesters lists the semester directories recorded for a course, newest first
func (c *Client) Semesters(ctx context.Context, course string) []string {
	if !ValidSegment(course) {
		return nil
	}
	var entries []contentEntry
	if err := c.get(ctx, c.contentsURL(course), "application/vnd.github+json", &entries); err != nil {
		c.logger.Warn().Err(err).Str("course", course).Msg("Failed to list histogram semesters")
		return nil
	}

	var semesters []string
	for _, e := range entries {
		if e.Type == "dir" && ValidSegment(e.Name) {
			semesters = append(semesters, e.Name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(semesters)))
	return semesters
}

// Exam fetches the statistics of one exam. ok is false when they are not available.
func (c *Client) Exam(ctx context.Context, course, semester, exam string) (*models.ExamGrades, bool) {
	if !ValidSegment(course) || !ValidSegment(semester) || !ValidSegment(exam) {
		return nil, false
	}
	var stats models.ExamStats
	target := c.contentsURL(course, semester, exam+".json")
	if err := c.get(ctx, target, "application/vnd.github.raw+json", &stats); err != nil {
		c.logger.Warn().Err(err).Str("course", course).Str("semester", semester).Str("exam", exam).Msg("Failed to fetch exam statistics")
		return nil, false
	}
	return &models.ExamGrades{
		Course:   course,
		Semester: semester,
		Exam:     exam,
		Stats:    stats,
		ImageURL: c.ImageURL(course, semester, exam),
	}, true
}

// Average returns the average of the configured exam in the newest semester of a course
func (c *Client) Average(ctx context.Context, course string) (float64, bool) {
	semesters := c.Semesters(ctx, course)
	if len(semesters) == 0 {
		return 0, false
	}
	grades, ok := c.Exam(ctx, course, semesters[0], c.cfg.Exam)
	if !ok {
		return 0, false
	}
	return float64(grades.Stats.Average), true
}
