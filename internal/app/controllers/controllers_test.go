package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/app/services"
	"github.com/yigit/coursemap/internal/middleware"
)

type stubGrades struct {
	averages map[string]float64
	lastRefs []string
}

func (s *stubGrades) Semesters(_ context.Context, code string) dto.SemestersResponse {
	if code == "00234218" {
		return dto.SemestersResponse{Course: code, Semesters: []string{"202402", "202401"}}
	}
	return dto.SemestersResponse{Course: code, Semesters: []string{}}
}

func (s *stubGrades) Exam(_ context.Context, code, semester, exam string) (*models.ExamGrades, bool) {
	if code != "00234218" || semester != "202401" {
		return nil, false
	}
	return &models.ExamGrades{Course: code, Semester: semester, Exam: exam, ImageURL: "https://example.test/x.png"}, true
}

func (s *stubGrades) Averages(_ context.Context, code string, refs []string) dto.AveragesResponse {
	s.lastRefs = refs
	resp := dto.AveragesResponse{Course: code}
	for _, c := range append([]string{code}, refs...) {
		avg := dto.CourseAverage{Code: c}
		if v, ok := s.averages[c]; ok {
			avg.Average = &v
		}
		resp.Averages = append(resp.Averages, avg)
	}
	return resp
}

func record(code, name string, prereqs []string) *models.Record {
	r := models.NewRecord()
	r.Set(models.ColumnCode, code)
	r.Set(models.ColumnName, name)
	r.Set(models.ColumnPrerequisites, prereqs)
	r.Set(models.ColumnBlocked, []string{})
	r.Set(models.ColumnTag, models.Tag(code, name))
	return r
}

func newRouter(t *testing.T, grades *stubGrades) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	catalog := services.NewCatalogService(models.NewTable([]*models.Record{
		record("00234114", "מבוא למדעי המחשב מ", []string{}),
		record("00234218", "מבני נתונים 1", []string{"00234114 - מבוא למדעי המחשב מ", "00104031"}),
	}), 8)

	courses := NewCourseController(catalog)
	gradesController := NewGradesController(catalog, grades)

	router := gin.New()
	v1 := router.Group("/api/v1/courses")
	v1.GET("", courses.GetCourse)
	v1.GET("/search", courses.SearchCourses)
	v1.GET("/:code", courses.GetCourseByCode)
	v1.GET("/:code/semesters", gradesController.GetSemesters)
	v1.GET("/:code/grades/:semester/:exam", gradesController.GetExam)
	v1.GET("/:code/averages", gradesController.GetAverages)
	return router
}

// get performs a request and decodes the envelope, with data left raw
func get(t *testing.T, router *gin.Engine, target string, data interface{}) (int, dto.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var envelope struct {
		dto.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	if data != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return w.Code, envelope.APIResponse
}

func TestGetCourseByTag(t *testing.T) {
	router := newRouter(t, &stubGrades{})

	var view dto.CourseView
	status, resp := get(t, router, "/api/v1/courses?tag="+url.QueryEscape("00234218 - מבני נתונים 1"), &view)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, "00234218", view.Code)
	require.Len(t, view.Sections, 1)
	assert.Equal(t, "/?tag=00234114", view.Sections[0].Items[0].Href)
	assert.False(t, view.Sections[0].Items[1].Linkable)

	status, _ = get(t, router, "/api/v1/courses?tag=00234114", &view)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "00234114", view.Code)
	assert.Empty(t, view.Sections)

	status, resp = get(t, router, "/api/v1/courses", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "tag", resp.Error.Field)

	status, resp = get(t, router, "/api/v1/courses?tag=99999999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestSearchCourses(t *testing.T) {
	router := newRouter(t, &stubGrades{})

	var result dto.SearchResponse
	status, _ := get(t, router, "/api/v1/courses/search?q="+url.QueryEscape("מבני נתונים"), &result)
	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "00234218", result.Hits[0].Code)

	status, _ = get(t, router, "/api/v1/courses/search", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetCourseByCodePadsShortCodes(t *testing.T) {
	router := newRouter(t, &stubGrades{})

	var view dto.CourseView
	status, _ := get(t, router, "/api/v1/courses/234218", &view)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "00234218 - מבני נתונים 1", view.Tag)
}

func TestGradesEndpoints(t *testing.T) {
	grades := &stubGrades{averages: map[string]float64{"00234218": 74.5}}
	router := newRouter(t, grades)

	var semesters dto.SemestersResponse
	status, _ := get(t, router, "/api/v1/courses/234218/semesters", &semesters)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "00234218", semesters.Course)
	assert.Equal(t, []string{"202402", "202401"}, semesters.Semesters)

	var exam models.ExamGrades
	status, _ = get(t, router, "/api/v1/courses/00234218/grades/202401/Final_A", &exam)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Final_A", exam.Exam)

	status, resp := get(t, router, "/api/v1/courses/00234218/grades/202301/Final_A", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, gradesUnavailable, resp.Message)

	status, _ = get(t, router, "/api/v1/courses/00234218/grades/2024%2E01/Final_A", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	var averages dto.AveragesResponse
	status, _ = get(t, router, "/api/v1/courses/00234218/averages", &averages)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"00234114"}, grades.lastRefs)
	require.Len(t, averages.Averages, 2)
	require.NotNil(t, averages.Averages[0].Average)
	assert.Equal(t, 74.5, *averages.Averages[0].Average)
	assert.Nil(t, averages.Averages[1].Average)

	status, _ = get(t, router, "/api/v1/courses/99999999/averages", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
