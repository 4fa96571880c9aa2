package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/app/services"
	"github.com/yigit/coursemap/internal/middleware"
)

const gradesUnavailable = "Grade data not available"

// GradesController serves exam histograms and averages. Missing grade data
// is a normal empty result, never an error.
type GradesController struct {
	catalogService services.CatalogService
	gradesService  services.GradesService
}

// NewGradesController creates a new GradesController
func NewGradesController(catalogService services.CatalogService, gradesService services.GradesService) *GradesController {
	return &GradesController{
		catalogService: catalogService,
		gradesService:  gradesService,
	}
}

// GetSemesters lists semesters with histograms
// @Summary List semesters with grade histograms
// @Tags grades
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.SemestersResponse} "Semesters, newest first"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code}/semesters [get]
func (c *GradesController) GetSemesters(ctx *gin.Context) {
	var path dto.CoursePath
	if err := ctx.ShouldBindUri(&path); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	view, err := c.catalogService.Course(path.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.gradesService.Semesters(ctx.Request.Context(), view.Code), ""))
}

// GetExam retrieves one exam histogram
// @Summary Get an exam histogram
// @Description Returns the exam statistics and the histogram image URL; data is null when the repository has no such exam
// @Tags grades
// @Produce json
// @Param code path string true "Course code"
// @Param semester path string true "Semester" example(202401)
// @Param exam path string true "Exam" example(Final_A)
// @Success 200 {object} dto.APIResponse{data=models.ExamGrades} "Exam histogram"
// @Failure 400 {object} dto.APIResponse "Invalid path segment"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code}/grades/{semester}/{exam} [get]
func (c *GradesController) GetExam(ctx *gin.Context) {
	var path dto.ExamPath
	if err := ctx.ShouldBindUri(&path); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	view, err := c.catalogService.Course(path.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	grades, ok := c.gradesService.Exam(ctx.Request.Context(), view.Code, path.Semester, path.Exam)
	if !ok {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, gradesUnavailable))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades, ""))
}

// GetAverages retrieves the latest averages of a course and its references
// @Summary Get course averages
// @Description Averages of the course and of every linked course on its page; null where not available
// @Tags grades
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.AveragesResponse} "Averages"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code}/averages [get]
func (c *GradesController) GetAverages(ctx *gin.Context) {
	var path dto.CoursePath
	if err := ctx.ShouldBindUri(&path); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	view, err := c.catalogService.Course(path.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	refs, err := c.catalogService.References(view.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.gradesService.Averages(ctx.Request.Context(), view.Code, refs), ""))
}
