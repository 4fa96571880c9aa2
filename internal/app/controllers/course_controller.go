package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/app/services"
	"github.com/yigit/coursemap/internal/middleware"
)

// CourseController serves course pages and search
type CourseController struct {
	catalogService services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService services.CatalogService) *CourseController {
	return &CourseController{
		catalogService: catalogService,
	}
}

// GetCourse resolves a deep link
// @Summary Get a course page by tag
// @Description Accepts a full tag as returned by search or a bare course code, as used in /?tag= links
// @Tags courses
// @Produce json
// @Param tag query string true "Course tag or code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseView} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Missing tag"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	var query dto.CourseQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	view, err := c.catalogService.CourseByTag(query.Tag)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view, ""))
}

// SearchCourses runs a fuzzy search over course tags
// @Summary Search courses
// @Description Fuzzy matches the query against "code - name" tags and returns up to ten hits scoring at least 60
// @Tags courses
// @Produce json
// @Param q query string true "Course code or name, partial input allowed"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Failure 400 {object} dto.APIResponse "Missing query"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	var query dto.SearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalogService.Search(query.Q), ""))
}

// GetCourseByCode retrieves a course page by code
// @Summary Get a course page by code
// @Description Codes shorter than the catalog width are zero padded
// @Tags courses
// @Produce json
// @Param code path string true "Course code" example(00234218)
// @Success 200 {object} dto.APIResponse{data=dto.CourseView} "Course retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view, ""))
}
