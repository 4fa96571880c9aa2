package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemap/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	gradesController *controllers.GradesController,
) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetCourse)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/:code", courseController.GetCourseByCode)

		courses.GET("/:code/semesters", gradesController.GetSemesters)
		courses.GET("/:code/grades/:semester/:exam", gradesController.GetExam)
		courses.GET("/:code/averages", gradesController.GetAverages)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
