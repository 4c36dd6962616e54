package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/eschool/internal/app/controllers"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	CourseTeacher *controllers.CourseTeacherController
	Teacher       *controllers.TeacherController
	Course        *controllers.CourseController
	Health        *controllers.HealthController
}

// SetupRouter configures all application routes. A nil authMiddleware leaves the
// write endpoints open.
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// Writes require an admin token when authentication is enabled
	var writeGuard []gin.HandlerFunc
	if authMiddleware != nil {
		writeGuard = append(writeGuard, authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	}

	courseTeachers := v1.Group("/courseteachers")
	{
		courseTeachers.GET("", ctrl.CourseTeacher.GetCourseTeachers)

		protected := courseTeachers.Group("", writeGuard...)
		protected.POST("", ctrl.CourseTeacher.CreateCourseTeacher)
		protected.DELETE("", ctrl.CourseTeacher.DeleteCourseTeacher)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", ctrl.Teacher.GetAllTeachers)
		teachers.GET("/:id", ctrl.Teacher.GetTeacherByID)
		teachers.GET("/:id/courses", ctrl.CourseTeacher.GetCourseTeachersByTeacher)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", ctrl.Course.GetAllCourses)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.GET("/:id/teachers", ctrl.CourseTeacher.GetCourseTeachersByCourse)
	}

	if ctrl.Health != nil {
		v1.GET("/health", ctrl.Health.Health)
	}
}
