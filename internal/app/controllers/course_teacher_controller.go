package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/app/models/dto"
	"github.com/yigit/eschool/internal/app/services"
	"github.com/yigit/eschool/internal/middleware"
	"github.com/yigit/eschool/internal/pkg/apperrors"
	"github.com/yigit/eschool/internal/pkg/helpers"
)

const (
	courseIDParam  = "courseId"
	teacherIDParam = "teacherId"
)

// CourseTeacherController handles course/teacher assignment endpoints
type CourseTeacherController struct {
	courseTeacherService services.CourseTeacherService
}

// NewCourseTeacherController creates a new CourseTeacherController
func NewCourseTeacherController(courseTeacherService services.CourseTeacherService) *CourseTeacherController {
	return &CourseTeacherController{
		courseTeacherService: courseTeacherService,
	}
}

// CourseTeacherLocation is the URI identifying a single assignment
func CourseTeacherLocation(teacherID, courseID int64) string {
	return fmt.Sprintf("/api/v1/courseteachers?courseId=%d&teacherId=%d", courseID, teacherID)
}

// GetCourseTeachers lists assignments
// @Summary List course teacher assignments
// @Description Lists assignments, optionally filtered by course, by teacher or by both
// @Tags courseteachers
// @Produce json
// @Param courseId query int false "Course ID" Format(int64)
// @Param teacherId query int false "Teacher ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseTeacher} "Assignments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courseteachers [get]
func (c *CourseTeacherController) GetCourseTeachers(ctx *gin.Context) {
	params, err := helpers.ParseInt64QueryParams(ctx, courseIDParam, teacherIDParam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var filter models.CourseTeacherFilter
	if courseID, ok := params[courseIDParam]; ok {
		filter.CourseID = &courseID
	}
	if teacherID, ok := params[teacherIDParam]; ok {
		filter.TeacherID = &teacherID
	}

	courseTeachers, err := c.courseTeacherService.ListCourseTeachers(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseTeachers, "Course teachers retrieved successfully"))
}

// CreateCourseTeacher assigns a teacher to a course
// @Summary Assign a teacher to a course
// @Description Creates an assignment between an existing teacher and an existing course
// @Tags courseteachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseTeacherRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.CourseTeacher} "Assignment created successfully"
// @Header 201 {string} Location "URI of the created assignment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Teacher or course not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher already assigned to course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courseteachers [post]
func (c *CourseTeacherController) CreateCourseTeacher(ctx *gin.Context) {
	var req dto.CreateCourseTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	courseTeacher, err := c.courseTeacherService.AssignTeacher(ctx.Request.Context(), req.TeacherID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", CourseTeacherLocation(courseTeacher.TeacherID, courseTeacher.CourseID))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(courseTeacher, "Teacher assigned to course successfully"))
}

// DeleteCourseTeacher removes an assignment
// @Summary Remove a teacher from a course
// @Description Deletes the assignment identified by courseId and teacherId. The course and the teacher are kept.
// @Tags courseteachers
// @Produce json
// @Security BearerAuth
// @Param courseId query int true "Course ID" Format(int64)
// @Param teacherId query int true "Teacher ID" Format(int64)
// @Success 204 "Assignment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courseteachers [delete]
func (c *CourseTeacherController) DeleteCourseTeacher(ctx *gin.Context) {
	params, err := helpers.ParseInt64QueryParams(ctx, courseIDParam, teacherIDParam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courseID, hasCourse := params[courseIDParam]
	teacherID, hasTeacher := params[teacherIDParam]
	if !hasCourse || !hasTeacher {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId and teacherId are both required"))
		return
	}

	if err := c.courseTeacherService.UnassignTeacher(ctx.Request.Context(), teacherID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCourseTeachersByCourse lists the teachers assigned to one course
// @Summary List teachers of a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseTeacher} "Assignments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/teachers [get]
func (c *CourseTeacherController) GetCourseTeachersByCourse(ctx *gin.Context) {
	courseID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courseTeachers, err := c.courseTeacherService.ListTeachersForCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseTeachers, ""))
}

// GetCourseTeachersByTeacher lists the courses one teacher is assigned to
// @Summary List courses of a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseTeacher} "Assignments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/courses [get]
func (c *CourseTeacherController) GetCourseTeachersByTeacher(ctx *gin.Context) {
	teacherID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courseTeachers, err := c.courseTeacherService.ListCoursesForTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseTeachers, ""))
}
