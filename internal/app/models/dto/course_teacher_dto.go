package dto

// CreateCourseTeacherRequest assigns a teacher to a course
type CreateCourseTeacherRequest struct {
	TeacherID int64 `json:"teacherId" binding:"required,gt=0" example:"1"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0" example:"2"`
}
