package services

import (
	"context"

	"github.com/yigit/eschool/internal/app/models"
)

// Services defined in this package:
// - CourseTeacherService: assigns teachers to courses and lists assignments
// - TeacherService: read access to teachers
// - CourseService: read access to courses

// TeacherStore is the teacher persistence the services depend on
type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
}

// CourseStore is the course persistence the services depend on
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// CourseTeacherStore is the assignment persistence the services depend on
type CourseTeacherStore interface {
	List(ctx context.Context, filter models.CourseTeacherFilter) ([]*models.CourseTeacher, error)
	Create(ctx context.Context, ct *models.CourseTeacher) error
	Delete(ctx context.Context, teacherID, courseID int64) error
}
