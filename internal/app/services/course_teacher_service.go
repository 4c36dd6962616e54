package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

// CourseTeacherService defines the operations on course/teacher assignments
type CourseTeacherService interface {
	ListCourseTeachers(ctx context.Context, filter models.CourseTeacherFilter) ([]*models.CourseTeacher, error)
	ListTeachersForCourse(ctx context.Context, courseID int64) ([]*models.CourseTeacher, error)
	ListCoursesForTeacher(ctx context.Context, teacherID int64) ([]*models.CourseTeacher, error)
	AssignTeacher(ctx context.Context, teacherID, courseID int64) (*models.CourseTeacher, error)
	UnassignTeacher(ctx context.Context, teacherID, courseID int64) error
}

type courseTeacherServiceImpl struct {
	courseTeacherRepo CourseTeacherStore
	teacherRepo       TeacherStore
	courseRepo        CourseStore
	logger            zerolog.Logger
}

// NewCourseTeacherService creates a new course teacher service instance
func NewCourseTeacherService(
	courseTeacherRepo CourseTeacherStore,
	teacherRepo TeacherStore,
	courseRepo CourseStore,
	logger zerolog.Logger,
) CourseTeacherService {
	return &courseTeacherServiceImpl{
		courseTeacherRepo: courseTeacherRepo,
		teacherRepo:       teacherRepo,
		courseRepo:        courseRepo,
		logger:            logger,
	}
}

// isDomainError reports errors that already carry their HTTP meaning
func isDomainError(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists, apperrors.ErrValidationFailed)
}

func validateIDs(teacherID, courseID int64) error {
	if teacherID <= 0 {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}
	if courseID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListCourseTeachers returns the assignments matching filter
func (s *courseTeacherServiceImpl) ListCourseTeachers(ctx context.Context, filter models.CourseTeacherFilter) ([]*models.CourseTeacher, error) {
	courseTeachers, err := s.courseTeacherRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course teachers: %w", err)
	}
	return courseTeachers, nil
}

// ListTeachersForCourse returns the assignments of an existing course
func (s *courseTeacherServiceImpl) ListTeachersForCourse(ctx context.Context, courseID int64) ([]*models.CourseTeacher, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return s.ListCourseTeachers(ctx, models.CourseTeacherFilter{CourseID: &courseID})
}

// ListCoursesForTeacher returns the assignments of an existing teacher
func (s *courseTeacherServiceImpl) ListCoursesForTeacher(ctx context.Context, teacherID int64) ([]*models.CourseTeacher, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return s.ListCourseTeachers(ctx, models.CourseTeacherFilter{TeacherID: &teacherID})
}

// AssignTeacher assigns an existing teacher to an existing course. Unknown ids are
// rejected with a not-found error before anything is written; an existing assignment
// yields apperrors.ErrCourseTeacherAlreadyExists.
func (s *courseTeacherServiceImpl) AssignTeacher(ctx context.Context, teacherID, courseID int64) (*models.CourseTeacher, error) {
	if err := validateIDs(teacherID, courseID); err != nil {
		return nil, err
	}

	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	courseTeacher := &models.CourseTeacher{TeacherID: teacher.ID, CourseID: course.ID}
	if err := s.courseTeacherRepo.Create(ctx, courseTeacher); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating course teacher: %w", err)
	}
	courseTeacher.Teacher = teacher
	courseTeacher.Course = course

	s.logger.Info().Int64("teacherId", teacherID).Int64("courseId", courseID).Msg("Teacher assigned to course")
	return courseTeacher, nil
}

// UnassignTeacher removes the assignment of teacherID to courseID. The teacher and the
// course themselves are left untouched.
func (s *courseTeacherServiceImpl) UnassignTeacher(ctx context.Context, teacherID, courseID int64) error {
	if err := s.courseTeacherRepo.Delete(ctx, teacherID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting course teacher: %w", err)
	}

	s.logger.Info().Int64("teacherId", teacherID).Int64("courseId", courseID).Msg("Teacher unassigned from course")
	return nil
}
