package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
	"github.com/yigit/eschool/internal/pkg/dberrors"
	"github.com/yigit/eschool/internal/pkg/logger"
)

// Constraint names from migrations/002_course_teachers.sql
const (
	courseTeacherTeacherFK = "course_teachers_teacher_id_fkey"
	courseTeacherCourseFK  = "course_teachers_course_id_fkey"
)

// CourseTeacherRepository handles course/teacher assignment rows
type CourseTeacherRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseTeacherRepository creates a new CourseTeacherRepository
func NewCourseTeacherRepository(db DBTX) *CourseTeacherRepository {
	return &CourseTeacherRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List returns the assignments matching filter in insertion order, with course and teacher
// loaded in the same query.
func (r *CourseTeacherRepository) List(ctx context.Context, filter models.CourseTeacherFilter) ([]*models.CourseTeacher, error) {
	query := r.sb.Select(
		"ct.teacher_id", "ct.course_id", "ct.assigned_at",
		"c.id", "c.code", "c.name", "c.credits",
		"t.id", "t.first_name", "t.last_name", "t.email",
	).
		From("course_teachers ct").
		Join("courses c ON c.id = ct.course_id").
		Join("teachers t ON t.id = ct.teacher_id")

	if filter.CourseID != nil {
		query = query.Where(squirrel.Eq{"ct.course_id": *filter.CourseID})
	}
	if filter.TeacherID != nil {
		query = query.Where(squirrel.Eq{"ct.teacher_id": *filter.TeacherID})
	}

	sql, args, err := query.OrderBy("ct.assigned_at ASC", "ct.teacher_id ASC", "ct.course_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list course teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list course teachers query")
		return nil, fmt.Errorf("error querying course teachers: %w", err)
	}
	defer rows.Close()

	courseTeachers := []*models.CourseTeacher{}
	for rows.Next() {
		ct := &models.CourseTeacher{Course: &models.Course{}, Teacher: &models.Teacher{}}
		if err := rows.Scan(
			&ct.TeacherID, &ct.CourseID, &ct.AssignedAt,
			&ct.Course.ID, &ct.Course.Code, &ct.Course.Name, &ct.Course.Credits,
			&ct.Teacher.ID, &ct.Teacher.FirstName, &ct.Teacher.LastName, &ct.Teacher.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning course teacher row: %w", err)
		}
		courseTeachers = append(courseTeachers, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course teacher rows: %w", err)
	}

	return courseTeachers, nil
}

// Create inserts an assignment and sets its AssignedAt. A duplicate pair returns
// apperrors.ErrCourseTeacherAlreadyExists; a missing teacher or course returns the
// matching not-found error.
func (r *CourseTeacherRepository) Create(ctx context.Context, ct *models.CourseTeacher) error {
	sql, args, err := r.sb.Insert("course_teachers").
		Columns("teacher_id", "course_id").
		Values(ct.TeacherID, ct.CourseID).
		Suffix("RETURNING assigned_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&ct.AssignedAt)
	if err == nil {
		return nil
	}

	if dberrors.IsUniqueViolation(err) {
		return apperrors.ErrCourseTeacherAlreadyExists
	}
	if constraint, ok := dberrors.ForeignKeyConstraint(err); ok {
		switch constraint {
		case courseTeacherTeacherFK:
			return apperrors.ErrTeacherNotFound
		case courseTeacherCourseFK:
			return apperrors.ErrCourseNotFound
		}
	}

	logger.Error().Err(err).Int64("teacherID", ct.TeacherID).Int64("courseID", ct.CourseID).Msg("Error executing create course teacher query")
	return fmt.Errorf("error creating course teacher: %w", err)
}

// Delete removes the assignment of teacherID to courseID
func (r *CourseTeacherRepository) Delete(ctx context.Context, teacherID, courseID int64) error {
	sql, args, err := r.sb.Delete("course_teachers").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacherID).Int64("courseID", courseID).Msg("Error executing delete course teacher query")
		return fmt.Errorf("error deleting course teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseTeacherNotFound
	}

	return nil
}
