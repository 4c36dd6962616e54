package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

func TestTeacherService(t *testing.T) {
	store := newMemStore()
	svc := NewTeacherService(teacherStore{store})
	ctx := context.Background()

	teachers, err := svc.GetAllTeachers(ctx)
	require.NoError(t, err)
	assert.Len(t, teachers, 2)

	teacher, err := svc.GetTeacherByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Turing", teacher.LastName)

	_, err = svc.GetTeacherByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	_, err = svc.GetTeacherByID(ctx, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	store.failWith = errDatabaseDown
	_, err = svc.GetAllTeachers(ctx)
	assert.ErrorIs(t, err, errDatabaseDown)
}

func TestCourseService(t *testing.T) {
	store := newMemStore()
	svc := NewCourseService(courseStore{store})
	ctx := context.Background()

	courses, err := svc.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	course, err := svc.GetCourseByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)

	_, err = svc.GetCourseByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.GetCourseByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
