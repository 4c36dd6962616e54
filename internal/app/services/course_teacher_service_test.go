package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

func newTestService() (CourseTeacherService, *memStore) {
	store := newMemStore()
	return NewCourseTeacherService(store, teacherStore{store}, courseStore{store}, zerolog.Nop()), store
}

func int64Ptr(v int64) *int64 { return &v }

func pairs(list []*models.CourseTeacher) [][2]int64 {
	out := [][2]int64{}
	for _, ct := range list {
		out = append(out, [2]int64{ct.TeacherID, ct.CourseID})
	}
	return out
}

func TestAssignTeacher(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ct, err := svc.AssignTeacher(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ct.TeacherID)
	assert.Equal(t, int64(2), ct.CourseID)
	require.NotNil(t, ct.Teacher)
	require.NotNil(t, ct.Course)
	assert.Equal(t, "Lovelace", ct.Teacher.LastName)
	assert.Equal(t, "MATH101", ct.Course.Code)
	assert.False(t, ct.AssignedAt.IsZero())

	list, err := svc.ListCourseTeachers(ctx, models.CourseTeacherFilter{})
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{1, 2}}, pairs(list))
}

func TestAssignTeacherDuplicateIsRejected(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AssignTeacher(ctx, 1, 2)
	require.NoError(t, err)

	_, err = svc.AssignTeacher(ctx, 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrCourseTeacherAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
	assert.Len(t, store.rows, 1)
}

func TestAssignTeacherConcurrentDuplicates(t *testing.T) {
	svc, store := newTestService()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AssignTeacher(context.Background(), 3, 4)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, store.rows, 1)
}

func TestAssignTeacherMissingReferences(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AssignTeacher(ctx, 99, 2)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	_, err = svc.AssignTeacher(ctx, 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.AssignTeacher(ctx, 0, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, store.rows)
}

func TestAssignTeacherStorageFailure(t *testing.T) {
	svc, store := newTestService()
	store.failWith = errDatabaseDown

	_, err := svc.AssignTeacher(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDatabaseDown)
	assert.False(t, isDomainError(err))
}

func TestListCourseTeachersFilters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, p := range [][2]int64{{1, 2}, {3, 2}, {1, 4}} {
		_, err := svc.AssignTeacher(ctx, p[0], p[1])
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter models.CourseTeacherFilter
		want   [][2]int64
	}{
		{name: "none", filter: models.CourseTeacherFilter{}, want: [][2]int64{{1, 2}, {3, 2}, {1, 4}}},
		{name: "course", filter: models.CourseTeacherFilter{CourseID: int64Ptr(2)}, want: [][2]int64{{1, 2}, {3, 2}}},
		{name: "teacher", filter: models.CourseTeacherFilter{TeacherID: int64Ptr(1)}, want: [][2]int64{{1, 2}, {1, 4}}},
		{name: "both", filter: models.CourseTeacherFilter{CourseID: int64Ptr(4), TeacherID: int64Ptr(1)}, want: [][2]int64{{1, 4}}},
		{name: "no match", filter: models.CourseTeacherFilter{CourseID: int64Ptr(4), TeacherID: int64Ptr(3)}, want: [][2]int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.ListCourseTeachers(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pairs(list))
			for _, ct := range list {
				assert.NotNil(t, ct.Course)
				assert.NotNil(t, ct.Teacher)
			}
		})
	}
}

func TestListForCourseAndTeacher(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AssignTeacher(ctx, 3, 2)
	require.NoError(t, err)

	list, err := svc.ListTeachersForCourse(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{3, 2}}, pairs(list))

	list, err = svc.ListCoursesForTeacher(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ListTeachersForCourse(ctx, 77)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.ListCoursesForTeacher(ctx, 77)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestUnassignTeacher(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AssignTeacher(ctx, 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UnassignTeacher(ctx, 1, 2))
	assert.Empty(t, store.rows)
	assert.Len(t, store.teachers, 2, "teachers must survive unassignment")
	assert.Len(t, store.courses, 2, "courses must survive unassignment")

	err = svc.UnassignTeacher(ctx, 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrCourseTeacherNotFound)
}

func TestUnassignTeacherStorageFailure(t *testing.T) {
	svc, store := newTestService()
	store.failWith = errDatabaseDown

	err := svc.UnassignTeacher(context.Background(), 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errDatabaseDown))
	assert.False(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
