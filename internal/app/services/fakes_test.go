package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

type pairKey struct{ teacherID, courseID int64 }

// memStore is an in-memory stand-in for the three repositories that enforces the same
// primary-key and foreign-key rules as the schema.
type memStore struct {
	mu       sync.Mutex
	teachers map[int64]*models.Teacher
	courses  map[int64]*models.Course
	rows     []*models.CourseTeacher
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		teachers: map[int64]*models.Teacher{
			1: {ID: 1, FirstName: "Ada", LastName: "Lovelace"},
			3: {ID: 3, FirstName: "Alan", LastName: "Turing"},
		},
		courses: map[int64]*models.Course{
			2: {ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 4},
			4: {ID: 4, Code: "CS101", Name: "Programming", Credits: 6},
		},
	}
}

type teacherStore struct{ *memStore }
type courseStore struct{ *memStore }

func (s teacherStore) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	t, ok := s.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func (s teacherStore) GetAll(_ context.Context) ([]*models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []*models.Teacher{}
	for _, t := range s.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (s courseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	c, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (s courseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []*models.Course{}
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

func (s *memStore) List(_ context.Context, filter models.CourseTeacherFilter) ([]*models.CourseTeacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []*models.CourseTeacher{}
	for _, row := range s.rows {
		if filter.CourseID != nil && row.CourseID != *filter.CourseID {
			continue
		}
		if filter.TeacherID != nil && row.TeacherID != *filter.TeacherID {
			continue
		}
		copied := *row
		copied.Course = s.courses[row.CourseID]
		copied.Teacher = s.teachers[row.TeacherID]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, ct *models.CourseTeacher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.teachers[ct.TeacherID]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	if _, ok := s.courses[ct.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, row := range s.rows {
		if (pairKey{row.TeacherID, row.CourseID}) == (pairKey{ct.TeacherID, ct.CourseID}) {
			return apperrors.ErrCourseTeacherAlreadyExists
		}
	}
	ct.AssignedAt = time.Now()
	s.rows = append(s.rows, &models.CourseTeacher{TeacherID: ct.TeacherID, CourseID: ct.CourseID, AssignedAt: ct.AssignedAt})
	return nil
}

func (s *memStore) Delete(_ context.Context, teacherID, courseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	for i, row := range s.rows {
		if row.TeacherID == teacherID && row.CourseID == courseID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseTeacherNotFound
}

var errDatabaseDown = errors.New("database unavailable")
