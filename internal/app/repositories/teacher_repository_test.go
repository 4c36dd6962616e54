package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

func TestTeacherRepositoryGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewTeacherRepository(mock)

	mock.ExpectQuery(`SELECT id, first_name, last_name, email FROM teachers WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(teacherColumns).AddRow(int64(1), "Ada", "Lovelace", "ada@eschool.edu"))

	teacher, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &models.Teacher{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@eschool.edu"}, teacher)

	mock.ExpectQuery("SELECT (.+) FROM teachers").WithArgs(int64(42)).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreateAndGetAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewTeacherRepository(mock)

	mock.ExpectQuery(`INSERT INTO teachers \(first_name,last_name,email\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs("Grace", "Hopper", "grace@eschool.edu").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	teacher := &models.Teacher{FirstName: "Grace", LastName: "Hopper", Email: "grace@eschool.edu"}
	require.NoError(t, repo.Create(context.Background(), teacher))
	assert.Equal(t, int64(7), teacher.ID)

	mock.ExpectQuery("SELECT (.+) FROM teachers ORDER BY last_name ASC").
		WillReturnRows(pgxmock.NewRows(teacherColumns).
			AddRow(int64(7), "Grace", "Hopper", "grace@eschool.edu").
			AddRow(int64(1), "Ada", "Lovelace", ""))

	teachers, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Hopper", teachers[0].LastName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryGetByIDAndCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(`SELECT id, code, name, credits FROM courses WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(courseColumns).AddRow(int64(2), "MATH101", "Calculus I", 4))

	course, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, &models.Course{ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 4}, course)

	mock.ExpectQuery("SELECT (.+) FROM courses").WithArgs(int64(3)).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	mock.ExpectQuery("INSERT INTO courses").
		WithArgs("MATH101", "Calculus I", 4).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "courses_code_key"})
	err = repo.Create(context.Background(), &models.Course{Code: "MATH101", Name: "Calculus I", Credits: 4})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
