package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

// TeacherWriter is the part of the teacher repository seeding needs
type TeacherWriter interface {
	Create(ctx context.Context, teacher *appModels.Teacher) error
	GetAll(ctx context.Context) ([]*appModels.Teacher, error)
}

// CourseWriter is the part of the course repository seeding needs
type CourseWriter interface {
	Create(ctx context.Context, course *appModels.Course) error
	GetAll(ctx context.Context) ([]*appModels.Course, error)
}

var defaultTeachers = []appModels.Teacher{
	{FirstName: "Ada", LastName: "Lovelace", Email: "ada.lovelace@eschool.edu"},
	{FirstName: "Alan", LastName: "Turing", Email: "alan.turing@eschool.edu"},
	{FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@eschool.edu"},
}

var defaultCourses = []appModels.Course{
	{Code: "MATH101", Name: "Calculus I", Credits: 4},
	{Code: "CS101", Name: "Introduction to Programming", Credits: 6},
	{Code: "PHYS101", Name: "General Physics", Credits: 5},
}

// CreateDefaultData creates a few teachers and courses when the tables are empty.
// Individual failures are collected so one bad row does not stop the rest.
func CreateDefaultData(ctx context.Context, teachers TeacherWriter, courses CourseWriter, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Teachers/Courses)...")
	var finalErr error

	existingTeachers, err := teachers.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing teachers")
		finalErr = errors.Join(finalErr, err)
	} else if len(existingTeachers) == 0 {
		for _, t := range defaultTeachers {
			teacher := t
			if err := teachers.Create(ctx, &teacher); err != nil {
				lgr.Error().Err(err).Str("lastName", teacher.LastName).Msg("Error creating default teacher")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			lgr.Debug().Int64("id", teacher.ID).Str("lastName", teacher.LastName).Msg("Default teacher created")
		}
	}

	existingCourses, err := courses.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing courses")
		finalErr = errors.Join(finalErr, err)
	} else if len(existingCourses) == 0 {
		for _, c := range defaultCourses {
			course := c
			err := courses.Create(ctx, &course)
			if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				continue
			}
			if err != nil {
				lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			lgr.Debug().Int64("id", course.ID).Str("code", course.Code).Msg("Default course created")
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
