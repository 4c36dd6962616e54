package models

import "time"

// CourseTeacher assigns one teacher to one course. The pair (TeacherID, CourseID) is the
// primary key. The association references the course and teacher but does not own them.
type CourseTeacher struct {
	TeacherID  int64     `json:"teacherId" db:"teacher_id" example:"1"`
	CourseID   int64     `json:"courseId" db:"course_id" example:"2"`
	AssignedAt time.Time `json:"assignedAt" db:"assigned_at" example:"2025-09-01T08:00:00Z"`

	// Relations (populated when needed)
	Course  *Course  `json:"course,omitempty"`
	Teacher *Teacher `json:"teacher,omitempty"`
}

// CourseTeacherFilter narrows a course teacher listing. A nil field means "any".
type CourseTeacherFilter struct {
	CourseID  *int64
	TeacherID *int64
}
