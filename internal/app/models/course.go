package models

// Course represents a course taught at the school.
type Course struct {
	ID      int64  `json:"id" db:"id" example:"2"`
	Code    string `json:"code" db:"code" example:"MATH101"`
	Name    string `json:"name" db:"name" example:"Calculus I"`
	Credits int    `json:"credits" db:"credits" example:"4"`
}
