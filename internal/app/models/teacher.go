package models

// Teacher is a member of staff who can be assigned to courses
type Teacher struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	FirstName string `json:"firstName" db:"first_name" example:"Ada"`
	LastName  string `json:"lastName" db:"last_name" example:"Lovelace"`
	Email     string `json:"email,omitempty" db:"email" example:"ada@eschool.edu"`
}
