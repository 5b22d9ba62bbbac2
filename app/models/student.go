package models

import "time"

// Student is identified by the national ID issued at enrollment time.
type Student struct {
	NationalID string    `json:"national_id" validate:"required"`
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FullName returns the display name used on rosters and printed documents.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Enrollment links a student to a cohort via the official acta number.
// The compound key (acta, year, course) is deliberate: acta numbers repeat
// across years for the same course.
type Enrollment struct {
	ID                string    `json:"id"`
	StudentNationalID string    `json:"student_national_id" validate:"required"`
	ActaNumber        int       `json:"acta_number" validate:"required"`
	Year              int       `json:"year" validate:"required"`
	CourseID          string    `json:"course_id" validate:"required,uuid"`
	EnrolledAt        time.Time `json:"enrolled_at"`
	Student           *Student  `json:"student,omitempty"`
}
