package models

import "time"

// ClassFolder groups a cohort of students under one official acta number
// for a course starting in a given year.
type ClassFolder struct {
	ID         string       `json:"id"`
	ActaNumber int          `json:"acta_number" validate:"required"`
	CourseID   string       `json:"course_id" validate:"required,uuid"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	Status     FolderStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Course     *Course      `json:"course,omitempty"`
}
