package models

import "time"

// Logbook is the per-subject class ledger inside a folder.
type Logbook struct {
	ID               string        `json:"id"`
	FolderID         string        `json:"folder_id" validate:"required,uuid"`
	Subject          string        `json:"subject" validate:"required"`
	Instructor       string        `json:"instructor" validate:"required"`
	ResolutionNumber string        `json:"resolution_number"`
	TotalHours       float64       `json:"total_hours"`
	Status           LogbookStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	Folder           *ClassFolder  `json:"folder,omitempty"`
}
