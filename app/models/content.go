package models

import "time"

// WeeklyContent is the week boundary row: at most one per (logbook, ISO week).
// The stored Monday/Sunday are fixed by the first submission for that week.
type WeeklyContent struct {
	ID         string    `json:"id"`
	LogbookID  string    `json:"logbook_id"`
	WeekNumber int       `json:"week_number"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	CreatedAt  time.Time `json:"created_at"`
}

// DailyContent records what was taught on one calendar date: at most one per
// (weekly content, date). Content and hours are overwritten on resubmission.
type DailyContent struct {
	ID              string    `json:"id"`
	WeeklyContentID string    `json:"weekly_content_id"`
	EntryDate       time.Time `json:"entry_date"`
	Content         string    `json:"content"`
	Hours           float64   `json:"hours"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AttendanceMark is a per-student, per-date presence record: at most one per
// (daily content, student). Resubmission overwrites the state.
type AttendanceMark struct {
	ID                string          `json:"id"`
	DailyContentID    string          `json:"daily_content_id"`
	StudentNationalID string          `json:"student_national_id"`
	State             AttendanceState `json:"state"`
	MarkedBy          *string         `json:"marked_by,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Student           *Student        `json:"student,omitempty"`
}
