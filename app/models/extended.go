package models

import "time"

// DailyLogView is the readback shape for one recorded date: the content row
// plus every attendance mark taken with it.
type DailyLogView struct {
	Weekly *WeeklyContent    `json:"weekly"`
	Daily  *DailyContent     `json:"daily"`
	Marks  []*AttendanceMark `json:"marks"`
}

// StudentAttendanceSummary is one row of the per-logbook attendance report.
type StudentAttendanceSummary struct {
	StudentNationalID string  `json:"student_national_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	DaysPresent       int     `json:"days_present"`
	DaysTotal         int     `json:"days_total"`
	Percentage        float64 `json:"percentage"`
}

type DashboardStats struct {
	TotalStudents   int       `json:"total_students"`
	OpenFolders     int       `json:"open_folders"`
	ActiveLogbooks  int       `json:"active_logbooks"`
	TodayPresent    int       `json:"today_present"`
	TodayAbsent     int       `json:"today_absent"`
	TodayAttendance float64   `json:"today_attendance"`
	AsOf            time.Time `json:"as_of"`
}
