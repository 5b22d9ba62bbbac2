package database

import (
	"database/sql"
	"math"
	"nautical-institute/app/models"
)

// AttendancePercentage returns present/total as a percentage rounded to one
// decimal place. Zero total yields 0.
func AttendancePercentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}

// GetLogbookAttendanceSummary computes, for every student with at least one
// mark in the logbook, how many recorded dates they were present out of the
// dates they were marked on.
func GetLogbookAttendanceSummary(db *sql.DB, logbookID string) ([]*models.StudentAttendanceSummary, error) {
	query := `SELECT s.national_id, s.first_name, s.last_name,
			  COUNT(*) FILTER (WHERE m.state = 'present') AS days_present,
			  COUNT(*) AS days_total
			  FROM attendance_marks m
			  JOIN daily_contents d ON d.id = m.daily_content_id
			  JOIN weekly_contents w ON w.id = d.weekly_content_id
			  JOIN students s ON s.national_id = m.student_national_id
			  WHERE w.logbook_id = $1
			  GROUP BY s.national_id, s.first_name, s.last_name
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query, logbookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.StudentAttendanceSummary
	for rows.Next() {
		summary := &models.StudentAttendanceSummary{}
		err := rows.Scan(
			&summary.StudentNationalID, &summary.FirstName, &summary.LastName,
			&summary.DaysPresent, &summary.DaysTotal,
		)
		if err != nil {
			continue
		}
		summary.Percentage = AttendancePercentage(summary.DaysPresent, summary.DaysTotal)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if summaries == nil {
		summaries = []*models.StudentAttendanceSummary{}
	}
	return summaries, nil
}

// GetDashboardStats gathers the headline numbers for the landing view.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE is_active = true) AS total_students,
			(SELECT COUNT(*) FROM class_folders WHERE status = 'open') AS open_folders,
			(SELECT COUNT(*) FROM logbooks WHERE status = 'active') AS active_logbooks,
			(SELECT COUNT(*) FROM attendance_marks m
				JOIN daily_contents d ON d.id = m.daily_content_id
				WHERE d.entry_date = CURRENT_DATE AND m.state = 'present') AS today_present,
			(SELECT COUNT(*) FROM attendance_marks m
				JOIN daily_contents d ON d.id = m.daily_content_id
				WHERE d.entry_date = CURRENT_DATE AND m.state = 'absent') AS today_absent,
			NOW() AS as_of
	`

	stats := &models.DashboardStats{}
	err := db.QueryRow(query).Scan(
		&stats.TotalStudents, &stats.OpenFolders, &stats.ActiveLogbooks,
		&stats.TodayPresent, &stats.TodayAbsent, &stats.AsOf,
	)
	if err != nil {
		return nil, err
	}

	stats.TodayAttendance = AttendancePercentage(stats.TodayPresent, stats.TodayPresent+stats.TodayAbsent)
	return stats, nil
}
