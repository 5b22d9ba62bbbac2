package database

import (
	"database/sql"
	"errors"
	"fmt"
	"nautical-institute/app/models"
	"time"

	"github.com/lib/pq"
)

var (
	ErrLogbookNotFound = errors.New("logbook not found")
	ErrLogbookFinished = errors.New("logbook is finished")
	ErrNegativeHours   = errors.New("hours must not be negative")
)

// RosterMark is one attendance entry of a submission. NationalID is preferred;
// FullName is the legacy fallback and may fail to resolve, in which case the
// mark is skipped.
type RosterMark struct {
	NationalID string                 `json:"national_id"`
	FullName   string                 `json:"full_name"`
	State      models.AttendanceState `json:"state"`
}

// DailyLogInput is one day's teaching record plus its attendance roll.
type DailyLogInput struct {
	LogbookID string
	Date      time.Time
	Content   string
	Hours     float64
	Marks     []RosterMark
	MarkedBy  *string
}

// DailyLogResult reports what a submission persisted.
type DailyLogResult struct {
	WeeklyContentID string `json:"weekly_content_id"`
	DailyContentID  string `json:"daily_content_id"`
	MarksSaved      int    `json:"marks_saved"`
	MarksSkipped    int    `json:"marks_skipped"`
}

// WeekBounds returns the ISO week number of date and the Monday/Sunday that
// bracket it.
func WeekBounds(date time.Time) (int, time.Time, time.Time) {
	_, week := date.ISOWeek()
	// Monday-based weekday offset; time.Weekday has Sunday = 0.
	offset := (int(date.Weekday()) + 6) % 7
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return week, start, end
}

// RecordDailyLog atomically persists one day's content record and its
// attendance roll. Resubmitting the same (logbook, date) overwrites content,
// hours and mark states without ever duplicating rows: weekly contents are
// keyed by (logbook, ISO week), daily contents by (weekly, date) and marks by
// (daily, student).
func RecordDailyLog(db *sql.DB, input *DailyLogInput) (*DailyLogResult, error) {
	if input.Hours < 0 {
		return nil, ErrNegativeHours
	}

	var status models.LogbookStatus
	err := db.QueryRow(`SELECT status FROM logbooks WHERE id = $1`, input.LogbookID).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, ErrLogbookNotFound
	}
	if err != nil {
		return nil, err
	}
	if status != models.LogbookActive {
		return nil, ErrLogbookFinished
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	week, weekStart, weekEnd := WeekBounds(input.Date)

	weeklyID, err := getOrCreateWeeklyContent(tx, input.LogbookID, week, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("weekly content: %w", err)
	}

	var dailyID string
	err = tx.QueryRow(`INSERT INTO daily_contents (weekly_content_id, entry_date, content, hours, created_at, updated_at)
					   VALUES ($1, $2, $3, $4, NOW(), NOW())
					   ON CONFLICT (weekly_content_id, entry_date)
					   DO UPDATE SET content = EXCLUDED.content, hours = EXCLUDED.hours, updated_at = NOW()
					   RETURNING id`,
		weeklyID, input.Date, input.Content, input.Hours).Scan(&dailyID)
	if err != nil {
		return nil, fmt.Errorf("daily content: %w", err)
	}

	result := &DailyLogResult{WeeklyContentID: weeklyID, DailyContentID: dailyID}

	for _, mark := range input.Marks {
		nationalID, err := resolveStudent(tx, mark)
		if err != nil {
			return nil, fmt.Errorf("resolve student: %w", err)
		}
		if nationalID == "" {
			result.MarksSkipped++
			continue
		}

		_, err = tx.Exec(`INSERT INTO attendance_marks (daily_content_id, student_national_id, state, marked_by, created_at, updated_at)
						  VALUES ($1, $2, $3, $4, NOW(), NOW())
						  ON CONFLICT (daily_content_id, student_national_id)
						  DO UPDATE SET state = EXCLUDED.state, marked_by = EXCLUDED.marked_by, updated_at = NOW()`,
			dailyID, nationalID, mark.State, input.MarkedBy)
		if err != nil {
			return nil, fmt.Errorf("attendance mark for %s: %w", nationalID, err)
		}
		result.MarksSaved++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// getOrCreateWeeklyContent resolves the weekly row for (logbook, week),
// inserting it on first submission. A concurrent insert loses the race on the
// unique index and falls back to reading the winner's row; the stored week
// boundaries are never rewritten.
func getOrCreateWeeklyContent(tx *sql.Tx, logbookID string, week int, weekStart, weekEnd time.Time) (string, error) {
	var id string
	err := tx.QueryRow(`SELECT id FROM weekly_contents WHERE logbook_id = $1 AND week_number = $2`,
		logbookID, week).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	err = tx.QueryRow(`INSERT INTO weekly_contents (logbook_id, week_number, week_start, week_end, created_at)
					   VALUES ($1, $2, $3, $4, NOW())
					   RETURNING id`,
		logbookID, week, weekStart, weekEnd).Scan(&id)
	if err == nil {
		return id, nil
	}
	if isUniqueViolation(err) {
		err = tx.QueryRow(`SELECT id FROM weekly_contents WHERE logbook_id = $1 AND week_number = $2`,
			logbookID, week).Scan(&id)
		if err != nil {
			return "", err
		}
		return id, nil
	}
	return "", err
}

// resolveStudent maps a roster mark to a student national ID. Returns "" when
// the entry cannot be matched; the caller skips it rather than failing the
// whole submission.
func resolveStudent(tx *sql.Tx, mark RosterMark) (string, error) {
	if mark.NationalID != "" {
		var id string
		err := tx.QueryRow(`SELECT national_id FROM students WHERE national_id = $1`,
			mark.NationalID).Scan(&id)
		if err == sql.ErrNoRows {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return id, nil
	}

	if mark.FullName == "" {
		return "", nil
	}

	// Legacy full-name matching; collisions resolve to an arbitrary student.
	var id string
	err := tx.QueryRow(`SELECT national_id FROM students
						WHERE first_name || ' ' || last_name = $1
						LIMIT 1`, mark.FullName).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// GetDailyLog returns the recorded content and marks for one (logbook, date),
// or nil when nothing was recorded for that date.
func GetDailyLog(db *sql.DB, logbookID string, date time.Time) (*models.DailyLogView, error) {
	week, _, _ := WeekBounds(date)

	weekly := &models.WeeklyContent{}
	err := db.QueryRow(`SELECT id, logbook_id, week_number, week_start, week_end, created_at
						FROM weekly_contents WHERE logbook_id = $1 AND week_number = $2`,
		logbookID, week).Scan(
		&weekly.ID, &weekly.LogbookID, &weekly.WeekNumber,
		&weekly.WeekStart, &weekly.WeekEnd, &weekly.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	daily := &models.DailyContent{}
	err = db.QueryRow(`SELECT id, weekly_content_id, entry_date, content, hours, created_at, updated_at
					   FROM daily_contents WHERE weekly_content_id = $1 AND entry_date = $2`,
		weekly.ID, date).Scan(
		&daily.ID, &daily.WeeklyContentID, &daily.EntryDate,
		&daily.Content, &daily.Hours, &daily.CreatedAt, &daily.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	marks, err := getMarksByDailyContent(db, daily.ID)
	if err != nil {
		return nil, err
	}

	return &models.DailyLogView{Weekly: weekly, Daily: daily, Marks: marks}, nil
}

func getMarksByDailyContent(db *sql.DB, dailyContentID string) ([]*models.AttendanceMark, error) {
	query := `SELECT m.id, m.daily_content_id, m.student_national_id, m.state, m.marked_by,
			  m.created_at, m.updated_at, s.first_name, s.last_name
			  FROM attendance_marks m
			  JOIN students s ON s.national_id = m.student_national_id
			  WHERE m.daily_content_id = $1
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query, dailyContentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.AttendanceMark
	for rows.Next() {
		mark := &models.AttendanceMark{}
		var firstName, lastName string
		err := rows.Scan(
			&mark.ID, &mark.DailyContentID, &mark.StudentNationalID, &mark.State,
			&mark.MarkedBy, &mark.CreatedAt, &mark.UpdatedAt, &firstName, &lastName,
		)
		if err != nil {
			continue
		}
		mark.Student = &models.Student{
			NationalID: mark.StudentNationalID,
			FirstName:  firstName,
			LastName:   lastName,
		}
		marks = append(marks, mark)
	}

	if marks == nil {
		marks = []*models.AttendanceMark{}
	}
	return marks, nil
}

// GetWeeklyContents lists the recorded weeks of a logbook, newest first.
func GetWeeklyContents(db *sql.DB, logbookID string) ([]*models.WeeklyContent, error) {
	query := `SELECT id, logbook_id, week_number, week_start, week_end, created_at
			  FROM weekly_contents
			  WHERE logbook_id = $1
			  ORDER BY week_start DESC`

	rows, err := db.Query(query, logbookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []*models.WeeklyContent
	for rows.Next() {
		weekly := &models.WeeklyContent{}
		err := rows.Scan(
			&weekly.ID, &weekly.LogbookID, &weekly.WeekNumber,
			&weekly.WeekStart, &weekly.WeekEnd, &weekly.CreatedAt,
		)
		if err != nil {
			continue
		}
		weeks = append(weeks, weekly)
	}

	if weeks == nil {
		weeks = []*models.WeeklyContent{}
	}
	return weeks, nil
}
