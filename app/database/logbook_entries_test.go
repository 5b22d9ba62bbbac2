package database

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"nautical-institute/app/models"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantWeek  int
		wantStart string
		wantEnd   string
	}{
		{name: "thursday mid-march", date: "2024-03-14", wantWeek: 11, wantStart: "2024-03-11", wantEnd: "2024-03-17"},
		{name: "monday is its own start", date: "2024-03-11", wantWeek: 11, wantStart: "2024-03-11", wantEnd: "2024-03-17"},
		{name: "sunday closes the week", date: "2024-03-17", wantWeek: 11, wantStart: "2024-03-11", wantEnd: "2024-03-17"},
		{name: "iso week across new year", date: "2025-01-01", wantWeek: 1, wantStart: "2024-12-30", wantEnd: "2025-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date: %v", err)
			}
			week, start, end := WeekBounds(date)
			if week != tt.wantWeek {
				t.Errorf("WeekBounds() week = %d, want %d", week, tt.wantWeek)
			}
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("WeekBounds() start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("WeekBounds() end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testInput(marks ...RosterMark) *DailyLogInput {
	date, _ := time.Parse("2006-01-02", "2024-03-14")
	return &DailyLogInput{
		LogbookID: "lb-1",
		Date:      date,
		Content:   "Navigation rules, buoyage systems",
		Hours:     4,
		Marks:     marks,
	}
}

func expectActiveLogbook(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM logbooks`)).
		WithArgs("lb-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
}

func TestRecordDailyLog_NegativeHoursRejectedBeforeDB(t *testing.T) {
	db, mock := newMockDB(t)

	input := testInput()
	input.Hours = -1

	_, err := RecordDailyLog(db, input)
	if !errors.Is(err, ErrNegativeHours) {
		t.Fatalf("RecordDailyLog() error = %v, want ErrNegativeHours", err)
	}
	// No database interaction may have happened.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database calls: %v", err)
	}
}

func TestRecordDailyLog_LogbookNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM logbooks`)).
		WithArgs("lb-1").
		WillReturnError(sql.ErrNoRows)

	_, err := RecordDailyLog(db, testInput())
	if !errors.Is(err, ErrLogbookNotFound) {
		t.Fatalf("RecordDailyLog() error = %v, want ErrLogbookNotFound", err)
	}
}

func TestRecordDailyLog_FinishedLogbookRejected(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM logbooks`)).
		WithArgs("lb-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("finished"))

	_, err := RecordDailyLog(db, testInput())
	if !errors.Is(err, ErrLogbookFinished) {
		t.Fatalf("RecordDailyLog() error = %v, want ErrLogbookFinished", err)
	}
}

func TestRecordDailyLog_FirstSubmissionCreatesWeekAndDay(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT national_id FROM students WHERE national_id`)).
		WithArgs("30111222").
		WillReturnRows(sqlmock.NewRows([]string{"national_id"}).AddRow("30111222"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attendance_marks`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput(
		RosterMark{NationalID: "30111222", State: models.Present},
	))
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.WeeklyContentID != "week-1" || result.DailyContentID != "day-1" {
		t.Errorf("RecordDailyLog() result = %+v", result)
	}
	if result.MarksSaved != 1 || result.MarksSkipped != 0 {
		t.Errorf("RecordDailyLog() marks saved/skipped = %d/%d, want 1/0",
			result.MarksSaved, result.MarksSkipped)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordDailyLog_ResubmissionReusesWeek(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	// The weekly row already exists; no insert may follow.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput())
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.WeeklyContentID != "week-1" {
		t.Errorf("WeeklyContentID = %s, want week-1", result.WeeklyContentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordDailyLog_WeeklyInsertRaceFallsBackToWinner(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO weekly_contents`)).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-raced"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput())
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.WeeklyContentID != "week-raced" {
		t.Errorf("WeeklyContentID = %s, want week-raced", result.WeeklyContentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordDailyLog_UnmatchedFullNameIsSkipped(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT national_id FROM students`)).
		WithArgs("Nobody Known").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput(
		RosterMark{FullName: "Nobody Known", State: models.Absent},
	))
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.MarksSaved != 0 || result.MarksSkipped != 1 {
		t.Errorf("marks saved/skipped = %d/%d, want 0/1", result.MarksSaved, result.MarksSkipped)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordDailyLog_ResubmissionOverwritesMarkState(t *testing.T) {
	db, mock := newMockDB(t)

	// Week and day already exist; the mark upsert keys on (daily, student) so
	// the new state replaces the old one instead of adding a row.
	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT national_id FROM students WHERE national_id`)).
		WithArgs("30111222").
		WillReturnRows(sqlmock.NewRows([]string{"national_id"}).AddRow("30111222"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attendance_marks`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput(
		RosterMark{NationalID: "30111222", State: models.Absent},
	))
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.MarksSaved != 1 {
		t.Errorf("MarksSaved = %d, want 1", result.MarksSaved)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordDailyLog_ContentOnlySubmissionSucceeds(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectCommit()

	result, err := RecordDailyLog(db, testInput())
	if err != nil {
		t.Fatalf("RecordDailyLog() error = %v", err)
	}
	if result.MarksSaved != 0 || result.MarksSkipped != 0 {
		t.Errorf("marks saved/skipped = %d/%d, want 0/0", result.MarksSaved, result.MarksSkipped)
	}
}

func TestRecordDailyLog_RollsBackOnMarkFailure(t *testing.T) {
	db, mock := newMockDB(t)

	expectActiveLogbook(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT national_id FROM students WHERE national_id`)).
		WithArgs("30111222").
		WillReturnRows(sqlmock.NewRows([]string{"national_id"}).AddRow("30111222"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attendance_marks`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := RecordDailyLog(db, testInput(
		RosterMark{NationalID: "30111222", State: models.Present},
	))
	if err == nil {
		t.Fatal("RecordDailyLog() expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
