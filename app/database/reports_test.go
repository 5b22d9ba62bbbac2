package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{name: "three of four", present: 3, total: 4, want: 75.0},
		{name: "no marks", present: 0, total: 0, want: 0},
		{name: "always absent", present: 0, total: 5, want: 0},
		{name: "always present", present: 4, total: 4, want: 100},
		{name: "one third rounds down", present: 1, total: 3, want: 33.3},
		{name: "two thirds rounds up", present: 2, total: 3, want: 66.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendancePercentage(tt.present, tt.total); got != tt.want {
				t.Errorf("AttendancePercentage(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestGetLogbookAttendanceSummary(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM attendance_marks m`)).
		WithArgs("lb-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"national_id", "first_name", "last_name", "days_present", "days_total",
		}).
			AddRow("28555111", "Ana", "Alvarez", 3, 4).
			AddRow("30111222", "Bruno", "Beltran", 4, 4))

	summaries, err := GetLogbookAttendanceSummary(db, "lb-1")
	if err != nil {
		t.Fatalf("GetLogbookAttendanceSummary() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].Percentage != 75.0 {
		t.Errorf("Percentage = %v, want 75.0", summaries[0].Percentage)
	}
	if summaries[1].Percentage != 100.0 {
		t.Errorf("Percentage = %v, want 100.0", summaries[1].Percentage)
	}
}

func TestGetLogbookAttendanceSummary_NoMarks(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM attendance_marks m`)).
		WithArgs("lb-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"national_id", "first_name", "last_name", "days_present", "days_total",
		}))

	summaries, err := GetLogbookAttendanceSummary(db, "lb-1")
	if err != nil {
		t.Fatalf("GetLogbookAttendanceSummary() error = %v", err)
	}
	if summaries == nil || len(summaries) != 0 {
		t.Errorf("summaries = %v, want empty slice", summaries)
	}
}
