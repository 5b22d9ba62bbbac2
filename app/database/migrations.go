package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema idempotently. The unique indexes on the
// natural keys (logbook+week, weekly+date, daily+student) are the correctness
// backstop for the upsert paths in logbook_entries.go.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,

		`INSERT INTO roles (name) VALUES ('admin'), ('secretary'), ('instructor')
		 ON CONFLICT (name) DO NOTHING`,

		`CREATE TABLE IF NOT EXISTS students (
			national_id VARCHAR(20) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(50) NOT NULL UNIQUE,
			duration_hours NUMERIC(7,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS class_folders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			acta_number INTEGER NOT NULL,
			course_id UUID NOT NULL REFERENCES courses(id),
			start_date DATE NOT NULL,
			end_date DATE,
			status VARCHAR(10) NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_national_id VARCHAR(20) NOT NULL REFERENCES students(national_id),
			acta_number INTEGER NOT NULL,
			year INTEGER NOT NULL,
			course_id UUID NOT NULL REFERENCES courses(id),
			enrolled_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_national_id, acta_number, year, course_id)
		)`,

		`CREATE TABLE IF NOT EXISTS logbooks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			folder_id UUID NOT NULL REFERENCES class_folders(id),
			subject VARCHAR(255) NOT NULL,
			instructor VARCHAR(255) NOT NULL,
			resolution_number VARCHAR(100) NOT NULL DEFAULT '',
			total_hours NUMERIC(7,2) NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_contents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			logbook_id UUID NOT NULL REFERENCES logbooks(id),
			week_number INTEGER NOT NULL,
			week_start DATE NOT NULL,
			week_end DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (logbook_id, week_number)
		)`,

		`CREATE TABLE IF NOT EXISTS daily_contents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			weekly_content_id UUID NOT NULL REFERENCES weekly_contents(id),
			entry_date DATE NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			hours NUMERIC(5,2) NOT NULL DEFAULT 0 CHECK (hours >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (weekly_content_id, entry_date)
		)`,

		`CREATE TABLE IF NOT EXISTS attendance_marks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			daily_content_id UUID NOT NULL REFERENCES daily_contents(id),
			student_national_id VARCHAR(20) NOT NULL REFERENCES students(national_id),
			state VARCHAR(10) NOT NULL,
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (daily_content_id, student_national_id)
		)`,

		`CREATE TABLE IF NOT EXISTS quotations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			number INTEGER NOT NULL UNIQUE,
			customer VARCHAR(255) NOT NULL,
			course_id UUID REFERENCES courses(id),
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'draft',
			issued_at DATE NOT NULL DEFAULT CURRENT_DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_enrollments_cohort
			ON enrollments (acta_number, year, course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_logbooks_folder ON logbooks (folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_contents_date ON daily_contents (entry_date)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_marks_student
			ON attendance_marks (student_national_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
