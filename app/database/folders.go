package database

import (
	"database/sql"
	"fmt"
	"nautical-institute/app/models"
	"time"
)

func GetAllFolders(db *sql.DB) ([]*models.ClassFolder, error) {
	query := `SELECT f.id, f.acta_number, f.course_id, f.start_date, f.end_date, f.status,
			  f.created_at, f.updated_at, c.name, c.code
			  FROM class_folders f
			  LEFT JOIN courses c ON f.course_id = c.id
			  ORDER BY f.start_date DESC, f.acta_number DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []*models.ClassFolder
	for rows.Next() {
		folder := &models.ClassFolder{}
		var courseName, courseCode *string
		err := rows.Scan(
			&folder.ID, &folder.ActaNumber, &folder.CourseID, &folder.StartDate,
			&folder.EndDate, &folder.Status, &folder.CreatedAt, &folder.UpdatedAt,
			&courseName, &courseCode,
		)
		if err != nil {
			continue
		}
		if courseName != nil {
			folder.Course = &models.Course{
				ID:   folder.CourseID,
				Name: *courseName,
				Code: *courseCode,
			}
		}
		folders = append(folders, folder)
	}

	if folders == nil {
		folders = []*models.ClassFolder{}
	}
	return folders, nil
}

func GetFolderByID(db *sql.DB, folderID string) (*models.ClassFolder, error) {
	folder := &models.ClassFolder{}
	query := `SELECT id, acta_number, course_id, start_date, end_date, status, created_at, updated_at
			  FROM class_folders WHERE id = $1`

	err := db.QueryRow(query, folderID).Scan(
		&folder.ID, &folder.ActaNumber, &folder.CourseID, &folder.StartDate,
		&folder.EndDate, &folder.Status, &folder.CreatedAt, &folder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func CreateFolder(db *sql.DB, folder *models.ClassFolder) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// One open folder per (acta, course, year of start date)
	var existingID string
	err = tx.QueryRow(`SELECT id FROM class_folders
					   WHERE acta_number = $1 AND course_id = $2
					   AND EXTRACT(YEAR FROM start_date) = $3 AND status = 'open'
					   LIMIT 1`,
		folder.ActaNumber, folder.CourseID, folder.StartDate.Year()).Scan(&existingID)
	if err == nil {
		return fmt.Errorf("an open folder already exists for acta %d", folder.ActaNumber)
	}
	if err != sql.ErrNoRows {
		return err
	}

	query := `INSERT INTO class_folders (acta_number, course_id, start_date, end_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, 'open', NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query, folder.ActaNumber, folder.CourseID, folder.StartDate, folder.EndDate).Scan(
		&folder.ID, &folder.CreatedAt, &folder.UpdatedAt,
	)
	if err != nil {
		return err
	}
	folder.Status = models.FolderOpen

	return tx.Commit()
}

// CloseFolder marks the folder closed and stamps the end date if not set.
func CloseFolder(db *sql.DB, folderID string, endDate time.Time) error {
	query := `UPDATE class_folders
			  SET status = 'closed', end_date = COALESCE(end_date, $1), updated_at = NOW()
			  WHERE id = $2 AND status = 'open'`

	result, err := db.Exec(query, endDate, folderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateEnrollment records a student into a cohort. The student must exist.
func CreateEnrollment(db *sql.DB, enrollment *models.Enrollment) error {
	query := `INSERT INTO enrollments (student_national_id, acta_number, year, course_id, enrolled_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (student_national_id, acta_number, year, course_id) DO NOTHING
			  RETURNING id, enrolled_at`

	err := db.QueryRow(query,
		enrollment.StudentNationalID, enrollment.ActaNumber, enrollment.Year, enrollment.CourseID,
	).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err == sql.ErrNoRows {
		// Already enrolled; fetch the existing row's identity.
		return db.QueryRow(`SELECT id, enrolled_at FROM enrollments
							WHERE student_national_id = $1 AND acta_number = $2 AND year = $3 AND course_id = $4`,
			enrollment.StudentNationalID, enrollment.ActaNumber, enrollment.Year, enrollment.CourseID,
		).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	}
	return err
}
