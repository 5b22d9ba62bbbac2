package database

import (
	"database/sql"
	"nautical-institute/app/models"
)

// GetFolderRoster returns the distinct students eligible for attendance in a
// folder. Enrollments are matched on acta number, the year of the folder's
// start date and the course id: acta numbers repeat across years for the same
// course, so the year is part of the join key on purpose.
//
// An empty roster is not an error; content-only submissions are still valid.
func GetFolderRoster(db *sql.DB, folderID string) ([]*models.Student, error) {
	query := `SELECT DISTINCT s.national_id, s.first_name, s.last_name, s.is_active, s.created_at, s.updated_at
			  FROM class_folders f
			  JOIN enrollments e ON e.acta_number = f.acta_number
				  AND e.year = EXTRACT(YEAR FROM f.start_date)
				  AND e.course_id = f.course_id
			  JOIN students s ON s.national_id = e.student_national_id
			  WHERE f.id = $1 AND s.is_active = true
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.NationalID, &student.FirstName, &student.LastName,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}
