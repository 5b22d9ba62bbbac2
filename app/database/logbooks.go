package database

import (
	"database/sql"
	"nautical-institute/app/models"
)

func GetLogbooksByFolder(db *sql.DB, folderID string) ([]*models.Logbook, error) {
	query := `SELECT id, folder_id, subject, instructor, resolution_number, total_hours, status, created_at, updated_at
			  FROM logbooks
			  WHERE folder_id = $1
			  ORDER BY subject`

	rows, err := db.Query(query, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logbooks []*models.Logbook
	for rows.Next() {
		logbook := &models.Logbook{}
		err := rows.Scan(
			&logbook.ID, &logbook.FolderID, &logbook.Subject, &logbook.Instructor,
			&logbook.ResolutionNumber, &logbook.TotalHours, &logbook.Status,
			&logbook.CreatedAt, &logbook.UpdatedAt,
		)
		if err != nil {
			continue
		}
		logbooks = append(logbooks, logbook)
	}

	if logbooks == nil {
		logbooks = []*models.Logbook{}
	}
	return logbooks, nil
}

func GetLogbookByID(db *sql.DB, logbookID string) (*models.Logbook, error) {
	logbook := &models.Logbook{}
	query := `SELECT id, folder_id, subject, instructor, resolution_number, total_hours, status, created_at, updated_at
			  FROM logbooks WHERE id = $1`

	err := db.QueryRow(query, logbookID).Scan(
		&logbook.ID, &logbook.FolderID, &logbook.Subject, &logbook.Instructor,
		&logbook.ResolutionNumber, &logbook.TotalHours, &logbook.Status,
		&logbook.CreatedAt, &logbook.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return logbook, nil
}

func CreateLogbook(db *sql.DB, logbook *models.Logbook) error {
	query := `INSERT INTO logbooks (folder_id, subject, instructor, resolution_number, total_hours, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 'active', NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		logbook.FolderID, logbook.Subject, logbook.Instructor,
		logbook.ResolutionNumber, logbook.TotalHours,
	).Scan(&logbook.ID, &logbook.CreatedAt, &logbook.UpdatedAt)
	if err != nil {
		return err
	}
	logbook.Status = models.LogbookActive
	return nil
}

func UpdateLogbook(db *sql.DB, logbook *models.Logbook) error {
	query := `UPDATE logbooks
			  SET subject = $1, instructor = $2, resolution_number = $3, total_hours = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query,
		logbook.Subject, logbook.Instructor, logbook.ResolutionNumber,
		logbook.TotalHours, logbook.ID,
	)
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

// FinishLogbook marks the logbook finished. Daily logs can no longer be
// recorded against a finished logbook.
func FinishLogbook(db *sql.DB, logbookID string) error {
	result, err := db.Exec(`UPDATE logbooks SET status = 'finished', updated_at = NOW()
							WHERE id = $1 AND status = 'active'`, logbookID)
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
