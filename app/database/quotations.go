package database

import (
	"database/sql"
	"nautical-institute/app/models"
)

func GetAllQuotations(db *sql.DB) ([]*models.Quotation, error) {
	query := `SELECT q.id, q.number, q.customer, q.course_id, q.amount, q.status, q.issued_at,
			  q.created_at, q.updated_at, c.name, c.code
			  FROM quotations q
			  LEFT JOIN courses c ON q.course_id = c.id
			  ORDER BY q.number DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		quotation := &models.Quotation{}
		var courseName, courseCode *string
		err := rows.Scan(
			&quotation.ID, &quotation.Number, &quotation.Customer, &quotation.CourseID,
			&quotation.Amount, &quotation.Status, &quotation.IssuedAt,
			&quotation.CreatedAt, &quotation.UpdatedAt, &courseName, &courseCode,
		)
		if err != nil {
			continue
		}
		if courseName != nil && quotation.CourseID != nil {
			quotation.Course = &models.Course{
				ID:   *quotation.CourseID,
				Name: *courseName,
				Code: *courseCode,
			}
		}
		quotations = append(quotations, quotation)
	}

	if quotations == nil {
		quotations = []*models.Quotation{}
	}
	return quotations, nil
}

// CreateQuotation assigns the next quotation number and inserts the record in
// one transaction.
func CreateQuotation(db *sql.DB, quotation *models.Quotation) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`SELECT COALESCE(MAX(number), 0) + 1 FROM quotations`).Scan(&quotation.Number)
	if err != nil {
		return err
	}

	query := `INSERT INTO quotations (number, customer, course_id, amount, status, issued_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, 'draft', CURRENT_DATE, NOW(), NOW())
			  RETURNING id, issued_at, created_at, updated_at`

	err = tx.QueryRow(query, quotation.Number, quotation.Customer, quotation.CourseID, quotation.Amount).Scan(
		&quotation.ID, &quotation.IssuedAt, &quotation.CreatedAt, &quotation.UpdatedAt,
	)
	if err != nil {
		return err
	}
	quotation.Status = models.QuotationDraft

	return tx.Commit()
}

func UpdateQuotationStatus(db *sql.DB, quotationID string, status models.QuotationStatus) error {
	result, err := db.Exec(`UPDATE quotations SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, quotationID)
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
