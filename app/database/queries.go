package database

import (
	"database/sql"
	"fmt"
	"nautical-institute/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// CreateUser inserts a staff user and assigns the given roles in one transaction.
func CreateUser(db *sql.DB, user *models.User, roleNames ...string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query, user.Email, hashed, user.FirstName, user.LastName).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, name := range roleNames {
		_, err = tx.Exec(`INSERT INTO user_roles (user_id, role_id)
						  SELECT $1, id FROM roles WHERE name = $2
						  ON CONFLICT (user_id, role_id) DO NOTHING`, user.ID, name)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func UpdateUserPassword(db *sql.DB, userID, newPassword string) error {
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashed, userID)
	return err
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT national_id, first_name, last_name, is_active, created_at, updated_at
			  FROM students
			  WHERE is_active = true
			  ORDER BY last_name, first_name`

	rows, err := db.Query(query)
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
			continue
		}
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func GetStudentByNationalID(db *sql.DB, nationalID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT national_id, first_name, last_name, is_active, created_at, updated_at
			  FROM students WHERE national_id = $1`

	err := db.QueryRow(query, nationalID).Scan(
		&student.NationalID, &student.FirstName, &student.LastName,
		&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (national_id, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, true, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, student.NationalID, student.FirstName, student.LastName).Scan(
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create student %s: %w", student.NationalID, err)
	}
	student.IsActive = true
	return nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, is_active = $3, updated_at = NOW()
			  WHERE national_id = $4`

	result, err := db.Exec(query, student.FirstName, student.LastName, student.IsActive, student.NationalID)
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

func GetAllCourses(db *sql.DB) ([]*models.Course, error) {
	query := `SELECT id, name, code, duration_hours, is_active, created_at, updated_at
			  FROM courses
			  WHERE is_active = true
			  ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(
			&course.ID, &course.Name, &course.Code, &course.DurationHours,
			&course.IsActive, &course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			continue
		}
		courses = append(courses, course)
	}

	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	course := &models.Course{}
	query := `SELECT id, name, code, duration_hours, is_active, created_at, updated_at
			  FROM courses WHERE id = $1`

	err := db.QueryRow(query, courseID).Scan(
		&course.ID, &course.Name, &course.Code, &course.DurationHours,
		&course.IsActive, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func CreateCourse(db *sql.DB, course *models.Course) error {
	query := `INSERT INTO courses (name, code, duration_hours, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, course.Name, course.Code, course.DurationHours).Scan(
		&course.ID, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return err
	}
	course.IsActive = true
	return nil
}
