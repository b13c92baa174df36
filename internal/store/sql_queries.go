package store

import (
	"github.com/MKhiriev/go-course-api/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email_address, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email_address, password_hash, created_at
    FROM users
    WHERE email_address = $1;`

	createCourse = `INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING course_id, title, description, estimated_time, materials_needed, user_id, created_at;`

	deleteCourse = `DELETE FROM courses
    WHERE course_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// courseWithOwnerColumns are the columns selected by every course read:
// the course row plus the owner's public fields only. The password hash is
// never selected.
var courseWithOwnerColumns = []string{
	"c.course_id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"u.user_id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

// buildListCoursesQuery builds the SELECT returning all courses joined with
// their owners, ordered by course id for deterministic listings.
func buildListCoursesQuery() (string, []any, error) {
	return psql.
		Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		OrderBy("c.course_id").
		ToSql()
}

// buildFindCourseQuery builds the SELECT returning a single course joined
// with its owner.
func buildFindCourseQuery(courseID int64) (string, []any, error) {
	return psql.
		Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.course_id": courseID}).
		ToSql()
}

// buildUpdateCourseQuery builds an UPDATE containing one SET clause per
// non-nil field of update. The updated_at column is always touched, so the
// statement stays valid for an empty patch. The owner column is never part
// of the SET list; ownership is immutable.
func buildUpdateCourseQuery(courseID int64, update models.CourseUpdate) (string, []any, error) {
	builder := psql.
		Update("courses").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.EstimatedTime != nil {
		builder = builder.Set("estimated_time", *update.EstimatedTime)
	}
	if update.MaterialsNeeded != nil {
		builder = builder.Set("materials_needed", *update.MaterialsNeeded)
	}

	return builder.Where(sq.Eq{"course_id": courseID}).ToSql()
}
