package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository]. Reads join the owning user's public columns so that
// course responses can embed the owner without a second query; the
// password hash column is never part of the select list.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse persists a new course and returns it with server-assigned
// fields (CourseID, CreatedAt) populated.
//
// Error handling:
//   - not_null_violation / check_violation → [*validators.ValidationError]
//     with the column-appropriate message.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCourse, course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Str("pg_code", postgresError(err)).Msg("error: course insert failed")
		return models.Course{}, r.classifyWriteError(err)
	}

	if err := row.Scan(&course.CourseID, &course.Title, &course.Description, &course.EstimatedTime, &course.MaterialsNeeded, &course.UserID, &course.CreatedAt); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: scanning error")
		return models.Course{}, r.classifyWriteError(err)
	}

	return course, nil
}

// FindCourseByID retrieves one course joined with the public fields of its
// owner. Returns [ErrCourseNotFound] when no row matches.
func (r *courseRepository) FindCourseByID(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCourseQuery(courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error building sql query")
		return models.Course{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	course, err := scanCourseWithOwner(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error: scanning error")
		return models.Course{}, err
	}

	return course, nil
}

// ListCourses returns every course joined with its owner's public fields,
// ordered by course id.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error building sql query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error executing sql query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourseWithOwner(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error: scanning error")
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return courses, nil
}

// UpdateCourse applies the non-nil fields of update to an existing course.
// The dynamically built UPDATE always touches updated_at, so an empty patch
// is still a valid statement. Returns [ErrCourseNotFound] when no row was
// affected.
func (r *courseRepository) UpdateCourse(ctx context.Context, courseID int64, update models.CourseUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(courseID, update)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error building sql query")
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Str("pg_code", postgresError(err)).Msg("error: course update failed")
		return r.classifyWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course row. Returns [ErrCourseNotFound] when no
// row was affected.
func (r *courseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCourse, courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error: course delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// classifyWriteError converts a driver-level write error into the matching
// domain failure, mirroring the user repository's classification.
func (r *courseRepository) classifyWriteError(err error) error {
	switch r.db.classifier.Classify(err) {
	case UniquenessConflict:
		return fmt.Errorf("unexpected uniqueness conflict: %w", err)
	case FieldValidation:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fieldValidationError(pgErr)
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

// scanCourseWithOwner scans one joined course+owner row in the column order
// of [courseWithOwnerColumns].
func scanCourseWithOwner(scan func(dest ...any) error) (models.Course, error) {
	var course models.Course
	var owner models.UserPublic

	err := scan(
		&course.CourseID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&owner.UserID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.Owner = &owner
	return course, nil
}
