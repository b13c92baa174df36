package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/models"
)

// courseService is the concrete implementation of CourseService. It owns
// the ownership invariant; repositories only execute what the service has
// already authorized.
type courseService struct {
	courseRepository store.CourseRepository
	logger           *logger.Logger
}

// NewCourseService constructs a CourseService wired to the given
// CourseRepository.
func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

// ListCourses returns all courses with their owners' public fields.
func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("course listing failed: %w", err)
	}

	return courses, nil
}

// GetCourse returns one course with its owner's public fields.
func (c *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	course, err := c.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return models.Course{}, fmt.Errorf("course lookup failed: %w", err)
	}

	return course, nil
}

// CreateCourse persists a new course with the principal as its immutable
// owner. Whatever owner id the payload carried is overwritten. A principal
// without a persisted id cannot own a course and is rejected before any
// repository call.
func (c *courseService) CreateCourse(ctx context.Context, principal models.User, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if principal.UserID == 0 {
		log.Error().Msg("course creation rejected: principal has no id")
		return models.Course{}, fmt.Errorf("course owner is not set: %w", ErrInvalidDataProvided)
	}

	course.UserID = principal.UserID
	course.Owner = nil

	createdCourse, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Int64("owner", principal.UserID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return createdCourse, nil
}

// UpdateCourse applies a partial update after the existence-then-ownership
// check of [c.authorizeMutation].
func (c *courseService) UpdateCourse(ctx context.Context, principal models.User, courseID int64, update models.CourseUpdate) error {
	if err := c.authorizeMutation(ctx, principal, courseID); err != nil {
		return err
	}

	if err := c.courseRepository.UpdateCourse(ctx, courseID, update); err != nil {
		return fmt.Errorf("course update failed: %w", err)
	}

	return nil
}

// DeleteCourse removes a course after the existence-then-ownership check of
// [c.authorizeMutation].
func (c *courseService) DeleteCourse(ctx context.Context, principal models.User, courseID int64) error {
	if err := c.authorizeMutation(ctx, principal, courseID); err != nil {
		return err
	}

	if err := c.courseRepository.DeleteCourse(ctx, courseID); err != nil {
		return fmt.Errorf("course deletion failed: %w", err)
	}

	return nil
}

// authorizeMutation loads the target course and enforces the ownership
// invariant. Existence is confirmed strictly before ownership is compared,
// so probing a nonexistent id always reads as not-found, never as forbidden.
func (c *courseService) authorizeMutation(ctx context.Context, principal models.User, courseID int64) error {
	log := logger.FromContext(ctx)

	course, err := c.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("course lookup failed: %w", err)
	}

	if course.UserID != principal.UserID {
		log.Warn().
			Int64("course_id", courseID).
			Int64("owner", course.UserID).
			Int64("principal", principal.UserID).
			Msg("mutation denied: principal is not the owner")
		return ErrNotCourseOwner
	}

	return nil
}
