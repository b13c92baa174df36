package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// listCourses returns every course with its owner's public fields.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		return fmt.Errorf("listing courses: %w", err)
	}

	utils.WriteJSON(w, courses, http.StatusOK)
	return nil
}

// getCourse returns one course with its owner's public fields. A miss — an
// unknown or non-numeric id — answers 400 with the fixed message.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) error {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, messageResponse{Message: msgCourseDoesNotExist}, http.StatusBadRequest)
		return nil
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	switch {
	case err == nil:
		utils.WriteJSON(w, course, http.StatusOK)
		return nil
	case errors.Is(err, store.ErrCourseNotFound):
		utils.WriteJSON(w, messageResponse{Message: msgCourseDoesNotExist}, http.StatusBadRequest)
		return nil
	default:
		return fmt.Errorf("fetching course %d: %w", courseID, err)
	}
}

// createCourse persists a new course owned by the authenticated user and
// answers 201 with a Location header pointing at the created resource.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var course models.Course
	if err := decodeBody(r, &course); err != nil {
		return err
	}

	if err := validators.CourseChain().Validate(validators.CourseFields(course)); err != nil {
		return err
	}

	principal, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		return &httpError{status: http.StatusUnauthorized, message: msgAccessFailed}
	}

	created, err := h.services.CourseService.CreateCourse(ctx, principal, course)
	if err != nil {
		return fmt.Errorf("creating course: %w", err)
	}

	log.Debug().Int64("id", created.CourseID).Msg("course created")

	w.Header().Set("Location", fmt.Sprintf("/courses/%d", created.CourseID))
	w.WriteHeader(http.StatusCreated)
	return nil
}

// updateCourse applies a full update to a course owned by the authenticated
// user. Existence is reported before ownership: a missing id is 404 even
// for a stranger.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, messageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return nil
	}

	var update models.CourseUpdate
	if err := decodeBody(r, &update); err != nil {
		return err
	}

	if err := validators.CourseChain().Validate(validators.CourseUpdateFields(update)); err != nil {
		return err
	}

	principal, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		return &httpError{status: http.StatusUnauthorized, message: msgAccessFailed}
	}

	err = h.services.CourseService.UpdateCourse(ctx, principal, courseID, update)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
		return nil
	case errors.Is(err, store.ErrCourseNotFound):
		utils.WriteJSON(w, messageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return nil
	case errors.Is(err, service.ErrNotCourseOwner):
		utils.WriteJSON(w, messageResponse{Message: msgEditForbidden}, http.StatusForbidden)
		return nil
	default:
		return fmt.Errorf("updating course %d: %w", courseID, err)
	}
}

// deleteCourse removes a course owned by the authenticated user, with the
// same existence-then-ownership reporting as updateCourse.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, messageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return nil
	}

	principal, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		return &httpError{status: http.StatusUnauthorized, message: msgAccessFailed}
	}

	err = h.services.CourseService.DeleteCourse(ctx, principal, courseID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
		return nil
	case errors.Is(err, store.ErrCourseNotFound):
		utils.WriteJSON(w, messageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return nil
	case errors.Is(err, service.ErrNotCourseOwner):
		utils.WriteJSON(w, messageResponse{Message: msgDeleteForbidden}, http.StatusForbidden)
		return nil
	default:
		return fmt.Errorf("deleting course %d: %w", courseID, err)
	}
}

// courseIDFromRequest extracts the numeric course id from the URL.
func courseIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
}
