package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-course-api/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/", h.greet)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.guard(h.createUser))
		r.Get("/courses", h.guard(h.listCourses))
		r.Get("/courses/{courseID}", h.guard(h.getCourse))
	})

	// routes behind basic authentication
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)
		r.Get("/users", h.guard(h.getCurrentUser))
		r.Post("/courses", h.guard(h.createCourse))
		r.Put("/courses/{courseID}", h.guard(h.updateCourse))
		r.Delete("/courses/{courseID}", h.guard(h.deleteCourse))
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, messageResponse{Message: msgRouteNotFound}, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// greet answers the API root with a welcome message.
func (h *Handler) greet(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, messageResponse{Message: msgGreeting}, http.StatusOK)
}
