package service

import (
	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
)

type Services struct {
	AuthService   AuthService
	CourseService CourseService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, cfg.App, logger),
		CourseService: NewCourseService(repositories.CourseRepository, logger),
	}
}
