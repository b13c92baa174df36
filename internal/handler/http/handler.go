package http

import (
	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
)

type Handler struct {
	services *service.Services

	// enableGlobalErrorLogging makes the error boundary log every error it
	// converts into a response, including 500s with their full cause chain.
	enableGlobalErrorLogging bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:                 services,
		enableGlobalErrorLogging: cfg.EnableGlobalErrorLogging,
		logger:                   logger,
	}
}
