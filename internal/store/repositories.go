package store

import "github.com/MKhiriev/go-course-api/internal/logger"

// Repositories bundles every repository implementation behind one
// constructor so the composition root wires persistence in a single call.
type Repositories struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewRepositories constructs all repositories on top of the shared
// database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		CourseRepository: NewCourseRepository(db, logger),
	}
}
