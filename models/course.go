package models

import "time"

// Course represents a course owned by exactly one user. The owner is set at
// creation time and is immutable afterwards; only the owner may update or
// delete the course.
type Course struct {
	// CourseID is the internal unique identifier of the course.
	CourseID int64 `json:"id"`

	// Title is the required display title of the course.
	Title string `json:"title"`

	// Description is the required long-form description of the course.
	Description string `json:"description"`

	// EstimatedTime is an optional free-form estimate of the course length
	// (e.g. "12 hours"). Nil when not provided.
	EstimatedTime *string `json:"estimatedTime"`

	// MaterialsNeeded is an optional free-form list of required materials.
	// Nil when not provided.
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID references the owning user. Set once at creation.
	UserID int64 `json:"userId"`

	// Owner holds the public fields of the owning user. Populated on reads
	// that join the users table; omitted from write payloads.
	Owner *UserPublic `json:"user,omitempty"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseUpdate describes a partial update of an existing course.
// Nil fields are left untouched; the owner reference cannot be changed.
type CourseUpdate struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
