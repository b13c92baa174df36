package validators

import (
	"regexp"

	"github.com/MKhiriev/go-course-api/models"
)

// Payload field names used by the rule chains.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmailAddress    = "emailAddress"
	FieldPassword        = "password"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldEstimatedTime   = "estimatedTime"
	FieldMaterialsNeeded = "materialsNeeded"
)

// emailAddressShape is a deliberately permissive check: one "@" with at
// least one dot in the domain part. Real mailbox verification is out of
// scope; the rule only rejects values that obviously are not addresses.
var emailAddressShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserChain returns the validation chain for user registration payloads.
// Rule order fixes the order of messages in 400 responses.
func UserChain() Chain {
	return Chain{Rules: []Rule{
		{Field: FieldFirstName, Message: "First Name is required", Check: NotBlank},
		{Field: FieldLastName, Message: "Last Name is required", Check: NotBlank},
		{Field: FieldEmailAddress, Message: "Email address is required", Check: NotBlank},
		{Field: FieldEmailAddress, Message: "We need a valid email address", Check: emailAddressShape.MatchString, IsFormat: true},
		{Field: FieldPassword, Message: "Password is required", Check: NotBlank},
	}}
}

// CourseChain returns the validation chain for course create and update
// payloads.
func CourseChain() Chain {
	return Chain{Rules: []Rule{
		{Field: FieldTitle, Message: "Please provide a value for the title field", Check: NotBlank},
		{Field: FieldDescription, Message: "Please provide a value for the description input", Check: NotBlank},
	}}
}

// UserFields flattens a user registration payload into the field map
// consumed by [Chain.Validate].
func UserFields(user models.User) map[string]string {
	return map[string]string{
		FieldFirstName:    user.FirstName,
		FieldLastName:     user.LastName,
		FieldEmailAddress: user.EmailAddress,
		FieldPassword:     user.Password,
	}
}

// CourseFields flattens a course creation payload into the field map
// consumed by [Chain.Validate].
func CourseFields(course models.Course) map[string]string {
	return map[string]string{
		FieldTitle:       course.Title,
		FieldDescription: course.Description,
	}
}

// CourseUpdateFields flattens a partial course update into the field map
// consumed by [Chain.Validate]. Absent (nil) fields map to blank values so
// presence rules treat them the same as empty strings.
func CourseUpdateFields(update models.CourseUpdate) map[string]string {
	fields := make(map[string]string, 2)
	if update.Title != nil {
		fields[FieldTitle] = *update.Title
	}
	if update.Description != nil {
		fields[FieldDescription] = *update.Description
	}
	return fields
}
