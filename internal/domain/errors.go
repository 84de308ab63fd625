// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")

	// Company-related errors
	ErrCompanyNotFound          = errors.New("company not found")
	ErrUserAlreadyInCompany     = errors.New("user is already in another company")
	ErrUserAlreadyInThisCompany = errors.New("user is already in this company")
	ErrNotCompanyMember         = errors.New("user is not a member of this company")

	// Workspace-related errors
	ErrWorkspaceNotFound        = errors.New("workspace not found")
	ErrDuplicateWorkspaceMember = errors.New("user is already in this workspace")
	ErrNoWorkspaceMembers       = errors.New("workspace must have at least one member")

	// Survey-related errors
	ErrSurveyNotFound         = errors.New("survey not found")
	ErrSurveyTemplateNotFound = errors.New("survey template not found")
	ErrInvalidSurveyType      = errors.New("invalid survey type")
	ErrVersionConflict        = errors.New("document was updated concurrently")

	// Question-related errors
	ErrQuestionNotFound = errors.New("question not found")

	// Theme-related errors
	ErrThemeNotFound    = errors.New("theme not found")
	ErrInvalidThemeType = errors.New("invalid theme type")
)
