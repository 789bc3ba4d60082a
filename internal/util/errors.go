package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrProgressNotFound    = errors.New("progress report not found")
	ErrEvidenceNotFound    = errors.New("evidence not found")
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrUnsupportedFileType = errors.New("file type not allowed")
	ErrNoData              = errors.New("no data to export")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrInvalidReportType   = errors.New("invalid report type")
)
