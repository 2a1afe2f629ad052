package domain

import "errors"

// Domain errors.
var (
	ErrServerError       = errors.New("server error: questions could not be fetched")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidQuestionID = errors.New("invalid question id")
	ErrConfigExists      = errors.New("config file already exists")
	ErrInvalidPageSize   = errors.New("page size must be between 1 and 100")
	ErrInvalidBaseURL    = errors.New("invalid api base url")
	ErrInvalidTimeout    = errors.New("api timeout must be positive")
	ErrNoConfigDir       = errors.New("global config directory not available")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrConfigNil         = errors.New("config is nil")
	ErrNoLogFile         = errors.New("no log file")
)
