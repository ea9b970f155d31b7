package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeConfig represents configuration errors, including malformed
	// seed data structure. These are fatal at startup.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeSeed represents seed data loading errors
	ErrorTypeSeed ErrorType = "seed"
	// ErrorTypeMirror represents Neo4j mirror errors. These never propagate
	// to core read paths.
	ErrorTypeMirror ErrorType = "mirror"
	// ErrorTypeLLM represents answer-generation errors
	ErrorTypeLLM ErrorType = "llm"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Seed data errors

// ErrSeedStructure is returned when the seed document is missing a required
// top-level key
type ErrSeedStructure struct {
	*BaseError
	Key string
}

func NewSeedStructure(key string) *ErrSeedStructure {
	return &ErrSeedStructure{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("seed data missing required key: %s", key), nil),
		Key:       key,
	}
}

// ErrSeedLoad is returned when the seed document cannot be read or decoded
type ErrSeedLoad struct {
	*BaseError
	Path string
}

func NewSeedLoad(path string, err error) *ErrSeedLoad {
	return &ErrSeedLoad{
		BaseError: NewBaseError(ErrorTypeSeed, fmt.Sprintf("failed to load seed data from %s", path), err),
		Path:      path,
	}
}

// Mirror errors

// ErrMirrorUnavailable is returned when the Neo4j mirror is not configured
// or not reachable
var ErrMirrorUnavailable = NewBaseError(ErrorTypeMirror, "Neo4j mirror not available", nil)

// ErrMirrorSync is returned when a mirror sync fails partway through
type ErrMirrorSync struct {
	*BaseError
	Phase string
}

func NewMirrorSync(phase string, err error) *ErrMirrorSync {
	return &ErrMirrorSync{
		BaseError: NewBaseError(ErrorTypeMirror, fmt.Sprintf("mirror sync failed during %s", phase), err),
		Phase:     phase,
	}
}

// LLM errors

// ErrLLMUnavailable is returned when no LLM endpoint is configured
var ErrLLMUnavailable = NewBaseError(ErrorTypeLLM, "LLM not configured", nil)
