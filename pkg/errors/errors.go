// Package errors provides custom error types for merakiaddr.
// These errors enable programmatic error checking (credential problems,
// directory failures, incomplete configuration) and clear diagnostics
// at the command line.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are the standard library functions, re-exported so callers
// need only this package.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrAPIKeyInvalid indicates that the provided API key was rejected
	ErrAPIKeyInvalid = errors.New("API key invalid")

	// ErrServiceUnavailable indicates that the Dashboard API is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrDirectory indicates a failed lookup or update against the device directory
	ErrDirectory = errors.New("directory error")

	// ErrConfigIncomplete indicates that a required identifier is missing from the configuration
	ErrConfigIncomplete = errors.New("configuration incomplete")

	// ErrPromptClosed indicates that operator input ended before an answer was given
	ErrPromptClosed = errors.New("prompt input closed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success response from the Dashboard API.
// Errors holds the entries of the {"errors": [...]} body when present.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	Errors     []string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message
	if len(e.Errors) > 0 {
		msg = strings.Join(e.Errors, "; ")
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Service, e.StatusCode, msg)
	}
	return fmt.Sprintf("API error from %s: %s", e.Service, msg)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusTooManyRequests:
		return target == ErrRateLimited
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return target == ErrAPIKeyInvalid
	case e.StatusCode == http.StatusNotFound:
		return target == ErrNotFound
	case e.StatusCode >= 500:
		return target == ErrServiceUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(service string, statusCode int, message string) *APIError {
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Message:    message,
	}
}

// DirectoryError represents a failed lookup or update against the device
// directory. It is terminal for a reconcile run.
type DirectoryError struct {
	Operation string // "list", "get", "update"
	Resource  string // "organizations", "networks", "devices", "device"
	ID        string
	Err       error
}

// Error implements the error interface
func (e *DirectoryError) Error() string {
	msg := "unknown error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.ID != "" {
		return fmt.Sprintf("directory: failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, msg)
	}
	return fmt.Sprintf("directory: failed to %s %s: %s", e.Operation, e.Resource, msg)
}

// Unwrap implements errors.Unwrap
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DirectoryError) Is(target error) bool {
	return target == ErrDirectory
}

// Details returns the error messages reported by the API, or the
// underlying error text when the API gave none.
func (e *DirectoryError) Details() []string {
	var apiErr *APIError
	if errors.As(e.Err, &apiErr) && len(apiErr.Errors) > 0 {
		return apiErr.Errors
	}
	if e.Err != nil {
		return []string{e.Err.Error()}
	}
	return nil
}

// NewDirectoryError creates a new DirectoryError
func NewDirectoryError(operation, resource, id string, err error) *DirectoryError {
	return &DirectoryError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ConfigIncompleteError is returned after the available choices for a
// missing identifier have been listed. It is a guided exit, not a failure
// of the directory.
type ConfigIncompleteError struct {
	Field string // "organization ID", "network ID"
	Hint  string // how to supply the value
}

// Error implements the error interface
func (e *ConfigIncompleteError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s is not configured: %s", e.Field, e.Hint)
	}
	return fmt.Sprintf("%s is not configured", e.Field)
}

// Is implements errors.Is support
func (e *ConfigIncompleteError) Is(target error) bool {
	return target == ErrConfigIncomplete
}

// AuthenticationError represents a missing or rejected API credential
type AuthenticationError struct {
	Service string
	Method  string // "api_key", "bearer"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("authentication error for %s (%s): %s", e.Service, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAPIKeyRequired || target == ErrAPIKeyInvalid
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(service, method, message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Service: service,
		Method:  method,
		Message: message,
		Err:     err,
	}
}

// ParseError represents a decoding failure
type ParseError struct {
	Format  string // "json", "yaml", "link"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("failed to parse %s from %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an I/O failure
type IOError struct {
	Operation string
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s on %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during local resource operations
type ResourceError struct {
	Operation string
	Resource  string
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAPIKeyError checks if an error is a missing or rejected credential
func IsAPIKeyError(err error) bool {
	return errors.Is(err, ErrAPIKeyRequired) || errors.Is(err, ErrAPIKeyInvalid)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsDirectoryError checks if an error came from the device directory
func IsDirectoryError(err error) bool {
	return errors.Is(err, ErrDirectory)
}

// IsConfigIncomplete checks if an error is the guided missing-identifier exit
func IsConfigIncomplete(err error) bool {
	return errors.Is(err, ErrConfigIncomplete)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapDirectory wraps an error as a DirectoryError. Errors that are
// already directory errors are returned unchanged.
func WrapDirectory(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return err
	}
	return NewDirectoryError(operation, resource, id, err)
}
