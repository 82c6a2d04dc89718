/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrConnectionFailed is returned when a target cannot be reached
	ErrConnectionFailed = errors.New("connection failed")

	// ErrThrottled is returned when a target rejects an operation due to throughput limits
	ErrThrottled = errors.New("request throttled")

	// ErrUnsupported is returned when an operation is not supported by a driver
	ErrUnsupported = errors.New("operation not supported")

	// ErrInvalidConfig is returned when configuration validation fails
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Target string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record with key %q not found on target %q", e.Key, e.Target)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConnectionError represents a failure to reach a benchmark target
type ConnectionError struct {
	Target string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to target %q: %v", e.Target, e.Cause)
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// ThrottledError represents a throughput rejection from a target
type ThrottledError struct {
	Target    string
	Operation string
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("target %q throttled %s operation", e.Target, e.Operation)
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}

// UnsupportedError represents an operation a driver cannot perform
type UnsupportedError struct {
	Driver    string
	Operation string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("driver %q does not support %s", e.Driver, e.Operation)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(target, key string) error {
	return &NotFoundError{Target: target, Key: key}
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(target string, cause error) error {
	return &ConnectionError{Target: target, Cause: cause}
}

// NewThrottledError creates a new ThrottledError
func NewThrottledError(target, operation string) error {
	return &ThrottledError{Target: target, Operation: operation}
}

// NewUnsupportedError creates a new UnsupportedError
func NewUnsupportedError(driver, operation string) error {
	return &UnsupportedError{Driver: driver, Operation: operation}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnectionFailed checks if an error is a connection error
func IsConnectionFailed(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}

// IsThrottled checks if an error is a throttling error
func IsThrottled(err error) bool {
	return errors.Is(err, ErrThrottled)
}

// IsUnsupported checks if an error is an unsupported-operation error
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsInvalidConfig checks if an error is a configuration error
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
