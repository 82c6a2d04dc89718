/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("mongodb", "37077")

	// Test error message
	expected := `record with key "37077" not found on target "mongodb"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionError("astra", cause)

	expected := `failed to connect to target "astra": dial tcp: connection refused`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrConnectionFailed) {
		t.Error("ConnectionError should match ErrConnectionFailed")
	}

	if !IsConnectionFailed(err) {
		t.Error("IsConnectionFailed should return true for ConnectionError")
	}

	// Wrapped cause stays reachable
	if !errors.Is(err, cause) {
		t.Error("ConnectionError should unwrap to its cause")
	}
}

func TestThrottledError(t *testing.T) {
	err := NewThrottledError("dynamodb", "BatchWriteItem")

	expected := `target "dynamodb" throttled BatchWriteItem operation`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsThrottled(err) {
		t.Error("IsThrottled should return true for ThrottledError")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupportedError("dynamodb", "update by filter")

	expected := `driver "dynamodb" does not support update by filter`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsUnsupported(err) {
		t.Error("IsUnsupported should return true for UnsupportedError")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "targets",
			message:  "at least one target required",
			expected: `invalid configuration for field "targets": at least one target required`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "plan file is empty",
			expected: "invalid configuration: plan file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("ConfigError should match ErrInvalidConfig")
			}
			if !IsInvalidConfig(err) {
				t.Error("IsInvalidConfig should return true for ConfigError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	inner := NewThrottledError("dynamodb", "PutItem")
	wrapped := fmt.Errorf("insert phase: %w", inner)

	if !IsThrottled(wrapped) {
		t.Error("IsThrottled should see through fmt.Errorf wrapping")
	}
	if IsNotFound(wrapped) {
		t.Error("IsNotFound should not match a throttling error")
	}
}
