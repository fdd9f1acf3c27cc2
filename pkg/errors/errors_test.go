package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRegion, "region %q is not hexadecimal", "zz")

	if err.Code != ErrCodeInvalidRegion {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRegion)
	}

	if err.Message != `region "zz" is not hexadecimal` {
		t.Errorf("Message = %v, want %v", err.Message, `region "zz" is not hexadecimal`)
	}

	expected := `INVALID_REGION: region "zz" is not hexadecimal`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeFileNotFound, cause, "open forest.json")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "FILE_NOT_FOUND: open forest.json: no such file or directory"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidNode, "test"),
			code:     ErrCodeInvalidNode,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidNode, "test"),
			code:     ErrCodeInvalidRegion,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidNode, New(ErrCodeInvalidRegion, "inner"), "outer"),
			code:     ErrCodeInvalidNode,
			expected: true,
		},
		{
			name:     "nested cause",
			err:      wrapf(New(ErrCodeUnknownID, "u9")),
			code:     ErrCodeUnknownID,
			expected: true,
		},
		{
			name:     "inner code through fmt wrapping",
			err:      fmt.Errorf("parse forest: %w", Wrap(ErrCodeInternal, New(ErrCodeInvalidForest, "bad"), "read")),
			code:     ErrCodeInvalidForest,
			expected: true,
		},
		{
			name:     "code absent from chain",
			err:      wrapf(New(ErrCodeUnknownID, "u9")),
			code:     ErrCodeInvalidNode,
			expected: false,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidForest, "test"), ErrCodeInvalidForest},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func wrapf(err error) error {
	return &Error{Code: ErrCodeInternal, Message: "outer", Cause: err}
}
