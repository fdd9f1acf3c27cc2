package errors

import "strings"

// ValidateInputPath validates a path given on the command line.
// It only rejects values that can never name a readable file.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "path contains a null byte")
	}

	return nil
}
