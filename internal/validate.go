package internal

import "fmt"

type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	return e.Message + ": " + e.Details
}

// ValidateCode rejects oversized submissions before they reach the
// server. maxLength <= 0 disables the check.
func ValidateCode(code string, maxLength int) error {
	if maxLength > 0 && len(code) > maxLength {
		return &ValidationError{
			Message: "Code length exceeds maximum limit",
			Details: fmt.Sprintf("Max length allowed is %d", maxLength),
		}
	}
	return nil
}
