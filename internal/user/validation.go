package user

import (
	"fmt"

	"github.com/itemsim/server/internal/domain"
)

const (
	loginIDMinLength  = 5
	loginIDMaxLength  = 20
	passwordMinLength = 6
)

// validateLoginID enforces the sign-up ID format: 5-20 characters, lowercase
// letters and digits only, with at least one letter and one digit.
func validateLoginID(id string) error {
	if len(id) < loginIDMinLength || len(id) > loginIDMaxLength {
		return fmt.Errorf("login ID must be %d-%d characters: %w",
			loginIDMinLength, loginIDMaxLength, domain.ErrInvalidInput)
	}

	var hasLetter, hasDigit bool
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return fmt.Errorf("login ID must contain only lowercase letters and digits: %w",
				domain.ErrInvalidInput)
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("login ID must contain at least one letter and one digit: %w",
			domain.ErrInvalidInput)
	}
	return nil
}

func validatePassword(password, passwordCheck string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters: %w",
			passwordMinLength, domain.ErrInvalidInput)
	}
	if password != passwordCheck {
		return fmt.Errorf("password confirmation does not match: %w", domain.ErrInvalidInput)
	}
	return nil
}
