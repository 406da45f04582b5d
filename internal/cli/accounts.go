package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/security"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

const (
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	temporaryPasswordAttempts = 16
)

type AccountService interface {
	FindByEmail(email string) (models.User, error)
	SetPassword(userID uint, password string, mustChange bool) error
	CreateAdmin(email string, name string, password string) (models.User, error)
}

// RunResetPasswordCommand replaces the user's password with a temporary one
// that must be changed after the next login.
func RunResetPasswordCommand(accounts AccountService, out io.Writer, email string) error {
	user, err := accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	if err := accounts.SetPassword(user.ID, temporaryPassword, true); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintf(out, "Password reset for %s\n", user.Email)
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "The user must change it on next login.")
	return nil
}

// RunCreateAdminCommand creates an admin or promotes an existing account.
// An empty password is read from stdin.
func RunCreateAdminCommand(accounts AccountService, stdin *os.File, out io.Writer, email string, name string, password string) error {
	if password == "" {
		prompted, err := promptNewPassword(out, stdin)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = prompted
	}

	user, err := accounts.CreateAdmin(email, name, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return errors.New("password must have at least 8 characters with letters and digits")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return fmt.Errorf("invalid email address %q", email)
		default:
			return fmt.Errorf("create admin: %w", err)
		}
	}

	fmt.Fprintf(out, "Admin ready: %s (id %d)\n", user.Email, user.ID)
	return nil
}

// generateTemporaryPassword returns a password that also satisfies the
// regular password policy.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	for attempt := 0; attempt < temporaryPasswordAttempts; attempt++ {
		candidate, err := security.RandomString(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if services.ValidatePasswordStrength(candidate) == nil {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a compliant password")
}
