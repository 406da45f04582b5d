package services

import (
	"errors"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserLookupFailed       = errors.New("user lookup failed")
	ErrUserCreateFailed       = errors.New("user create failed")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserInactive           = errors.New("user inactive")
	ErrPasswordUpdateFailed   = errors.New("password update failed")
)

type AuthUserRepository interface {
	CountUsers() (int64, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	UpdateRole(userID uint, role string) error
}

type AuthService struct {
	users AuthUserRepository
	now   func() time.Time
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

type RegistrationInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates a user. The first account on an empty database becomes admin.
func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrUserLookupFailed
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	usersCount, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, ErrUserLookupFailed
	}
	role := models.RoleUser
	if usersCount == 0 {
		role = models.RoleAdmin
	}

	return service.createUser(email, password, NormalizeDisplayName(input.Name), role, false)
}

// CreateAdmin creates an admin account or promotes an existing one.
func (service *AuthService) CreateAdmin(emailRaw string, name string, password string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	existing, err := service.users.FindByNormalizedEmail(email)
	if err == nil {
		if err := service.users.UpdateRole(existing.ID, models.RoleAdmin); err != nil {
			return models.User{}, ErrUserCreateFailed
		}
		if err := service.SetPassword(existing.ID, password, false); err != nil {
			return models.User{}, err
		}
		existing.Role = models.RoleAdmin
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserLookupFailed
	}

	return service.createUser(email, password, NormalizeDisplayName(name), models.RoleAdmin, false)
}

func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, ErrUserLookupFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if user.Status == models.StatusInactive {
		return models.User{}, ErrUserInactive
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, ErrUserLookupFailed
	}
	return user, nil
}

func (service *AuthService) FindByEmail(emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, ErrUserLookupFailed
	}
	return user, nil
}

func (service *AuthService) SetPassword(userID uint, password string, mustChange bool) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordUpdateFailed
	}
	if err := service.users.UpdatePassword(userID, string(passwordHash), mustChange); err != nil {
		return ErrPasswordUpdateFailed
	}
	return nil
}

// ChangePassword replaces the password after checking the current one and
// clears any pending forced change.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrAuthCredentialsInvalid
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	return service.SetPassword(userID, newPassword, false)
}

func (service *AuthService) createUser(email string, password string, name string, role string, mustChange bool) (models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrUserCreateFailed
	}

	user := models.User{
		Email:              email,
		PasswordHash:       string(passwordHash),
		Name:               name,
		Role:               role,
		Status:             models.StatusActive,
		MustChangePassword: mustChange,
		CreatedAt:          service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUserCreateFailed
	}
	return user, nil
}
