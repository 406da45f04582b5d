package db

import (
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	}).Error
}

func (repo *UserRepository) UpdateRole(userID uint, role string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error
}

// ListWithLatestScore returns every user with the most recent daily score, if any.
func (repo *UserRepository) ListWithLatestScore() ([]models.UserScoreSummary, error) {
	rows := make([]models.UserScoreSummary, 0)
	err := repo.database.Raw(`
SELECT u.id, u.email, u.name, u.role,
       latest.date AS last_date,
       latest.total_points AS last_total,
       latest.category AS last_tier,
       (SELECT COUNT(*) FROM daily_scores counted WHERE counted.user_id = u.id) AS scored_days
FROM users u
LEFT JOIN daily_scores latest
  ON latest.user_id = u.id
 AND latest.date = (SELECT MAX(inner_scores.date) FROM daily_scores inner_scores WHERE inner_scores.user_id = u.id)
ORDER BY u.id ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
