package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleTrainer = "trainer"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	Name               string    `gorm:"not null;default:''" json:"name"`
	AvatarURL          string    `gorm:"not null;default:''" json:"avatar_url,omitempty"`
	Role               string    `gorm:"not null;default:user" json:"role"`
	Status             string    `gorm:"not null;default:active" json:"status"`
	HeightCM           float64   `gorm:"not null;default:0" json:"height_cm,omitempty"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}

// UserScoreSummary is a user row with the most recent daily score, if any.
type UserScoreSummary struct {
	ID         uint       `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	LastDate   *time.Time `json:"last_date,omitempty"`
	LastTotal  *int       `json:"last_total,omitempty"`
	LastTier   *string    `json:"last_tier,omitempty"`
	ScoredDays int64      `json:"scored_days"`
}
