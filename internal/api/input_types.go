package api

import (
	"github.com/rafaeldias2025/oficial-27/internal/models"
)

type registerInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

type loginInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type sessionResponse struct {
	Token              string      `json:"token"`
	ExpiresAt          string      `json:"expires_at"`
	MustChangePassword bool        `json:"must_change_password"`
	User               models.User `json:"user"`
}

// scaleReadingInput carries what a browser bridge received from the scale.
// Payloads are base64 encoded characteristic values in arrival order. A
// request without payloads records WeightKg as a manual entry.
type scaleReadingInput struct {
	WeightKg           *float64 `json:"weight"`
	DeviceID           string   `json:"device_id"`
	Name               string   `json:"name"`
	Services           []string `json:"services"`
	ServiceUUID        string   `json:"service_uuid"`
	CharacteristicUUID string   `json:"characteristic_uuid"`
	Payloads           []string `json:"payloads"`
	ReceivedAt         string   `json:"received_at"`
}

type wheelInput struct {
	Responses         map[string]int    `json:"responses"`
	ReflectionAnswers map[string]string `json:"reflection_answers"`
}
