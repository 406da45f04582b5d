package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rafaeldias2025/oficial-27/internal/models"
)

const bearerPrefix = "bearer "

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	tokenValue := requestAuthToken(c)
	if tokenValue == "" {
		return nil, errors.New("missing auth token")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// requestAuthToken prefers an Authorization bearer token over the session cookie.
func requestAuthToken(c *fiber.Ctx) string {
	if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
		return token
	}
	return strings.TrimSpace(c.Cookies(authCookieName))
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// HasBearerToken reports whether the request authenticates with an
// Authorization header instead of the session cookie.
func HasBearerToken(c *fiber.Ctx) bool {
	_, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	return ok
}

func HasSessionCookie(c *fiber.Ctx) bool {
	return strings.TrimSpace(c.Cookies(authCookieName)) != ""
}
