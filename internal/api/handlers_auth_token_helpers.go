package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rafaeldias2025/oficial-27/internal/models"
)

const tokenIssuer = "sonhos"

// sessionCookie builds the auth cookie. A zero expiry makes it a browser
// session cookie; a past expiry deletes it.
func (handler *Handler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string, ttl time.Duration, persistent bool) {
	var expires time.Time
	if persistent {
		expires = time.Now().Add(ttl)
	}
	c.Cookie(handler.sessionCookie(token, expires))
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(handler.sessionCookie("", time.Unix(0, 0)))
}

// buildToken signs an HS256 token for user valid for ttl, or the default
// lifetime when ttl is not positive.
func (handler *Handler) buildToken(user *models.User, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	issuedAt := time.Now().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString(handler.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
