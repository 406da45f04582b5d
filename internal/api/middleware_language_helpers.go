package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60

// LanguageMiddleware stores the request language in Locals and echoes it in
// Content-Language. ?lang= wins and is remembered in a cookie.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language, remember := handler.resolveLanguage(c)
	if remember {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Set(fiber.HeaderContentLanguage, language)
	return c.Next()
}

func (handler *Handler) resolveLanguage(c *fiber.Ctx) (string, bool) {
	stored := strings.TrimSpace(c.Cookies(languageCookieName))
	if requested := strings.TrimSpace(c.Query("lang")); requested != "" {
		language := handler.i18n.NormalizeLanguage(requested)
		return language, language != stored
	}
	if stored != "" {
		return handler.i18n.NormalizeLanguage(stored), false
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)), false
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		Expires:  time.Now().Add(languageCookieMaxAge * time.Second),
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	return handler.i18n.Translate(currentLanguage(c), key)
}
