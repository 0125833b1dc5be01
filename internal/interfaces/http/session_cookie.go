package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName nombre de la cookie que transporta el token de sesión.
const SessionCookieName = "session_token"

// sessionCookieMaxAge vida de la cookie en segundos (30 días, igual que el token).
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// setSessionCookie escribe la cookie de sesión. HttpOnly siempre (JS no puede
// leerla); SameSite=Lax; Secure según configuración (requiere HTTPS).
func setSessionCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		Expires:  time.Now().Add(sessionCookieMaxAge * time.Second),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie borra la cookie de sesión. El token en sí sigue siendo
// válido hasta su expiración: no hay revocación del lado servidor.
func clearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
