package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nombres de cookies de sesión. Se conservan los nombres que espera el
// frontend (convención de flask_jwt_extended, de donde migró este backend).
const (
	AccessCookie  = "access_token_cookie"
	RefreshCookie = "refresh_token_cookie"
)

// refreshCookiePath limita el envío del token de refresco a su único endpoint.
const refreshCookiePath = "/api/auth/refresh"

// CookiePolicy define cómo viajan los tokens en cookies. HTTPOnly siempre;
// Secure y SameSite dependen del despliegue: con frontend en otro origin se
// necesita SameSite=None (y por tanto Secure); en desarrollo basta Lax.
type CookiePolicy struct {
	Secure        bool
	SameSite      string
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
}

// NewCookiePolicy construye la política según el entorno de despliegue.
func NewCookiePolicy(production bool, accessTTL, refreshTTL time.Duration) CookiePolicy {
	sameSite := fiber.CookieSameSiteLaxMode
	if production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return CookiePolicy{
		Secure:        production,
		SameSite:      sameSite,
		AccessMaxAge:  accessTTL,
		RefreshMaxAge: refreshTTL,
	}
}

// SetSession adjunta ambos tokens a la respuesta (login).
func (p CookiePolicy) SetSession(c *fiber.Ctx, access, refresh string) {
	p.SetAccess(c, access)
	c.Cookie(p.cookie(RefreshCookie, refresh, refreshCookiePath, p.RefreshMaxAge))
}

// SetAccess adjunta solo el token de acceso (refresh).
func (p CookiePolicy) SetAccess(c *fiber.Ctx, access string) {
	c.Cookie(p.cookie(AccessCookie, access, "/", p.AccessMaxAge))
}

// Clear borra ambas cookies (logout). Los tokens en sí siguen siendo válidos
// hasta su expiración: no hay lista de revocación en el servidor.
func (p CookiePolicy) Clear(c *fiber.Ctx) {
	c.Cookie(p.expired(AccessCookie, "/"))
	c.Cookie(p.expired(RefreshCookie, refreshCookiePath))
}

func (p CookiePolicy) cookie(name, value, path string, maxAge time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

func (p CookiePolicy) expired(name, path string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}
