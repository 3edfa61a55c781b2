package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tareas-pro/internal/application/dto"
	"github.com/tu-usuario/tareas-pro/internal/application/usecase"
	"github.com/tu-usuario/tareas-pro/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalName   = "name"
	LocalEmail  = "email"
)

// AuthMiddleware valida el token de ACCESO de la cookie de sesión y extrae la
// identidad a c.Locals. La validación es puro cómputo (firma + reloj), sin I/O:
// los claims son la foto tomada al emitir el token, no se consulta la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return tokenMiddleware(jwtSecret, AccessCookie, jwt.KindAccess)
}

// RefreshMiddleware valida el token de REFRESCO desde su propia cookie.
// Un token de acceso presentado aquí (o viceversa) se rechaza por el tag kind.
func RefreshMiddleware(jwtSecret string) fiber.Handler {
	return tokenMiddleware(jwtSecret, RefreshCookie, jwt.KindRefresh)
}

func tokenMiddleware(jwtSecret, cookieName string, kind jwt.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "cookie de sesión requerida",
			})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString, kind)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_TOKEN", Message: "token inválido o expirado",
			})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetName devuelve el nombre del contexto.
func GetName(c *fiber.Ctx) string {
	return localString(c, LocalName)
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// actorFrom arma el Actor para los use cases a partir de los locals.
func actorFrom(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
