package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalUser   = "current_user"
)

// userResolver lo satisface repository.UserRepository; el middleware solo
// necesita resolver la identidad del token contra la base.
type userResolver interface {
	FindByID(id string) (*entity.User, error)
}

// AuthMiddleware valida la credencial de sesión y carga el usuario a c.Locals.
// La credencial se busca primero en la cookie session_token y si no está, en
// el header Authorization Bearer (clientes móviles).
//
// Escalera de rechazo:
//   - sin credencial            -> 401 NOT_AUTHENTICATED
//   - token inválido/expirado/  -> 401 INVALID_TOKEN (una sola condición,
//     firma incorrecta             sin distinguir la causa)
//   - cuenta eliminada          -> 404 USER_NOT_FOUND (token válido pero
//     huérfano: la sesión no sobrevive al usuario)
func AuthMiddleware(jwtSecret string, users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Detail: "no autenticado"})
		}
		// El rol del claim se descarta: el autoritativo es el de la base, así
		// una degradación de rol aplica en el siguiente request.
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Detail: "token inválido o expirado"})
		}
		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: "error interno"})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Detail: "usuario no encontrado"})
		}
		// Al contexto viaja una copia sin hash: la credencial no cruza el
		// middleware (el repositorio conserva la suya intacta).
		sessionUser := *user
		sessionUser.PasswordHash = ""
		c.Locals(LocalUserID, sessionUser.ID)
		c.Locals(LocalRole, sessionUser.Role)
		c.Locals(LocalUser, &sessionUser)
		return c.Next()
	}
}

// extractToken busca la credencial: cookie primero, luego Bearer.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole gate de autorización; va SIEMPRE después de AuthMiddleware.
// Un usuario autenticado con rol fuera del set recibe 403 (identidad conocida,
// permiso insuficiente), nunca 401.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Detail: "no autenticado"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Detail: "no tiene permisos para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCurrentUser devuelve el usuario cargado por el middleware (sin hash visible
// en respuestas: los handlers proyectan con auth.ToUserResponse).
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// currentUserResponse proyección segura del usuario autenticado.
func currentUserResponse(c *fiber.Ctx) *dto.UserResponse {
	return auth.ToUserResponse(GetCurrentUser(c))
}
