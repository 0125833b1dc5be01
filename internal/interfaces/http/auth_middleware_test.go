package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/servihogar-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/servihogar-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "servihogar-test"
	testExpDays   = 30
)

// fakeUserStore resolver en memoria para el middleware.
type fakeUserStore struct {
	users map[string]*entity.User
}

func (s *fakeUserStore) FindByID(id string) (*entity.User, error) {
	return s.users[id], nil
}

func newFakeStore(users ...*entity.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware que valida la credencial y carga el usuario
//   - RequireRole opcional
//   - Un handler dummy que devuelve 200 con la identidad cargada
func buildTestApp(store *fakeUserStore, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, store)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":      true,
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpDays)
	require.NoError(t, err, "debe generarse un token válido")
	return tok
}

// doCookieRequest lanza GET /protected con la credencial en la cookie de sesión.
func doCookieRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doBearerRequest lanza GET /protected con la credencial en Authorization.
func doBearerRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func testUser(id, role string) *entity.User {
	return &entity.User{ID: id, Email: id + "@test.com", Name: "Usuario " + id, Role: role, PasswordHash: "$2a$10$irrelevante"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Credencial válida en cookie → 200 con la identidad cargada.
func TestAuthMiddleware_CookieValida(t *testing.T) {
	user := testUser("user_cookie01", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(user))

	resp := doCookieRequest(t, app, tokenFor(t, user.ID, user.Role))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, user.ID, body["user_id"])
	assert.Equal(t, entity.RoleCustomer, body["role"])
}

// La misma credencial vía Authorization Bearer también autentica (clientes móviles).
func TestAuthMiddleware_BearerFallback(t *testing.T) {
	user := testUser("user_bearer01", entity.RoleProfessional)
	app := buildTestApp(newFakeStore(user))

	resp := doBearerRequest(t, app, tokenFor(t, user.ID, user.Role))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el token por header Bearer debe autenticar igual que la cookie")
}

// Sin credencial alguna → 401 NOT_AUTHENTICATED.
func TestAuthMiddleware_SinCredencial(t *testing.T) {
	app := buildTestApp(newFakeStore())

	resp := doCookieRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_AUTHENTICATED")
}

// Token firmado con otro secreto → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenForjado(t *testing.T) {
	user := testUser("user_forjado1", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(user))

	forged, err := pkgjwt.Generate("otro-secreto", user.ID, user.Role, testIssuer, testExpDays)
	require.NoError(t, err)

	resp := doCookieRequest(t, app, forged)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN",
		"firma inválida y expiración deben colapsar en el mismo código")
}

// Token expirado → 401 INVALID_TOKEN (mismo código que forjado: no se distingue la causa).
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	user := testUser("user_expirado", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(user))

	// expDays negativo produce un exp en el pasado
	expired, err := pkgjwt.Generate(testJWTSecret, user.ID, user.Role, testIssuer, -1)
	require.NoError(t, err)

	resp := doCookieRequest(t, app, expired)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Basura no-JWT como credencial → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := buildTestApp(newFakeStore())

	resp := doCookieRequest(t, app, "no-soy-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token válido pero la cuenta ya no existe → 404 USER_NOT_FOUND.
// La sesión no sobrevive a la eliminación del usuario.
func TestAuthMiddleware_CuentaEliminada(t *testing.T) {
	app := buildTestApp(newFakeStore()) // store vacío: el usuario fue borrado

	resp := doCookieRequest(t, app, tokenFor(t, "user_borrado1", entity.RoleCustomer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}

// Logout no revoca: un token emitido sigue autenticando aunque el cliente
// haya borrado su cookie (limitación documentada del diseño sin estado).
func TestAuthMiddleware_TokenSigueValidoTrasLogout(t *testing.T) {
	user := testUser("user_logout01", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(user))
	token := tokenFor(t, user.ID, user.Role)

	// Primera petición: autentica.
	resp := doCookieRequest(t, app, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// "Logout": el cliente pierde la cookie, pero si conserva el token y lo
	// reenvía, el servidor lo sigue aceptando.
	resp2 := doBearerRequest(t, app, token)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode,
		"sin revocación del lado servidor, el token sobrevive al logout")
}

// El usuario adjunto al contexto viaja sin hash; el registro del repositorio
// conserva el suyo (el blanqueo opera sobre una copia).
func TestAuthMiddleware_UsuarioSinHashEnContexto(t *testing.T) {
	user := testUser("user_sinhash1", entity.RoleCustomer)
	store := newFakeStore(user)

	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, store),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"hash": apphttp.GetCurrentUser(c).PasswordHash})
		})

	resp := doCookieRequest(t, app, tokenFor(t, user.ID, user.Role))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["hash"], "GetCurrentUser no debe exponer la credencial")
	assert.NotEmpty(t, store.users[user.ID].PasswordHash,
		"el hash del repositorio debe quedar intacto")
}

// El rol autoritativo es el de la base: si el claim dice admin pero la base
// dice customer, manda la base.
func TestAuthMiddleware_RolDeLaBaseManda(t *testing.T) {
	user := testUser("user_degradado", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(user), entity.RoleAdmin)

	// Claim con rol admin (token viejo de antes de la degradación)
	resp := doCookieRequest(t, app, tokenFor(t, user.ID, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el rol del claim no debe prevalecer sobre el rol actual en la base")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Admin accede a ruta admin → 200.
func TestRequireRole_AdminAccede(t *testing.T) {
	admin := testUser("user_admin001", entity.RoleAdmin)
	app := buildTestApp(newFakeStore(admin), entity.RoleAdmin)

	resp := doCookieRequest(t, app, tokenFor(t, admin.ID, admin.Role))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Customer autenticado en ruta admin → 403 FORBIDDEN (identidad conocida,
// permiso insuficiente: nunca 401).
func TestRequireRole_CustomerBloqueado(t *testing.T) {
	customer := testUser("user_cliente1", entity.RoleCustomer)
	app := buildTestApp(newFakeStore(customer), entity.RoleAdmin)

	resp := doCookieRequest(t, app, tokenFor(t, customer.ID, customer.Role))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Multi-rol: professional accede a ruta que permite professional o admin.
func TestRequireRole_MultiRol(t *testing.T) {
	prof := testUser("user_prof0001", entity.RoleProfessional)
	app := buildTestApp(newFakeStore(prof), entity.RoleProfessional, entity.RoleAdmin)

	resp := doCookieRequest(t, app, tokenFor(t, prof.ID, prof.Role))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
