package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/servihogar-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio para el flujo HTTP completo
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

type memProfRepo struct{}

func (memProfRepo) Create(*entity.Professional) error                { return nil }
func (memProfRepo) GetByUserID(string) (*entity.Professional, error) { return nil, nil }
func (memProfRepo) Update(*entity.Professional) error                { return nil }
func (memProfRepo) UpdateVerified(string, bool) (bool, error)        { return true, nil }
func (memProfRepo) UpdateRating(string, decimal.Decimal, int) error  { return nil }
func (memProfRepo) List() ([]*entity.Professional, error)            { return nil, nil }

// buildAuthApp monta las rutas de auth con el use case real sobre fakes.
func buildAuthApp(users *memUserRepo) *fiber.App {
	uc := auth.NewAuthUseCase(users, memProfRepo{}, auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})
	h := apphttp.NewAuthHandler(uc, false)

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", apphttp.AuthMiddleware(testJWTSecret, users), h.Logout)
	app.Get("/api/auth/me", apphttp.AuthMiddleware(testJWTSecret, users), h.Me)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookieName {
			return c
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SeteaCookieDeSesion(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"ana@test.com","password":"password123","name":"Ana"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie, "register debe setear la cookie session_token")
	assert.True(t, cookie.HttpOnly, "la cookie no debe ser legible por JS")
	assert.NotEmpty(t, cookie.Value)
	assert.Greater(t, cookie.MaxAge, 0)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ana@test.com", user["email"])
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash, "el hash jamás viaja en la respuesta")
}

func TestRegister_EmailDuplicado400(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())

	resp := postJSON(t, app, "/api/auth/register", `{"email":"dup@test.com","password":"password123"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := postJSON(t, app, "/api/auth/register", `{"email":"dup@test.com","password":"otropass456"}`)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "DUPLICATE_EMAIL")
}

func TestLogin_CredencialesInvalidasMismaRespuesta(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())
	resp := postJSON(t, app, "/api/auth/register", `{"email":"real@test.com","password":"password123"}`)
	resp.Body.Close()

	respUnknown := postJSON(t, app, "/api/auth/login", `{"email":"fantasma@test.com","password":"password123"}`)
	defer respUnknown.Body.Close()
	respWrongPw := postJSON(t, app, "/api/auth/login", `{"email":"real@test.com","password":"incorrecta"}`)
	defer respWrongPw.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)

	bodyUnknown, _ := io.ReadAll(respUnknown.Body)
	bodyWrongPw, _ := io.ReadAll(respWrongPw.Body)
	assert.Equal(t, string(bodyUnknown), string(bodyWrongPw),
		"email desconocido y password incorrecto deben ser indistinguibles")
	assert.Contains(t, string(bodyUnknown), "INVALID_CREDENTIALS")
}

func TestLogin_Logout_FlujoDeCookie(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())
	resp := postJSON(t, app, "/api/auth/register", `{"email":"flujo@test.com","password":"password123"}`)
	resp.Body.Close()

	// Login emite cookie nueva.
	login := postJSON(t, app, "/api/auth/login", `{"email":"flujo@test.com","password":"password123"}`)
	login.Body.Close()
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	// Con la cookie, /me responde la identidad.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	me, err := app.Test(req, -1)
	require.NoError(t, err)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)

	var meBody map[string]interface{}
	require.NoError(t, json.NewDecoder(me.Body).Decode(&meBody))
	assert.Equal(t, "flujo@test.com", meBody["email"])

	// Logout (con la sesión vigente) borra la cookie del lado cliente.
	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logout, err := app.Test(logoutReq, -1)
	require.NoError(t, err)
	defer logout.Body.Close()
	assert.Equal(t, http.StatusOK, logout.StatusCode)
	cleared := sessionCookie(t, logout)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()), "Expires en el pasado expira la cookie")

	// El token del login sigue siendo válido: logout no revoca.
	req2 := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req2.AddCookie(cookie)
	me2, err := app.Test(req2, -1)
	require.NoError(t, err)
	defer me2.Body.Close()
	assert.Equal(t, http.StatusOK, me2.StatusCode)
}

// Logout exige sesión: sin credencial responde 401, igual que cualquier
// ruta autenticada.
func TestLogout_SinSesion(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())

	resp := postJSON(t, app, "/api/auth/logout", ``)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_AUTHENTICATED")
}

// Sin credencial, /me rechaza con NOT_AUTHENTICATED.
func TestMe_SinSesion(t *testing.T) {
	app := buildAuthApp(newMemUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_AUTHENTICATED")
}
