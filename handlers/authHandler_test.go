package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/services"
	"MediClinica/sessions"
	"MediClinica/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeAuthService struct {
	usuario    string
	contrasena string
	identity   *sessions.Identity
}

func (f *fakeAuthService) Login(ctx context.Context, usuario, contrasena string) (*sessions.Identity, error) {
	if usuario != f.usuario || contrasena != f.contrasena {
		return nil, services.ErrCredencialesInvalidas
	}
	return f.identity, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *sessions.MemoryStore, *utils.TokenSealer) {
	t.Helper()

	sealer, err := utils.NewTokenSealer([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("failed to build sealer: %v", err)
	}
	store := sessions.NewMemoryStore()
	sessionAuth := middlewares.NewSessionAuth(store, sealer)

	auth := &fakeAuthService{
		usuario:    "admin",
		contrasena: "admin123",
		identity:   &sessions.Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin"},
	}
	handler := NewAuthHandler(auth, store, sealer, sessionAuth)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/login", handler.Login)
	router.GET("/api/auth-check", handler.AuthCheck)
	router.POST("/api/logout", handler.Logout)
	return router, store, sealer
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	router, store, sealer := newAuthRouter(t)

	body := `{"usuario":"admin","contraseña":"admin123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	cookie := sessionCookie(t, w.Result())
	if cookie == nil {
		t.Fatal("login did not set the session cookie")
	}

	token, err := sealer.Open(cookie.Value)
	if err != nil {
		t.Fatalf("cookie value cannot be opened: %v", err)
	}
	identity, err := store.Get(context.Background(), token)
	if err != nil || identity == nil {
		t.Fatalf("session not stored: identity=%v err=%v", identity, err)
	}
	if identity.Usuario != "admin" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	body := `{"usuario":"admin","contraseña":"nope"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Usuario o contraseña incorrectos") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if sessionCookie(t, w.Result()) != nil {
		t.Error("failed login must not set a session cookie")
	}
}

func TestLoginMissingFields(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	body := `{"usuario":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Usuario y contraseña requeridos") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthCheck(t *testing.T) {
	router, store, sealer := newAuthRouter(t)

	if err := store.Set(context.Background(), "tok-1", &sessions.Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin"}, time.Minute); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	sealed, err := sealer.Seal("tok-1", time.Minute)
	if err != nil {
		t.Fatalf("failed to seal token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth-check", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: sealed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) || !strings.Contains(w.Body.String(), `"usuario":"admin"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthCheckWithoutSession(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth-check", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":false`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestLogout(t *testing.T) {
	router, store, sealer := newAuthRouter(t)

	if err := store.Set(context.Background(), "tok-2", &sessions.Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin"}, time.Minute); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	sealed, err := sealer.Seal("tok-2", time.Minute)
	if err != nil {
		t.Fatalf("failed to seal token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: sealed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	identity, err := store.Get(context.Background(), "tok-2")
	if err != nil {
		t.Fatalf("store lookup failed: %v", err)
	}
	if identity != nil {
		t.Error("logout must destroy the server-side session")
	}

	cookie := sessionCookie(t, w.Result())
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("logout must expire the cookie, got %+v", cookie)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
