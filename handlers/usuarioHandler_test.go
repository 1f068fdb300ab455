package handlers

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeUsuarioService struct {
	created       *models.Usuario
	updated       *models.Usuario
	contrasenaArg *string
	deleted       int64
}

func (f *fakeUsuarioService) Create(ctx context.Context, usuario *models.Usuario) (*repositories.UsuarioRow, error) {
	usuario.ID = 1
	f.created = usuario
	return &repositories.UsuarioRow{IDUsuario: usuario.ID, Usuario: usuario.Usuario, Rol: usuario.Rol}, nil
}

func (f *fakeUsuarioService) GetAll(ctx context.Context) ([]repositories.UsuarioRow, error) {
	return []repositories.UsuarioRow{}, nil
}

func (f *fakeUsuarioService) Update(ctx context.Context, usuario *models.Usuario, contrasena *string) (*repositories.UsuarioRow, error) {
	f.updated = usuario
	f.contrasenaArg = contrasena
	return &repositories.UsuarioRow{IDUsuario: usuario.ID, Usuario: usuario.Usuario, Rol: usuario.Rol}, nil
}

func (f *fakeUsuarioService) Delete(ctx context.Context, id int64) error {
	f.deleted = id
	return nil
}

func usuarioRouter(fake *fakeUsuarioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewUsuarioHandler(fake)
	router.GET("/api/usuarios", handler.GetAllUsuarios)
	router.POST("/api/usuarios", handler.CreateUsuario)
	router.PUT("/api/usuarios/:id", handler.UpdateUsuario)
	router.DELETE("/api/usuarios/:id", handler.DeleteUsuario)
	return router
}

func TestCreateUsuario(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez","contraseña":"secreto","rol":"recepcion"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if fake.created == nil || fake.created.Usuario != "jperez" || fake.created.Contrasena != "secreto" {
		t.Fatalf("unexpected created usuario: %+v", fake.created)
	}
	if fake.created.IDPersona == nil || *fake.created.IDPersona != 4 {
		t.Errorf("unexpected id_persona: %v", fake.created.IDPersona)
	}
}

func TestCreateUsuarioMissingContrasena(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez","rol":"recepcion"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "id_persona, usuario, contraseña y rol son requeridos") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if fake.created != nil {
		t.Error("service should not be called on validation failure")
	}
}

func TestUpdateUsuarioWithoutContrasena(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez","rol":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fake.contrasenaArg != nil {
		t.Errorf("omitted contraseña should pass nil, got %q", *fake.contrasenaArg)
	}
	if fake.updated == nil || fake.updated.ID != 2 || fake.updated.Rol != "admin" {
		t.Errorf("unexpected updated usuario: %+v", fake.updated)
	}
}

func TestUpdateUsuarioEmptyContrasenaKeptAsNil(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez","contraseña":"","rol":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fake.contrasenaArg != nil {
		t.Errorf("empty contraseña should pass nil, got %q", *fake.contrasenaArg)
	}
}

func TestUpdateUsuarioWithContrasena(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez","contraseña":"nuevo","rol":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fake.contrasenaArg == nil || *fake.contrasenaArg != "nuevo" {
		t.Errorf("expected contraseña nuevo, got %v", fake.contrasenaArg)
	}
}

func TestUpdateUsuarioMissingRol(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	body := `{"id_persona":4,"usuario":"jperez"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "id_persona, usuario y rol son requeridos") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestDeleteUsuario(t *testing.T) {
	fake := &fakeUsuarioService{}
	router := usuarioRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/usuarios/6", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if fake.deleted != 6 {
		t.Errorf("expected delete of id 6, got %d", fake.deleted)
	}
}
