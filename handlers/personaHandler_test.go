package handlers

import (
	"MediClinica/models"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakePersonaService struct {
	personas []models.Persona
	created  *models.Persona
	updated  *models.Persona
	deleted  int64
	err      error
}

func (f *fakePersonaService) Create(ctx context.Context, persona *models.Persona) (*models.Persona, error) {
	if f.err != nil {
		return nil, f.err
	}
	persona.ID = 1
	f.created = persona
	return persona, nil
}

func (f *fakePersonaService) GetAll(ctx context.Context) ([]models.Persona, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.personas, nil
}

func (f *fakePersonaService) Update(ctx context.Context, persona *models.Persona) (*models.Persona, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = persona
	return persona, nil
}

func (f *fakePersonaService) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

func personaRouter(fake *fakePersonaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPersonaHandler(fake)
	router.GET("/api/personas", handler.GetAllPersonas)
	router.POST("/api/personas", handler.CreatePersona)
	router.PUT("/api/personas/:id", handler.UpdatePersona)
	router.DELETE("/api/personas/:id", handler.DeletePersona)
	return router
}

func TestGetAllPersonas(t *testing.T) {
	fake := &fakePersonaService{personas: []models.Persona{
		{ID: 2, Nombres: "Ana", Apellidos: "Lopez", DNI: "22222222"},
		{ID: 1, Nombres: "Juan", Apellidos: "Perez", DNI: "11111111"},
	}}
	router := personaRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/personas", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got []models.Persona
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("unexpected response: %+v", got)
	}
}

func TestGetAllPersonasError(t *testing.T) {
	router := personaRouter(&fakePersonaService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/personas", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error al obtener datos") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCreatePersona(t *testing.T) {
	fake := &fakePersonaService{}
	router := personaRouter(fake)

	body := `{"nombres":"Juan","apellidos":"Perez","dni":"11111111","telefono":"","direccion":"Av. Lima 123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/personas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if fake.created == nil || fake.created.DNI != "11111111" {
		t.Fatalf("unexpected created persona: %+v", fake.created)
	}
	if fake.created.Telefono != nil {
		t.Errorf("empty telefono should normalize to nil, got %q", *fake.created.Telefono)
	}
	if fake.created.Direccion == nil || *fake.created.Direccion != "Av. Lima 123" {
		t.Errorf("unexpected direccion: %v", fake.created.Direccion)
	}
}

func TestCreatePersonaMissingDNI(t *testing.T) {
	fake := &fakePersonaService{}
	router := personaRouter(fake)

	body := `{"nombres":"Juan","apellidos":"Perez"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/personas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "dni") {
		t.Errorf("error should name the missing field, got: %s", w.Body.String())
	}
	if fake.created != nil {
		t.Error("service should not be called on validation failure")
	}
}

func TestUpdatePersonaInvalidID(t *testing.T) {
	router := personaRouter(&fakePersonaService{})

	body := `{"nombres":"Juan","apellidos":"Perez","dni":"11111111"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/personas/abc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ID inválido") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestUpdatePersona(t *testing.T) {
	fake := &fakePersonaService{}
	router := personaRouter(fake)

	body := `{"nombres":"Juan","apellidos":"Perez","dni":"11111111"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/personas/7", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fake.updated == nil || fake.updated.ID != 7 {
		t.Fatalf("unexpected updated persona: %+v", fake.updated)
	}
}

func TestDeletePersona(t *testing.T) {
	fake := &fakePersonaService{}
	router := personaRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/personas/5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if fake.deleted != 5 {
		t.Errorf("expected delete of id 5, got %d", fake.deleted)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
