package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type personaRequest struct {
	Nombres         string  `json:"nombres"`
	Apellidos       string  `json:"apellidos"`
	DNI             string  `json:"dni"`
	Telefono        *string `json:"telefono"`
	Direccion       *string `json:"direccion"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
}

func (r personaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombres, validation.Required.Error(errRequerido)),
		validation.Field(&r.Apellidos, validation.Required.Error(errRequerido)),
		validation.Field(&r.DNI, validation.Required.Error(errRequerido)),
	)
}

func (r personaRequest) toModel(id int64) *models.Persona {
	return &models.Persona{
		ID:              id,
		Nombres:         r.Nombres,
		Apellidos:       r.Apellidos,
		DNI:             r.DNI,
		Telefono:        normalizeOpcional(r.Telefono),
		Direccion:       normalizeOpcional(r.Direccion),
		FechaNacimiento: normalizeOpcional(r.FechaNacimiento),
	}
}

type PersonaHandler struct {
	service services.PersonaService
}

func NewPersonaHandler(service services.PersonaService) *PersonaHandler {
	return &PersonaHandler{service: service}
}

func (h *PersonaHandler) GetAllPersonas(c *gin.Context) {
	personas, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener datos", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, personas)
}

func (h *PersonaHandler) CreatePersona(c *gin.Context) {
	var req personaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persona, err := h.service.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		middlewares.HttpError(c, "Error al crear persona", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, persona)
}

func (h *PersonaHandler) UpdatePersona(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req personaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persona, err := h.service.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar persona", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, persona)
}

func (h *PersonaHandler) DeletePersona(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar persona", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
