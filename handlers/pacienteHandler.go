package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type pacienteRequest struct {
	IDPersona  int64   `json:"id_persona"`
	TipoSangre *string `json:"tipo_sangre"`
	Alergias   *string `json:"alergias"`
}

func (r pacienteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDPersona, validation.Required.Error(errRequerido)),
	)
}

func (r pacienteRequest) toModel(id int64) *models.Paciente {
	return &models.Paciente{
		ID:         id,
		IDPersona:  r.IDPersona,
		TipoSangre: normalizeOpcional(r.TipoSangre),
		Alergias:   normalizeOpcional(r.Alergias),
	}
}

type PacienteHandler struct {
	service services.PacienteService
}

func NewPacienteHandler(service services.PacienteService) *PacienteHandler {
	return &PacienteHandler{service: service}
}

func (h *PacienteHandler) GetAllPacientes(c *gin.Context) {
	pacientes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener pacientes", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pacientes)
}

func (h *PacienteHandler) CreatePaciente(c *gin.Context) {
	var req pacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paciente, err := h.service.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		middlewares.HttpError(c, "Error al crear paciente", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, paciente)
}

func (h *PacienteHandler) UpdatePaciente(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req pacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paciente, err := h.service.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar paciente", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, paciente)
}

func (h *PacienteHandler) DeletePaciente(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar paciente", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
