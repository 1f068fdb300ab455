package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type historialRequest struct {
	IDPaciente  int64   `json:"id_paciente"`
	IDDoctor    int64   `json:"id_doctor"`
	Fecha       string  `json:"fecha"`
	Diagnostico string  `json:"diagnostico"`
	Tratamiento *string `json:"tratamiento"`
	Receta      *string `json:"receta"`
}

func (r historialRequest) Validate() error {
	if r.IDPaciente == 0 || r.IDDoctor == 0 || r.Fecha == "" || r.Diagnostico == "" {
		return validation.NewError("validation_required",
			"id_paciente, id_doctor, fecha y diagnostico son requeridos")
	}
	return nil
}

func (r historialRequest) toModel(id int64) *models.HistorialMedico {
	return &models.HistorialMedico{
		ID:          id,
		IDPaciente:  r.IDPaciente,
		IDDoctor:    r.IDDoctor,
		Fecha:       r.Fecha,
		Diagnostico: r.Diagnostico,
		Tratamiento: normalizeOpcional(r.Tratamiento),
		Receta:      normalizeOpcional(r.Receta),
	}
}

type HistorialHandler struct {
	service services.HistorialService
}

func NewHistorialHandler(service services.HistorialService) *HistorialHandler {
	return &HistorialHandler{service: service}
}

func (h *HistorialHandler) GetAllHistorial(c *gin.Context) {
	historial, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener historial", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, historial)
}

func (h *HistorialHandler) CreateHistorial(c *gin.Context) {
	var req historialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	historial, err := h.service.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		middlewares.HttpError(c, "Error al crear historial", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, historial)
}

func (h *HistorialHandler) UpdateHistorial(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req historialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	historial, err := h.service.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar historial", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, historial)
}

func (h *HistorialHandler) DeleteHistorial(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar historial", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
