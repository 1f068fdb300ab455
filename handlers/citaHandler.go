package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// citaRequest covers create and update. estado is only honored on update,
// where nil means "keep the stored value"; create always starts a cita as
// Programada.
type citaRequest struct {
	IDPaciente int64   `json:"id_paciente"`
	IDDoctor   int64   `json:"id_doctor"`
	Fecha      string  `json:"fecha"`
	Hora       string  `json:"hora"`
	Motivo     *string `json:"motivo"`
	Estado     *string `json:"estado"`
}

func (r citaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDPaciente, validation.Required.Error(errRequerido)),
		validation.Field(&r.IDDoctor, validation.Required.Error(errRequerido)),
		validation.Field(&r.Fecha, validation.Required.Error(errRequerido)),
		validation.Field(&r.Hora, validation.Required.Error(errRequerido)),
	)
}

func (r citaRequest) toModel(id int64) *models.Cita {
	return &models.Cita{
		ID:         id,
		IDPaciente: r.IDPaciente,
		IDDoctor:   r.IDDoctor,
		Fecha:      r.Fecha,
		Hora:       r.Hora,
		Motivo:     normalizeOpcional(r.Motivo),
	}
}

type CitaHandler struct {
	service services.CitaService
}

func NewCitaHandler(service services.CitaService) *CitaHandler {
	return &CitaHandler{service: service}
}

func (h *CitaHandler) GetAllCitas(c *gin.Context) {
	citas, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener citas", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, citas)
}

func (h *CitaHandler) CreateCita(c *gin.Context) {
	var req citaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cita, err := h.service.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		middlewares.HttpError(c, "Error al crear cita", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, cita)
}

func (h *CitaHandler) UpdateCita(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req citaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cita, err := h.service.Update(c.Request.Context(), req.toModel(id), normalizeOpcional(req.Estado))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar cita", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, cita)
}

func (h *CitaHandler) DeleteCita(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar cita", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
