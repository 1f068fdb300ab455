package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type doctorRequest struct {
	IDPersona      int64  `json:"id_persona"`
	Especialidad   string `json:"especialidad"`
	NroColegiatura string `json:"nro_colegiatura"`
}

func (r doctorRequest) Validate() error {
	if r.IDPersona == 0 || r.Especialidad == "" || r.NroColegiatura == "" {
		return validation.NewError("validation_required",
			"id_persona, especialidad y nro_colegiatura son requeridos")
	}
	return nil
}

func (r doctorRequest) toModel(id int64) *models.Doctor {
	return &models.Doctor{
		ID:             id,
		IDPersona:      r.IDPersona,
		Especialidad:   r.Especialidad,
		NroColegiatura: r.NroColegiatura,
	}
}

type DoctorHandler struct {
	service services.DoctorService
}

func NewDoctorHandler(service services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) GetAllDoctores(c *gin.Context) {
	doctores, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener doctores", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, doctores)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		middlewares.HttpError(c, "Error al crear doctor", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.service.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar doctor", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar doctor", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
