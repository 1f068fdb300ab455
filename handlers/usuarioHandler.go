package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/models"
	"MediClinica/services"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// usuarioRequest covers create and update. contraseña is a pointer on
// purpose: on update, an absent or empty value preserves the stored hash.
type usuarioRequest struct {
	IDPersona  *int64  `json:"id_persona"`
	Usuario    string  `json:"usuario"`
	Contrasena *string `json:"contraseña"`
	Rol        string  `json:"rol"`
}

func (r usuarioRequest) validateCreate() error {
	if r.IDPersona == nil || r.Usuario == "" || normalizeOpcional(r.Contrasena) == nil || r.Rol == "" {
		return validation.NewError("validation_required",
			"id_persona, usuario, contraseña y rol son requeridos")
	}
	return nil
}

func (r usuarioRequest) validateUpdate() error {
	if r.IDPersona == nil || r.Usuario == "" || r.Rol == "" {
		return validation.NewError("validation_required",
			"id_persona, usuario y rol son requeridos")
	}
	return nil
}

type UsuarioHandler struct {
	service services.UsuarioService
}

func NewUsuarioHandler(service services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

func (h *UsuarioHandler) GetAllUsuarios(c *gin.Context) {
	usuarios, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Error al obtener usuarios", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var req usuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.validateCreate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario := &models.Usuario{
		IDPersona:  req.IDPersona,
		Usuario:    req.Usuario,
		Contrasena: *req.Contrasena,
		Rol:        req.Rol,
	}
	row, err := h.service.Create(c.Request.Context(), usuario)
	if err != nil {
		middlewares.HttpError(c, "Error al crear usuario", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req usuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if err := req.validateUpdate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario := &models.Usuario{
		ID:        id,
		IDPersona: req.IDPersona,
		Usuario:   req.Usuario,
		Rol:       req.Rol,
	}
	row, err := h.service.Update(c.Request.Context(), usuario, normalizeOpcional(req.Contrasena))
	if err != nil {
		middlewares.HttpError(c, "Error al actualizar usuario", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Error al eliminar usuario", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
