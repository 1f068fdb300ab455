package handlers

import (
	"MediClinica/middlewares"
	"MediClinica/services"
	"MediClinica/sessions"
	"MediClinica/utils"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	auth        services.AuthService
	store       sessions.Store
	sealer      *utils.TokenSealer
	sessionAuth *middlewares.SessionAuth
}

func NewAuthHandler(auth services.AuthService, store sessions.Store, sealer *utils.TokenSealer, sessionAuth *middlewares.SessionAuth) *AuthHandler {
	return &AuthHandler{auth: auth, store: store, sealer: sealer, sessionAuth: sessionAuth}
}

// Login authenticates the credentials and establishes a session: an opaque
// token in the store, sealed into the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Usuario    string `json:"usuario"`
		Contrasena string `json:"contraseña"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil || credentials.Usuario == "" || credentials.Contrasena == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario y contraseña requeridos"})
		return
	}

	ctx := c.Request.Context()
	identity, err := h.auth.Login(ctx, credentials.Usuario, credentials.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}
		middlewares.HttpError(c, "Error al iniciar sesión", http.StatusInternalServerError, err)
		return
	}

	token := uuid.New().String()
	if err := h.store.Set(ctx, token, identity, sessions.DefaultExpiry); err != nil {
		middlewares.HttpError(c, "Error al iniciar sesión", http.StatusInternalServerError, err)
		return
	}

	sealed, err := h.sealer.Seal(token, sessions.DefaultExpiry)
	if err != nil {
		middlewares.HttpError(c, "Error al iniciar sesión", http.StatusInternalServerError, err)
		return
	}
	setSessionCookie(c, sealed, sessions.DefaultExpiry)

	c.JSON(http.StatusOK, gin.H{"ok": true, "usuario": identity})
}

// AuthCheck reports the session state without ever failing the request.
func (h *AuthHandler) AuthCheck(c *gin.Context) {
	identity := h.sessionAuth.Resolve(c)
	if identity == nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "usuario": identity})
}

// Logout destroys the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sealed, err := c.Cookie(utils.SessionCookieName); err == nil {
		if token, err := h.sealer.Open(sealed); err == nil {
			if err := h.store.Destroy(c.Request.Context(), token); err != nil {
				middlewares.HttpError(c, "Error al cerrar sesión", http.StatusInternalServerError, err)
				return
			}
		}
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func setSessionCookie(c *gin.Context, value string, expiry time.Duration) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(utils.SessionCookieName, value, int(expiry.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", secure, true)
}
