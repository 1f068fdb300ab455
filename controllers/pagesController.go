package controllers

import (
	"MediClinica/middlewares"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PagesController serves the static frontend. Every page except the login
// page requires a live session; hitting /login while logged in bounces back
// to the dashboard.
type PagesController struct {
	sessionAuth *middlewares.SessionAuth
	publicDir   string
}

func NewPagesController(sessionAuth *middlewares.SessionAuth, publicDir string) *PagesController {
	return &PagesController{sessionAuth: sessionAuth, publicDir: publicDir}
}

// RegisterRoutes sets up the page and asset routes on the router
func (pc *PagesController) RegisterRoutes(router *gin.Engine) {
	router.Static("/assets", filepath.Join(pc.publicDir, "assets"))
	router.GET("/login", pc.loginPage)

	protected := router.Group("/", pc.sessionAuth.RequirePage())
	protected.GET("", pc.page("index.html"))
	protected.GET("personas", pc.page("personas.html"))
	protected.GET("doctores", pc.page("doctores.html"))
	protected.GET("usuario", pc.page("usuario.html"))
	protected.GET("historial", pc.page("historial.html"))
	protected.GET("usuarios", pc.page("usuarios.html"))
}

func (pc *PagesController) loginPage(c *gin.Context) {
	if pc.sessionAuth.Resolve(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File(filepath.Join(pc.publicDir, "login.html"))
}

func (pc *PagesController) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(pc.publicDir, name))
	}
}
