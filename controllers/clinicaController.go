package controllers

import (
	"MediClinica/handlers"
	"MediClinica/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupClinicaRoutes registers the CRUD API for every clinical entity. The
// usuarios group is the only one behind the session check.
func SetupClinicaRoutes(router *gin.Engine, personaHandler *handlers.PersonaHandler, pacienteHandler *handlers.PacienteHandler, doctorHandler *handlers.DoctorHandler, citaHandler *handlers.CitaHandler, historialHandler *handlers.HistorialHandler, usuarioHandler *handlers.UsuarioHandler, sessionAuth *middlewares.SessionAuth) {
	api := router.Group("/api")

	api.GET("/personas", personaHandler.GetAllPersonas)
	api.POST("/personas", personaHandler.CreatePersona)
	api.PUT("/personas/:id", personaHandler.UpdatePersona)
	api.DELETE("/personas/:id", personaHandler.DeletePersona)

	api.GET("/pacientes", pacienteHandler.GetAllPacientes)
	api.POST("/pacientes", pacienteHandler.CreatePaciente)
	api.PUT("/pacientes/:id", pacienteHandler.UpdatePaciente)
	api.DELETE("/pacientes/:id", pacienteHandler.DeletePaciente)

	api.GET("/doctores", doctorHandler.GetAllDoctores)
	api.POST("/doctores", doctorHandler.CreateDoctor)
	api.PUT("/doctores/:id", doctorHandler.UpdateDoctor)
	api.DELETE("/doctores/:id", doctorHandler.DeleteDoctor)

	api.GET("/citas", citaHandler.GetAllCitas)
	api.POST("/citas", citaHandler.CreateCita)
	api.PUT("/citas/:id", citaHandler.UpdateCita)
	api.DELETE("/citas/:id", citaHandler.DeleteCita)

	api.GET("/historial", historialHandler.GetAllHistorial)
	api.POST("/historial", historialHandler.CreateHistorial)
	api.PUT("/historial/:id", historialHandler.UpdateHistorial)
	api.DELETE("/historial/:id", historialHandler.DeleteHistorial)

	usuarios := api.Group("/usuarios", sessionAuth.RequireAPI())
	usuarios.GET("", usuarioHandler.GetAllUsuarios)
	usuarios.POST("", usuarioHandler.CreateUsuario)
	usuarios.PUT("/:id", usuarioHandler.UpdateUsuario)
	usuarios.DELETE("/:id", usuarioHandler.DeleteUsuario)
}
