package controllers

import (
	"MediClinica/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", ac.Handler.Login)
	router.GET("/api/auth-check", ac.Handler.AuthCheck)
	router.POST("/api/logout", ac.Handler.Logout)
}
