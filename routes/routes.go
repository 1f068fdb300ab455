package routes

import (
	"MediClinica/config"
	"MediClinica/controllers"
	"MediClinica/database"
	"MediClinica/handlers"
	"MediClinica/middlewares"
	"MediClinica/repositories"
	"MediClinica/services"
	"MediClinica/sessions"
	"MediClinica/utils"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, db *gorm.DB, redisClient *redis.Client) (http.Handler, error) {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply CORS middleware configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Session plumbing: sealed cookie token, identity stored in Redis
	sealer, err := utils.NewTokenSealer(config.GetSymmetricKey())
	if err != nil {
		return nil, err
	}
	store := sessions.NewRedisStore(redisClient)
	sessionAuth := middlewares.NewSessionAuth(store, sealer)

	// Appointment notifier, disabled unless SMTP is configured
	var mailer *utils.Mailer
	if config.MailerEnabled() {
		mailer = utils.NewMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass, config.NotifyEmail)
	}

	// Initialize repositories, services, and handlers
	locker := database.NewLocker(redisClient)

	personaRepo := repositories.NewPersonaRepository(db, locker)
	pacienteRepo := repositories.NewPacienteRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db)
	citaRepo := repositories.NewCitaRepository(db)
	historialRepo := repositories.NewHistorialRepository(db)
	usuarioRepo := repositories.NewUsuarioRepository(db, locker)

	personaHandler := handlers.NewPersonaHandler(services.NewPersonaService(personaRepo))
	pacienteHandler := handlers.NewPacienteHandler(services.NewPacienteService(pacienteRepo))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo))
	citaHandler := handlers.NewCitaHandler(services.NewCitaService(citaRepo, mailer))
	historialHandler := handlers.NewHistorialHandler(services.NewHistorialService(historialRepo))
	usuarioHandler := handlers.NewUsuarioHandler(services.NewUsuarioService(usuarioRepo))
	authHandler := handlers.NewAuthHandler(services.NewAuthService(usuarioRepo), store, sealer, sessionAuth)

	// Register routes
	controllers.SetupClinicaRoutes(
		router,
		personaHandler,
		pacienteHandler,
		doctorHandler,
		citaHandler,
		historialHandler,
		usuarioHandler,
		sessionAuth,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	pagesController := controllers.NewPagesController(sessionAuth, "./public")
	pagesController.RegisterRoutes(router)

	return router, nil
}
