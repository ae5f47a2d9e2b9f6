package routes

import (
	"github.com/arafatanam/FilmFlow/internal/api/handlers"
	"github.com/arafatanam/FilmFlow/internal/api/middleware"
	"github.com/arafatanam/FilmFlow/internal/config"
	"github.com/arafatanam/FilmFlow/internal/mailer"
	"github.com/arafatanam/FilmFlow/internal/repository"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize mailer
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	crewRepo := repository.NewCrewProfileRepository(db)
	projectCrewRepo := repository.NewProjectCrewRepository(db)
	assignmentRepo := repository.NewScheduleAssignmentRepository(db)
	callSheetRepo := repository.NewCallSheetRepository(db)

	// Initialize services
	conflictService := service.NewConflictService(assignmentRepo, crewRepo, projectRepo)
	projectService := service.NewProjectService(projectRepo, projectCrewRepo, validator)
	crewService := service.NewCrewService(crewRepo, projectRepo, projectCrewRepo, mail, validator)
	scheduleService := service.NewScheduleService(assignmentRepo, projectCrewRepo, crewRepo, projectRepo, conflictService, validator)
	reportService := service.NewReportService(projectRepo, projectCrewRepo, assignmentRepo, conflictService)
	callSheetService := service.NewCallSheetService(projectRepo, assignmentRepo, callSheetRepo, mail, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, mail)
	projectHandler := handlers.NewProjectHandler(projectService)
	crewHandler := handlers.NewCrewHandler(crewService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	reportHandler := handlers.NewReportHandler(reportService)
	callSheetHandler := handlers.NewCallSheetHandler(callSheetService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/by-code/:code", projectHandler.GetProjectByCode)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.PATCH("/:id/status", projectHandler.UpdateProjectStatus)
			projects.GET("/:id/crew", crewHandler.GetProjectRoster)
			projects.GET("/:id/reports/completion", reportHandler.CompletionReport)
			projects.GET("/:id/reports/conflicts", reportHandler.ConflictReport)
			projects.GET("/:id/callsheets", callSheetHandler.CallSheetHistory)
		}

		crew := v1.Group("/crew")
		{
			crew.POST("/signup", crewHandler.SignUp)
			crew.GET("", crewHandler.ListCrew)
			crew.GET("/:id", crewHandler.GetCrewProfile)
			crew.PUT("/:id", crewHandler.UpdateCrewProfile)
			crew.PUT("/:id/unavailability", crewHandler.SetUnavailability)
		}

		schedule := v1.Group("/schedule")
		{
			schedule.GET("", scheduleHandler.DaySchedule)
			schedule.POST("/check", scheduleHandler.CheckConflicts)
			schedule.POST("/assign", scheduleHandler.Assign)
			schedule.POST("/assign-department", scheduleHandler.AssignDepartment)
			schedule.DELETE("/assignments", scheduleHandler.Unassign)
		}

		v1.POST("/callsheets/send", callSheetHandler.SendCallSheet)
	}

	return router
}
