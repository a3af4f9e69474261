package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rakshithv/placemate/internal/app/controllers"
	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	documentController *controllers.DocumentController,
	companyController *controllers.CompanyController,
	driveController *controllers.DriveController,
	reportController *controllers.ReportController,
	interviewController *controllers.InterviewController,
	employerController *controllers.EmployerController,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", uploadDir)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// --- Public Employer routes (near-stub listing) ---
	employers := v1.Group("/employers")
	{
		employers.GET("/jobs", employerController.Jobs)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		// Student routes
		students := authenticated.Group("/students")
		{
			// The analytics table is placement-office territory; everything
			// else below belongs to the student role.
			students.GET("/analytics",
				authMiddleware.RoleRequired(string(models.RolePlacement)),
				studentController.Analytics)

			studentOnly := students.Group("")
			studentOnly.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				studentOnly.GET("/profile/:usn", studentController.GetProfile)
				studentOnly.POST("/profile", studentController.UpsertProfile)
				studentOnly.GET("/interviews", studentController.Interviews)
				studentOnly.GET("/applications", studentController.Applications)

				studentOnly.POST("/documents/upload", documentController.Upload)
				studentOnly.GET("/documents", documentController.List)
				studentOnly.DELETE("/documents/:id", documentController.Delete)
				studentOnly.GET("/documents/view/:filename", documentController.View)
			}
		}

		// Placement office routes
		placements := authenticated.Group("/placements")
		{
			// Both roles browse drives and companies
			placements.GET("/companies", companyController.List)
			placements.GET("/drives", driveController.List)

			placements.POST("/drives/:id/register",
				authMiddleware.RoleRequired(string(models.RoleStudent)),
				driveController.Register)

			officerOnly := placements.Group("")
			officerOnly.Use(authMiddleware.RoleRequired(string(models.RolePlacement)))
			{
				officerOnly.POST("/companies", companyController.Create)
				officerOnly.PUT("/companies/:id", companyController.Update)
				officerOnly.DELETE("/companies/:id", companyController.Delete)

				officerOnly.POST("/drives", driveController.Create)
				officerOnly.PUT("/drives/:id", driveController.Update)
				officerOnly.DELETE("/drives/:id", driveController.Delete)

				officerOnly.POST("/interviews", interviewController.Schedule)
				officerOnly.PUT("/interviews/:id", interviewController.Update)

				officerOnly.PUT("/documents/:id/status", documentController.UpdateStatus)

				officerOnly.GET("/charts/department", reportController.DepartmentChart)
				officerOnly.GET("/charts/download/:chartType", reportController.DownloadChart)
				officerOnly.POST("/reports/download", reportController.DownloadReport)
			}
		}
	}
}
