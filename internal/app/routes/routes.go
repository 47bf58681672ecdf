package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/erdem/tamatch/internal/app/controllers"
	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	applicationController *controllers.ApplicationController,
	experienceController *controllers.ExperienceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/student/register", authController.RegisterStudent)
		auth.POST("/professor/register", authController.RegisterProfessor)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes (any authenticated user)
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PATCH("/profile", userController.UpdateProfile)

		// Course routes
		courses := authenticated.Group("/courses")
		{
			// Readable by all authenticated users; the listing itself is
			// viewer-scoped (professors see only their own postings).
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/grades", courseController.EligibleGrades)

			// Professor-only routes
			coursesProfessorProtected := courses.Group("")
			coursesProfessorProtected.Use(authMiddleware.RoleRequired(string(models.RoleProfessor)))
			{
				coursesProfessorProtected.POST("", courseController.CreateCourse)
				coursesProfessorProtected.PATCH("/:id", courseController.UpdateCourse)
				coursesProfessorProtected.DELETE("/:id", courseController.DeleteCourse)
				coursesProfessorProtected.GET("/:id/applicants", applicationController.ListForCourse)
			}

			// Student-only routes under a course
			coursesStudentProtected := courses.Group("")
			coursesStudentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				coursesStudentProtected.POST("/:id/applications", applicationController.Apply)
				coursesStudentProtected.POST("/:id/experiences", experienceController.AddExperience)
			}
		}

		// Application routes
		applications := authenticated.Group("/applications")
		{
			applicationsStudentProtected := applications.Group("")
			applicationsStudentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				applicationsStudentProtected.GET("", applicationController.ListOwn)
				applicationsStudentProtected.DELETE("/:id", applicationController.Withdraw)
			}

			applicationsProfessorProtected := applications.Group("")
			applicationsProfessorProtected.Use(authMiddleware.RoleRequired(string(models.RoleProfessor)))
			{
				applicationsProfessorProtected.POST("/:id/assign", applicationController.Assign)
				applicationsProfessorProtected.POST("/:id/unassign", applicationController.Unassign)
			}
		}

		// Experience ledger routes (student only)
		experiences := authenticated.Group("/experiences")
		experiences.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			experiences.GET("", experienceController.ListExperiences)
			experiences.DELETE("/:id", experienceController.DeleteExperience)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
