package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasilikapapa/workout-app/internal/service"
)

// SetupRoutes wires all handlers onto the router. The auth endpoints are
// open; everything else sits behind the JWT middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	planService service.PlanService,
	dayService service.DayService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService)
	dayHandler := NewDayHandler(dayService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := router.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		// --- Plans ---
		protected.GET("/plans", planHandler.ListPlans)
		protected.POST("/plans", planHandler.CreatePlan)
		protected.PATCH("/plans/:id", planHandler.RenamePlan)
		protected.DELETE("/plans/:id", planHandler.DeletePlan)

		// --- Days (nested under their plan for collection routes) ---
		protected.GET("/plans/:id/days", dayHandler.ListDays)
		protected.POST("/plans/:id/days", dayHandler.CreateDay)
		protected.PATCH("/days/:id", dayHandler.RenameDay)
		protected.DELETE("/days/:id", dayHandler.DeleteDay)

		// --- Sections (read-only, fixed triple per day) ---
		protected.GET("/days/:id/sections", dayHandler.ListSections)

		// --- Exercises ---
		protected.GET("/sections/:id/exercises", exerciseHandler.ListExercises)
		protected.POST("/sections/:id/exercises", exerciseHandler.CreateExercise)
		protected.GET("/exercises/:id", exerciseHandler.GetExercise)
		protected.PATCH("/exercises/:id", exerciseHandler.UpdateExercise)
		protected.DELETE("/exercises/:id", exerciseHandler.DeleteExercise)
	}
}
