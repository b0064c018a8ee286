package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	gatherer prometheus.Gatherer,
	metricsManager *metrics.Manager,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
) {
	userHandler := NewUserHandler(authService, profileService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.Use(RequestLogger(), RequestMetrics(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	userGroup := router.Group("/api/v1/user")
	{
		userGroup.POST("/signup", userHandler.Signup)
		userGroup.POST("/signin", userHandler.Signin)
	}

	protected := userGroup.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/profile", userHandler.Profile)
		protected.POST("/avatar/upload-url", userHandler.RequestAvatarUploadURL)
		protected.PUT("/avatar", userHandler.ConfirmAvatar)

		protected.GET("/dashboard", workoutHandler.Dashboard)
		protected.GET("/workout", workoutHandler.WorkoutsByDate)
		protected.POST("/workout", workoutHandler.AddWorkout)
	}
}
