package app

import (
	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/middleware"
	"sprint_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Uploaded videos are streamed with Range support rather than gin's
	// Static helper, which cannot answer partial requests the player needs.
	router.GET("/uploads/*filepath", c.media.ServeUpload)

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(a.authMiddleware())
	{
		a.registerUserRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c, repos, cfg)
	}

	// Everything unmatched falls through to the SPA bundle
	router.NoRoute(c.media.SPAFallback)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/sprints", c.sprint.GetSprints)
	rg.GET("/sprints/active", c.sprint.GetActive)

	rg.GET("/lessons", c.lesson.GetLessons)
	rg.GET("/lessons/:id", c.lesson.GetLesson)
	rg.GET("/categories", c.category.GetCategories)

	rg.GET("/progress", c.progress.GetProgress)
	rg.POST("/progress", c.progress.SaveProgress)
	rg.PUT("/progress", c.progress.SaveProgress)

	rg.GET("/notes/:contentType/:contentId", c.note.GetNote)
	rg.POST("/notes", c.note.SaveNote)

	rg.GET("/lessons/:id/reflection", c.reflection.GetReflection)
	rg.POST("/lessons/:id/reflection", c.reflection.SaveReflection)
	rg.POST("/lessons/:id/reflection/submit", c.reflection.SubmitReflection)
	rg.POST("/lessons/:id/reflection/resubmit", c.reflection.ResubmitReflection)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers, repos *repositories, cfg *config.Config) {
	admin := rg.Group("/")
	admin.Use(middleware.RequireAdmin(repos.user, cfg))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.PUT("/users/:id/role", c.user.UpdateRole)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.POST("/sprints", c.sprint.CreateSprint)
		admin.DELETE("/sprints/:id", c.sprint.DeleteSprint)
		admin.POST("/sprints/:id/activate", c.sprint.ActivateSprint)
		admin.POST("/sprints/upload", c.sprint.UploadVideo)

		admin.POST("/lessons", c.lesson.CreateLesson)
		admin.PUT("/lessons/:id", c.lesson.UpdateLesson)
		admin.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		admin.POST("/categories", c.category.CreateCategory)
		admin.DELETE("/categories/:id", c.category.DeleteCategory)

		admin.GET("/reflections/submitted", c.reflection.ListSubmitted)
		admin.POST("/reflections/mark", c.reflection.MarkReflection)
	}
}
