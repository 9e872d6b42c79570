package server

import (
	"net/http"

	"retrofit-tracker/internal/config"
	"retrofit-tracker/internal/handlers"
	"retrofit-tracker/internal/middleware"
	"retrofit-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("retrofit_session", store))
	r.Use(middleware.InjectUser())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		editors := middleware.RequireRole(models.RoleAdmin, models.RoleAuditor)
		field := middleware.RequireRole(models.RoleAdmin, models.RoleAuditor, models.RoleCrew)
		adminOnly := middleware.RequireRole(models.RoleAdmin)

		// retrofit workflow app
		api.GET("/retrofit", handlers.ListRetrofitProjects)
		api.POST("/retrofit", editors, handlers.CreateRetrofitProject)
		api.GET("/retrofit/:id", handlers.GetRetrofitProject)
		api.PUT("/retrofit/:id", editors, handlers.UpdateRetrofitProject)
		api.DELETE("/retrofit/:id", adminOnly, handlers.DeleteRetrofitProject)
		api.POST("/retrofit/:id/stage", editors, handlers.ChangeRetrofitStage)
		api.GET("/retrofit/:id/alerts", handlers.GetRetrofitAlerts)
		api.GET("/retrofit/:id/measures", handlers.GetRetrofitMeasures)
		api.PUT("/retrofit/:id/measures", editors, handlers.UpdateRetrofitMeasures)
		api.GET("/retrofit/:id/ventilation", handlers.GetRetrofitVentilation)
		api.POST("/retrofit/:id/change-orders", field, handlers.AddChangeOrder)
		api.POST("/retrofit/:id/change-orders/:orderId/respond", editors, handlers.RespondChangeOrder)
		api.POST("/retrofit/:id/photos/:slot", field, handlers.AddRetrofitPhoto)
		api.DELETE("/retrofit/:id/photos/:slot/:index", field, handlers.DeleteRetrofitPhoto)
		api.POST("/retrofit/:id/activity", field, handlers.AddRetrofitActivity)
		api.GET("/retrofit/:id/history", handlers.RetrofitProjectHistory)

		// incentive program tracker app
		api.GET("/tracker", handlers.ListTrackerProjects)
		api.POST("/tracker", editors, handlers.CreateTrackerProject)
		api.GET("/tracker/:id", handlers.GetTrackerProject)
		api.PUT("/tracker/:id", editors, handlers.UpdateTrackerProject)
		api.DELETE("/tracker/:id", adminOnly, handlers.DeleteTrackerProject)
		api.POST("/tracker/refresh-stages", editors, handlers.RefreshTrackerStages)
		api.GET("/tracker-kpis", handlers.TrackerKPIs)
		api.GET("/tracker-calendar", handlers.TrackerCalendar)

		api.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
			handlers.ListAuditLogs)
	}

	return r
}
