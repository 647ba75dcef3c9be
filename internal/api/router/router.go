// Package router assembles the gin engine and route tree.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/api/handler"
	"github.com/y-inoue-koma/club-activity-manager/internal/api/middleware"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
	"github.com/y-inoue-koma/club-activity-manager/pkg/redis"
)

// New builds the engine with the three access tiers: public, signed-in,
// admin.
func New(cfg *config.Config, h *handler.Handler, jm *jwt.Manager, rc *redis.Client, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(&cfg.Server.CORS),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	// Public: no token required. The calendar feed stays open so phone
	// calendar apps can subscribe to it.
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)
	v1.POST("/auth/refresh", h.Auth.Refresh)
	v1.GET("/schedules/calendar.ics", h.Schedule.Calendar)

	auth := v1.Group("", middleware.JWTAuth(jm, rc, logger))
	{
		auth.POST("/auth/logout", h.Auth.Logout)
		auth.GET("/auth/me", h.Auth.Me)

		auth.GET("/members", h.Member.List)
		auth.GET("/members/my-profile", h.Member.MyProfile)
		auth.GET("/members/:id", h.Member.Get)
		auth.GET("/members/:id/full-detail", h.Member.FullDetail)

		auth.GET("/schedules", h.Schedule.List)
		auth.GET("/schedules/:id", h.Schedule.Get)

		auth.GET("/practice-menus", h.Menu.List)
		auth.GET("/practice-menus/:id", h.Menu.Get)

		auth.GET("/player-records", h.Record.List)
		auth.GET("/player-records/summary/:id", h.Record.Summary)
		auth.POST("/player-records/analyze/:id", h.Record.Analyze)

		auth.GET("/absences", h.Absence.List)
		auth.POST("/absences", h.Absence.Create)

		auth.GET("/batting-stats", h.Stats.BattingList)
		auth.GET("/batting-stats/member/:id", h.Stats.BattingByMember)
		auth.GET("/pitching-stats", h.Stats.PitchingList)
		auth.GET("/pitching-stats/member/:id", h.Stats.PitchingByMember)

		auth.GET("/velocity/pitch", h.Stats.PitchVelocityList)
		auth.GET("/velocity/pitch/member/:id", h.Stats.PitchVelocityByMember)
		auth.GET("/velocity/exit", h.Stats.ExitVelocityList)
		auth.GET("/velocity/exit/member/:id", h.Stats.ExitVelocityByMember)
		auth.GET("/velocity/pulldown", h.Stats.PulldownVelocityList)
		auth.GET("/velocity/pulldown/member/:id", h.Stats.PulldownVelocityByMember)

		auth.GET("/physical", h.Stats.PhysicalList)
		auth.GET("/physical/member/:id", h.Stats.PhysicalByMember)

		auth.GET("/game-results", h.Stats.GameList)
		auth.GET("/team-stats", h.Stats.TeamStat)
		auth.GET("/team-stats/monthly-trend", h.Stats.MonthlyTrend)

		auth.POST("/compare", h.Compare.Compare)
	}

	admin := auth.Group("", middleware.RoleAuth(model.RoleAdmin))
	{
		admin.POST("/members", h.Member.Create)
		admin.PUT("/members/:id", h.Member.Update)
		admin.DELETE("/members/:id", h.Member.Delete)

		admin.POST("/schedules", h.Schedule.Create)
		admin.PUT("/schedules/:id", h.Schedule.Update)
		admin.DELETE("/schedules/:id", h.Schedule.Delete)

		admin.POST("/practice-menus", h.Menu.Create)
		admin.PUT("/practice-menus/:id", h.Menu.Update)
		admin.DELETE("/practice-menus/:id", h.Menu.Delete)

		admin.POST("/player-records", h.Record.Create)
		admin.PUT("/player-records/:id", h.Record.Update)
		admin.DELETE("/player-records/:id", h.Record.Delete)

		admin.PATCH("/absences/:id/status", h.Absence.UpdateStatus)

		admin.POST("/velocity/pitch", h.Stats.CreatePitchVelocity)
		admin.POST("/velocity/exit", h.Stats.CreateExitVelocity)
		admin.POST("/velocity/pulldown", h.Stats.CreatePulldownVelocity)
		admin.POST("/physical", h.Stats.CreatePhysical)

		admin.POST("/game-results", h.Stats.CreateGame)
		admin.PUT("/game-results/:id", h.Stats.UpdateGame)
		admin.DELETE("/game-results/:id", h.Stats.DeleteGame)

		admin.POST("/reminders/check-tomorrow", h.Reminder.CheckTomorrow)

		admin.GET("/export/batting-stats", h.Export.BattingStats)
	}

	return engine
}
