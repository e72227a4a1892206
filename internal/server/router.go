package server

import (
	"net/http"

	"prospeo/internal/config"
	"prospeo/internal/database"
	"prospeo/internal/handlers"
	"prospeo/internal/metrics"
	"prospeo/internal/middleware"
	"prospeo/internal/notify"
	"prospeo/internal/repository"
	"prospeo/internal/service"
	"prospeo/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, store storage.Uploader, hub *notify.Hub) *gin.Engine {
	r := gin.Default()

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("prospeo_session", sessStore))

	r.Use(middleware.InjectUser())
	r.Use(metrics.Middleware())

	campaignRepo := &repository.CampaignRepository{DB: database.DB}
	campaignService := &service.CampaignService{Repo: campaignRepo}

	campaignHandler := &handlers.CampaignHandler{Service: campaignService}
	adminHandler := &handlers.AdminHandler{
		Service: campaignService,
		Repo:    campaignRepo,
		Hub:     hub,
	}
	collabHandler := &handlers.CollabHandler{
		Service:  campaignService,
		Comments: &repository.CommentRepository{DB: database.DB},
		Files:    &repository.FileRepository{DB: database.DB},
		Messages: &repository.MessageRepository{DB: database.DB},
		Store:    store,
		Hub:      hub,
	}

	// AUTH
	r.POST("/auth/register", handlers.Register)
	r.POST("/auth/login", handlers.Login)
	r.POST("/auth/logout", handlers.Logout)
	r.GET("/auth/session", handlers.Session)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// CAMPAGNES
	auth.GET("/campaigns", campaignHandler.ListMine)
	auth.POST("/campaigns", campaignHandler.Create)
	auth.GET("/campaigns/stats", campaignHandler.StatsMine)
	auth.GET("/campaigns/:id", campaignHandler.Get)

	// COLLABORATION
	auth.GET("/campaigns/:id/comments", collabHandler.ListComments)
	auth.POST("/campaigns/:id/comments", collabHandler.CreateComment)
	auth.GET("/campaigns/:id/messages", collabHandler.ListMessages)
	auth.POST("/campaigns/:id/messages", collabHandler.CreateMessage)
	auth.GET("/campaigns/:id/files", collabHandler.ListFiles)
	auth.POST("/campaigns/:id/files", collabHandler.UploadFile)
	auth.GET("/campaigns/:id/ws", collabHandler.Subscribe)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	admin.GET("/campaigns", adminHandler.ListAll)
	admin.PATCH("/campaigns/:id", adminHandler.Update)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/audit", handlers.ListAuditLogs)

	// HEALTHCHECK + METRICS
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", metrics.Handler())

	return r
}
