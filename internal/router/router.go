package router

import (
	"net/http"

	"finai/internal/config"
	"finai/internal/events"
	"finai/internal/handler"
	"finai/internal/llm"
	"finai/internal/logger"
	"finai/internal/middleware"
	"finai/internal/service"
	"finai/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the outbound collaborators the HTTP surface needs besides the database.
type Deps struct {
	Completer llm.Completer
	Publisher events.Publisher
	Logger    zerolog.Logger
}

// SetupRouter wires stores, services and handlers into a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, deps Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	log := deps.Logger

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger.WithComponent(log, logger.ComponentHTTP)),
		middleware.Recovery(),
		cors.New(corsConfig(cfg.CORS)),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s := store.NewGorm(db)

	authSvc := service.NewAuthService(s.Users, service.AuthConfig{
		JWTSecret:  cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		TokenTTL:   cfg.TokenTTL(),
		BcryptCost: cfg.Security.BcryptCost,
	}, log)
	txSvc := service.NewTransactionService(s.Transactions, log)
	budgetSvc := service.NewBudgetService(s.Budgets, s.Transactions, log)
	notifySvc := service.NewNotificationService(s.Notifications, deps.Publisher, log)
	goalSvc := service.NewGoalService(s.Goals, notifySvc, log)
	dashSvc := service.NewDashboardService(s.Transactions)
	chatSvc := service.NewChatService(s, deps.Completer, cfg.CompletionTimeout(), log)
	receiptSvc := service.NewReceiptService(deps.Completer, cfg.CompletionTimeout(), log)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(authSvc)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(authSvc),
		middleware.AuditMiddleware(s.AuditLogs, cfg.Security.EncryptionKey),
	)

	protected.GET("/me", handler.GetMe)
	protected.GET("/categories", handler.ListCategories)
	protected.POST("/profile/password", handler.ChangePassword(authSvc))

	txHandler := handler.NewTransactionHandler(txSvc)
	protected.POST("/transactions", txHandler.Create)
	protected.GET("/transactions", txHandler.List)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	budgetHandler := handler.NewBudgetHandler(budgetSvc)
	protected.POST("/budgets", budgetHandler.Create)
	protected.GET("/budgets/:month", budgetHandler.ListForMonth)
	protected.PUT("/budgets/:id", budgetHandler.Update)
	protected.DELETE("/budgets/:id", budgetHandler.Delete)

	goalHandler := handler.NewGoalHandler(goalSvc)
	protected.POST("/savinggoals", goalHandler.Create)
	protected.GET("/savinggoals", goalHandler.List)
	protected.PUT("/savinggoals/:id", goalHandler.Update)
	protected.PUT("/savinggoals/:id/contribute", goalHandler.Contribute)
	protected.DELETE("/savinggoals/:id", goalHandler.Delete)

	notifyHandler := handler.NewNotificationHandler(notifySvc)
	protected.GET("/notifications", notifyHandler.List)
	protected.POST("/notifications", notifyHandler.Create)
	protected.PUT("/notifications/:id/read", notifyHandler.MarkRead)

	protected.GET("/dashboard/:month", handler.NewDashboardHandler(dashSvc).Get)
	protected.POST("/chat", handler.NewChatHandler(chatSvc).Ask)
	protected.POST("/receipt/parse", handler.NewReceiptHandler(receiptSvc).Parse)

	exportHandler := handler.NewExportHandler(txSvc, dashSvc)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)
	protected.GET("/export/pdf", exportHandler.PDF)

	logHandler := handler.NewLogHandler(s.AuditLogs, cfg.Security.EncryptionKey, cfg.App.PageSize)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "X-Request-ID")
	cc.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	if len(c.AllowOrigins) == 0 || (len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowOrigins
	}
	return cc
}
